package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"platehub/internal/models"
	"platehub/internal/service"
)

const identityKey = "identity"

// Auth is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a JWT token in the Authorization
// header and stores the resolved Identity in the request context.
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(identityKey, service.NewIdentity(claims.UserID, claims.Role))
		c.Next()
	}
}

// OptionalAuth resolves an Identity when a token is present but lets
// anonymous requests through. Public read endpoints use this so owners and
// admins can see their own pending content. A token that is present but
// invalid is still rejected.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(identityKey, service.Anonymous())
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(identityKey, service.NewIdentity(claims.UserID, claims.Role))
		c.Next()
	}
}

// RequireRole checks if the authenticated user has one of the given roles.
// Must run after Auth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if !identity.Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		c.Abort()
	}
}

// RequireAdmin is a convenience function for requiring the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// IdentityFromContext returns the Identity resolved by Auth/OptionalAuth,
// or the anonymous identity when neither ran.
func IdentityFromContext(c *gin.Context) service.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return service.Anonymous()
	}
	identity, ok := value.(service.Identity)
	if !ok {
		return service.Anonymous()
	}
	return identity
}
