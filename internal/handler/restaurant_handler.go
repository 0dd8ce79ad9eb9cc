package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"platehub/internal/dto"
	"platehub/internal/middleware"
	"platehub/internal/models"
	"platehub/internal/service"
)

type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// RegisterRoutes registers restaurant-related routes
func (h *RestaurantHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	restaurants := router.Group("/restaurants")
	{
		// Public reads; an optional token lets owners and admins see their
		// own pending content
		restaurants.GET("", middleware.OptionalAuth(authService), h.List)
		restaurants.GET("/:id", middleware.OptionalAuth(authService), h.Get)
		restaurants.GET("/:id/dishes", middleware.OptionalAuth(authService), h.ListDishes)

		// Writes
		restaurants.POST("", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Create)
		restaurants.PUT("/:id", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Update)
		restaurants.DELETE("/:id", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Delete)

		// Moderation
		restaurants.PATCH("/:id/status", middleware.Auth(authService),
			middleware.RequireAdmin(), h.SetStatus)
	}
}

// List returns approved restaurants.
// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get returns one restaurant with dishes and approved reviews.
// GET /api/restaurants/:id
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.restaurantService.Get(middleware.IdentityFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListDishes returns the restaurant's dishes, gated by its visibility.
// GET /api/restaurants/:id/dishes
func (h *RestaurantHandler) ListDishes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	dishes, err := h.restaurantService.ListDishes(middleware.IdentityFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// Create creates a restaurant (owner or admin).
// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurantService.Create(middleware.IdentityFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update modifies a restaurant (its owner or admin).
// PUT /api/restaurants/:id
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurantService.Update(middleware.IdentityFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete removes a restaurant and everything referencing it.
// DELETE /api/restaurants/:id
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.restaurantService.Delete(middleware.IdentityFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

// SetStatus moves a restaurant between moderation states (admin only).
// PATCH /api/restaurants/:id/status
func (h *RestaurantHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurantService.SetStatus(middleware.IdentityFromContext(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}
