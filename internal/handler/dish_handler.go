package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"platehub/internal/dto"
	"platehub/internal/middleware"
	"platehub/internal/models"
	"platehub/internal/service"
)

type DishHandler struct {
	dishService service.DishService
}

func NewDishHandler(dishService service.DishService) *DishHandler {
	return &DishHandler{dishService: dishService}
}

// RegisterRoutes registers dish-related routes
func (h *DishHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	dishes := router.Group("/dishes")
	{
		// Public reads
		dishes.GET("", middleware.OptionalAuth(authService), h.List)
		dishes.GET("/:id", middleware.OptionalAuth(authService), h.Get)

		// Writes require the parent restaurant's owner or an admin
		dishes.POST("", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Create)
		dishes.PUT("/:id", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Update)
		dishes.DELETE("/:id", middleware.Auth(authService),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin), h.Delete)
	}
}

// List returns dishes of approved restaurants.
// GET /api/dishes
func (h *DishHandler) List(c *gin.Context) {
	dishes, err := h.dishService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// Get returns one dish with its approved reviews.
// GET /api/dishes/:id
func (h *DishHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.dishService.Get(middleware.IdentityFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create adds a dish to a restaurant.
// POST /api/dishes
func (h *DishHandler) Create(c *gin.Context) {
	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishService.Create(middleware.IdentityFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// Update modifies a dish.
// PUT /api/dishes/:id
func (h *DishHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishService.Update(middleware.IdentityFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// Delete removes a dish together with its reviews.
// DELETE /api/dishes/:id
func (h *DishHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.dishService.Delete(middleware.IdentityFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}
