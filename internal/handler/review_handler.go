package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"platehub/internal/dto"
	"platehub/internal/middleware"
	"platehub/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, authService service.AuthService) {
	reviews := router.Group("/reviews")
	{
		// Public reads
		reviews.GET("", middleware.OptionalAuth(authService), h.List)
		reviews.GET("/:id", middleware.OptionalAuth(authService), h.Get)

		// Any authenticated user may create; author or admin may change
		reviews.POST("", middleware.Auth(authService), h.Create)
		reviews.PUT("/:id", middleware.Auth(authService), h.Update)
		reviews.DELETE("/:id", middleware.Auth(authService), h.Delete)

		// Moderation
		reviews.PATCH("/:id/status", middleware.Auth(authService),
			middleware.RequireAdmin(), h.SetStatus)
	}
}

// List returns approved reviews.
// GET /api/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Get returns one review, subject to the visibility filter.
// GET /api/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(middleware.IdentityFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Create creates a review targeting a restaurant or a dish.
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(middleware.IdentityFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Update modifies a review's rating/comment (author or admin).
// PUT /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Update(middleware.IdentityFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete removes a review (author or admin).
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(middleware.IdentityFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// SetStatus moves a review between moderation states (admin only).
// PATCH /api/reviews/:id/status
func (h *ReviewHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.SetStatus(middleware.IdentityFromContext(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
