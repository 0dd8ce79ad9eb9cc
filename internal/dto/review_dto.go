package dto

import (
	"time"

	"platehub/internal/models"
)

// CreateReviewRequest targets exactly one of restaurant_id or dish_id.
type CreateReviewRequest struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"max=5000"`
	RestaurantID *uint  `json:"restaurant_id"`
	DishID       *uint  `json:"dish_id"`
}

// UpdateReviewRequest can change the rating and comment only; moderation
// status moves through the dedicated admin endpoint.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=5000"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	Status       string    `json:"status"`
	AuthorID     uint      `json:"author_id"`
	Username     string    `json:"username,omitempty"`
	RestaurantID *uint     `json:"restaurant_id,omitempty"`
	DishID       *uint     `json:"dish_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		Status:       string(review.Status),
		AuthorID:     review.AuthorID,
		Username:     review.Author.Username,
		RestaurantID: review.RestaurantID,
		DishID:       review.DishID,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

// ReviewListResponse converts a slice of reviews
func ReviewListResponse(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *FromModelToReviewResponse(&reviews[i]))
	}
	return out
}
