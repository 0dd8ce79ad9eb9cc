package dto

import (
	"time"

	"platehub/internal/models"
)

// CreateRestaurantRequest: payload for creating a restaurant.
// owner_id is honored for admins only; owners always get themselves.
type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=300"`
	OwnerID *uint  `json:"owner_id"`
}

// UpdateRestaurantRequest: partial update. The status field is honored for
// admins only and silently ignored otherwise.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address *string `json:"address" binding:"omitempty,max=300"`
	Status  *string `json:"status"`
}

// UpdateStatusRequest: payload for the admin moderation endpoints
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RestaurantResponse for returning restaurant information
type RestaurantResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	AverageRating float64   `json:"average_rating"`
	Status        string    `json:"status"`
	OwnerID       *uint     `json:"owner_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromModelToRestaurantResponse converts a Restaurant model to RestaurantResponse DTO
func FromModelToRestaurantResponse(restaurant *models.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		Address:       restaurant.Address,
		AverageRating: restaurant.AverageRating,
		Status:        string(restaurant.Status),
		OwnerID:       restaurant.OwnerID,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
}

// RestaurantListResponse converts a slice of restaurants
func RestaurantListResponse(restaurants []models.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, *FromModelToRestaurantResponse(&restaurants[i]))
	}
	return out
}

// RestaurantDetail is a restaurant with its dishes and approved reviews
// assembled explicitly. The reviews are always the approved ones only,
// regardless of who is viewing.
type RestaurantDetail struct {
	RestaurantResponse
	RatingCount int64            `json:"rating_count"`
	Dishes      []DishResponse   `json:"dishes"`
	Reviews     []ReviewResponse `json:"reviews"`
}
