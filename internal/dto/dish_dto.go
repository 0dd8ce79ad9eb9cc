package dto

import (
	"platehub/internal/models"
)

// CreateDishRequest: payload for creating a dish under a restaurant
type CreateDishRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"max=2000"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

// UpdateDishRequest: partial update; a new restaurant_id moves the dish
type UpdateDishRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	RestaurantID *uint   `json:"restaurant_id"`
}

// DishResponse for returning dish information
type DishResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	RestaurantID uint   `json:"restaurant_id"`
}

// FromModelToDishResponse converts a Dish model to DishResponse DTO
func FromModelToDishResponse(dish *models.Dish) *DishResponse {
	return &DishResponse{
		ID:           dish.ID,
		Name:         dish.Name,
		Description:  dish.Description,
		RestaurantID: dish.RestaurantID,
	}
}

// DishListResponse converts a slice of dishes
func DishListResponse(dishes []models.Dish) []DishResponse {
	out := make([]DishResponse, 0, len(dishes))
	for i := range dishes {
		out = append(out, *FromModelToDishResponse(&dishes[i]))
	}
	return out
}

// DishDetail is a dish with its approved reviews assembled explicitly
// (nested collections are built here, never traversed via object graphs).
type DishDetail struct {
	DishResponse
	Reviews []ReviewResponse `json:"reviews"`
}
