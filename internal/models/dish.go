package models

import "time"

// Dish carries no moderation state of its own; its visibility is inherited
// from the parent restaurant.
type Dish struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Dish) TableName() string {
	return "dishes"
}
