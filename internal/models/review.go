package models

import "time"

// Review targets exactly one of a restaurant or a dish; the repository and
// service layers enforce that exactly one of RestaurantID/DishID is set.
type Review struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Rating       int              `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment      string           `gorm:"type:text" json:"comment"`
	Status       ModerationStatus `gorm:"type:varchar(16);default:'pending';not null;index" json:"status"`
	AuthorID     uint             `gorm:"not null;index" json:"author_id"`
	RestaurantID *uint            `gorm:"index" json:"restaurant_id,omitempty"`
	DishID       *uint            `gorm:"index" json:"dish_id,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Association for showing the author's username in responses
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
