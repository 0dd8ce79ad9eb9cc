package models

import "time"

// Restaurant is deliberately unidirectional: dishes and reviews reference it
// by ID and responses assemble nested collections explicitly, so there are no
// live object-graph cycles to serialize.
type Restaurant struct {
	ID            uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string           `gorm:"not null" json:"name"`
	Address       string           `json:"address"`
	AverageRating float64          `gorm:"type:decimal(3,2);default:0" json:"average_rating"` // advisory, refreshed best-effort
	Status        ModerationStatus `gorm:"type:varchar(16);default:'pending';not null;index" json:"status"`
	OwnerID       *uint            `gorm:"index" json:"owner_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
