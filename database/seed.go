package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"platehub/internal/middleware/auth"
	"platehub/internal/models"
)

// SeedData inserts a small development dataset: one admin, one restaurant
// owner, two approved restaurants with dishes and approved reviews.
// It is a no-op when restaurants already exist.
func SeedData(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminHash, err := auth.HashPassword("admin123!")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	ownerHash, err := auth.HashPassword("owner123!")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := models.User{Username: "admin", Email: "admin@platehub.dev", Password: adminHash, Role: models.RoleAdmin}
	owner := models.User{Username: "pica-house", Email: "owner@platehub.dev", Password: ownerHash, Role: models.RoleOwner}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	r1 := models.Restaurant{Name: "Pica House", Address: "Vilnius", Status: models.StatusApproved, OwnerID: &owner.ID}
	r2 := models.Restaurant{Name: "Grill Garden", Address: "Kaunas", Status: models.StatusApproved}
	if err := db.Create(&r1).Error; err != nil {
		return err
	}
	if err := db.Create(&r2).Error; err != nil {
		return err
	}

	d1 := models.Dish{Name: "Margarita", RestaurantID: r1.ID}
	d2 := models.Dish{Name: "Capricciosa", RestaurantID: r1.ID}
	d3 := models.Dish{Name: "Skewers", RestaurantID: r2.ID}
	for _, d := range []*models.Dish{&d1, &d2, &d3} {
		if err := db.Create(d).Error; err != nil {
			return err
		}
	}

	reviews := []models.Review{
		{Rating: 5, Comment: "Super!", Status: models.StatusApproved, AuthorID: admin.ID, RestaurantID: &r1.ID},
		{Rating: 4, Comment: "Tasty pizza", Status: models.StatusApproved, AuthorID: admin.ID, DishID: &d1.ID},
		{Rating: 3, Comment: "Average", Status: models.StatusApproved, AuthorID: admin.ID, RestaurantID: &r2.ID},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Seeded development data")
	return nil
}
