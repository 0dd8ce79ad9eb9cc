package repository

import (
	"platehub/internal/models"

	"gorm.io/gorm"
)

// DishRepository defines the interface for dish data operations.
type DishRepository interface {
	Create(dish *models.Dish) error
	FindByID(id uint) (*models.Dish, error)
	FindByRestaurant(restaurantID uint) ([]models.Dish, error)
	FindWithApprovedRestaurant() ([]models.Dish, error)
	Update(id uint, fields map[string]any) error
	DeleteCascade(id uint) error
}

// dishRepository is the GORM implementation of DishRepository.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new instance of DishRepository
func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *dishRepository) FindByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindByRestaurant(restaurantID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// FindWithApprovedRestaurant lists dishes whose parent restaurant is
// approved; dishes have no moderation state of their own.
func (r *dishRepository) FindWithApprovedRestaurant() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.
		Joins("JOIN restaurants ON restaurants.id = dishes.restaurant_id").
		Where("restaurants.status = ?", models.StatusApproved).
		Order("dishes.id").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// Update applies the given column values; a vanished row is reported as
// gorm.ErrRecordNotFound.
func (r *dishRepository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&models.Dish{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes the dish's reviews before the dish itself, in one
// transaction, so no review is left referencing a deleted dish.
func (r *dishRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dish_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Dish{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
