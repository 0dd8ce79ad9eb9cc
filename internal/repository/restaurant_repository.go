package repository

import (
	"platehub/internal/models"

	"gorm.io/gorm"
)

// RestaurantRepository defines the interface for restaurant data operations.
type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	FindByID(id uint) (*models.Restaurant, error)
	FindApproved() ([]models.Restaurant, error)
	Update(id uint, fields map[string]any) error
	UpdateStatus(id uint, status models.ModerationStatus) error
	UpdateAverageRating(id uint, avg float64) error
	AverageRating(id uint) (float64, int64, error)
	DeleteCascade(id uint) error
}

// restaurantRepository is the GORM implementation of RestaurantRepository.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new instance of RestaurantRepository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindApproved returns the restaurants every viewer may list.
func (r *restaurantRepository) FindApproved() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Where("status = ?", models.StatusApproved).
		Order("id").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Update applies the given column values. A vanished row (concurrently
// deleted between load and save) is reported as gorm.ErrRecordNotFound.
func (r *restaurantRepository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *restaurantRepository) UpdateStatus(id uint, status models.ModerationStatus) error {
	result := r.db.Model(&models.Restaurant{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *restaurantRepository) UpdateAverageRating(id uint, avg float64) error {
	return r.db.Model(&models.Restaurant{}).Where("id = ?", id).Update("average_rating", avg).Error
}

// AverageRating aggregates approved reviews of the restaurant and of its
// dishes into an advisory average and count.
func (r *restaurantRepository) AverageRating(id uint) (float64, int64, error) {
	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	err := r.db.Model(&models.Review{}).
		Where("status = ?", models.StatusApproved).
		Where("restaurant_id = ? OR dish_id IN (SELECT id FROM dishes WHERE restaurant_id = ?)", id, id).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	if err != nil {
		return 0, 0, err
	}
	return a.Avg, a.Count, nil
}

// DeleteCascade removes the restaurant together with everything that
// references it. Ordering matters: reviews first (both restaurant-level and
// dish-level), then dishes, then the restaurant itself, all in one
// transaction, so no review is ever left pointing at a deleted parent.
func (r *restaurantRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var dishIDs []uint
		if err := tx.Model(&models.Dish{}).Where("restaurant_id = ?", id).
			Pluck("id", &dishIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if len(dishIDs) > 0 {
			if err := tx.Where("dish_id IN ?", dishIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Restaurant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
