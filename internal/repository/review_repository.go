package repository

import (
	"platehub/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id uint) (*models.Review, error)
	FindApproved() ([]models.Review, error)
	FindApprovedByRestaurant(restaurantID uint) ([]models.Review, error)
	FindApprovedByDish(dishID uint) ([]models.Review, error)
	Update(id uint, fields map[string]any) error
	UpdateStatus(id uint, status models.ModerationStatus) error
	Delete(id uint) error
}

// reviewRepository is the GORM implementation of ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("Author").First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindApproved() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("status = ?", models.StatusApproved).
		Preload("Author").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindApprovedByRestaurant returns the approved reviews targeting the
// restaurant directly (dish reviews are listed under their dish).
func (r *reviewRepository) FindApprovedByRestaurant(restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusApproved).
		Preload("Author").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindApprovedByDish(dishID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("dish_id = ? AND status = ?", dishID, models.StatusApproved).
		Preload("Author").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update applies the given column values; a vanished row is reported as
// gorm.ErrRecordNotFound.
func (r *reviewRepository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) UpdateStatus(id uint, status models.ModerationStatus) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
