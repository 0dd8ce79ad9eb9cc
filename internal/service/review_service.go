package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"platehub/internal/cache"
	"platehub/internal/dto"
	"platehub/internal/models"
	"platehub/internal/repository"
)

type ReviewService interface {
	List() ([]dto.ReviewResponse, error)
	Get(identity Identity, id uint) (*dto.ReviewResponse, error)
	Create(identity Identity, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(identity Identity, id uint, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(identity Identity, id uint) error
	SetStatus(identity Identity, id uint, status string) (*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	ratings        *cache.RatingsCache
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	ratings *cache.RatingsCache,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		ratings:        ratings,
	}
}

// List returns approved reviews only, for every viewer.
func (s *reviewService) List() ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindApproved()
	if err != nil {
		return nil, err
	}
	return dto.ReviewListResponse(reviews), nil
}

// Get returns one review. Pending/rejected reviews are visible to the author
// and admins only.
func (s *reviewService) Get(identity Identity, id uint) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := readAccess(review.Status, &review.AuthorID, identity); err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

// Create creates a review targeting exactly one of a restaurant or a dish.
// Any authenticated user may review anything; ownership of the target is
// irrelevant. Validation runs before the reference checks, reference checks
// before anything is written.
func (s *reviewService) Create(identity Identity, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if !identity.Authenticated {
		return nil, ErrForbidden
	}

	if (req.RestaurantID == nil) == (req.DishID == nil) {
		return nil, ErrReviewTarget
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if req.RestaurantID != nil {
		if _, err := s.restaurantRepo.FindByID(*req.RestaurantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRestaurantNotFound
			}
			return nil, err
		}
	}
	if req.DishID != nil {
		if _, err := s.dishRepo.FindByID(*req.DishID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDishNotFound
			}
			return nil, err
		}
	}

	review := &models.Review{
		Rating:       req.Rating,
		Comment:      req.Comment,
		AuthorID:     identity.UserID,
		RestaurantID: req.RestaurantID,
		DishID:       req.DishID,
		// Reviews publish immediately; admins can still reject them later.
		Status: models.StatusApproved,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	s.refreshRatings(review)

	// Reload with author data
	created, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(created), nil
}

// Update modifies rating and comment. Only the author or an admin may
// change a review; the target references are immutable.
func (s *reviewService) Update(identity Identity, id uint, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := writeAccess(&review.AuthorID, identity); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}

	if len(fields) > 0 {
		if err := s.reviewRepo.Update(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// concurrently deleted between load and save
				return nil, ErrNotFound
			}
			return nil, err
		}
		s.refreshRatings(review)
	}

	updated, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToReviewResponse(updated), nil
}

// Delete removes a review. Only the author or an admin may delete it.
func (s *reviewService) Delete(identity Identity, id uint) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := writeAccess(&review.AuthorID, identity); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.refreshRatings(review)
	return nil
}

// SetStatus moves the review between moderation states. Admin only; any
// transition between the three states is allowed.
func (s *reviewService) SetStatus(identity Identity, id uint, status string) (*dto.ReviewResponse, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}

	parsed, ok := models.ParseModerationStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if err := s.reviewRepo.UpdateStatus(id, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// approved averages may have shifted
	s.refreshRatings(updated)
	return dto.FromModelToReviewResponse(updated), nil
}

// refreshRatings recomputes the advisory average of the restaurant the
// review belongs to (directly or via its dish) and refreshes the cache.
// Best-effort: the aggregate is advisory and never fails the operation.
func (s *reviewService) refreshRatings(review *models.Review) {
	restaurantID, ok := s.targetRestaurant(review)
	if !ok {
		return
	}

	avg, count, err := s.restaurantRepo.AverageRating(restaurantID)
	if err != nil {
		return
	}
	s.restaurantRepo.UpdateAverageRating(restaurantID, avg)
	s.ratings.Set(context.Background(), restaurantID, cache.RatingAggregate{Average: avg, Count: count})
}

func (s *reviewService) targetRestaurant(review *models.Review) (uint, bool) {
	if review.RestaurantID != nil {
		return *review.RestaurantID, true
	}
	if review.DishID != nil {
		dish, err := s.dishRepo.FindByID(*review.DishID)
		if err != nil {
			return 0, false
		}
		return dish.RestaurantID, true
	}
	return 0, false
}
