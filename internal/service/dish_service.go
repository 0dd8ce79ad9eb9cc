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

type DishService interface {
	List() ([]dto.DishResponse, error)
	Get(identity Identity, id uint) (*dto.DishDetail, error)
	Create(identity Identity, req dto.CreateDishRequest) (*dto.DishResponse, error)
	Update(identity Identity, id uint, req dto.UpdateDishRequest) (*dto.DishResponse, error)
	Delete(identity Identity, id uint) error
}

type dishService struct {
	dishRepo       repository.DishRepository
	restaurantRepo repository.RestaurantRepository
	reviewRepo     repository.ReviewRepository
	ratings        *cache.RatingsCache
}

func NewDishService(
	dishRepo repository.DishRepository,
	restaurantRepo repository.RestaurantRepository,
	reviewRepo repository.ReviewRepository,
	ratings *cache.RatingsCache,
) DishService {
	return &dishService{
		dishRepo:       dishRepo,
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		ratings:        ratings,
	}
}

// List returns dishes whose parent restaurant is approved.
func (s *dishService) List() ([]dto.DishResponse, error) {
	dishes, err := s.dishRepo.FindWithApprovedRestaurant()
	if err != nil {
		return nil, err
	}
	return dto.DishListResponse(dishes), nil
}

// Get returns one dish with its approved reviews. The dish has no moderation
// state of its own: visibility is entirely the parent restaurant's.
func (s *dishService) Get(identity Identity, id uint) (*dto.DishDetail, error) {
	dish, err := s.dishRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(dish.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// parent gone; the dish is unreachable for everyone
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := readAccess(restaurant.Status, restaurant.OwnerID, identity); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindApprovedByDish(id)
	if err != nil {
		return nil, err
	}

	return &dto.DishDetail{
		DishResponse: *dto.FromModelToDishResponse(dish),
		Reviews:      dto.ReviewListResponse(reviews),
	}, nil
}

// Create adds a dish to a restaurant. The target restaurant must exist
// before any ownership check runs; then only its owner or an admin may add.
func (s *dishService) Create(identity Identity, req dto.CreateDishRequest) (*dto.DishResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if err := writeAccess(restaurant.OwnerID, identity); err != nil {
		return nil, err
	}

	dish := &models.Dish{
		Name:         req.Name,
		Description:  req.Description,
		RestaurantID: req.RestaurantID,
	}
	if err := s.dishRepo.Create(dish); err != nil {
		return nil, err
	}
	return dto.FromModelToDishResponse(dish), nil
}

// Update modifies a dish; a new restaurant_id moves it. The target
// restaurant is re-resolved and its owner authorizes the change.
func (s *dishService) Update(identity Identity, id uint, req dto.UpdateDishRequest) (*dto.DishResponse, error) {
	dish, err := s.dishRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	targetRestaurantID := dish.RestaurantID
	if req.RestaurantID != nil {
		targetRestaurantID = *req.RestaurantID
	}

	restaurant, err := s.restaurantRepo.FindByID(targetRestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if err := writeAccess(restaurant.OwnerID, identity); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.RestaurantID != nil {
		fields["restaurant_id"] = *req.RestaurantID
	}

	if len(fields) > 0 {
		if err := s.dishRepo.Update(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if req.RestaurantID != nil && *req.RestaurantID != dish.RestaurantID {
			// the dish's reviews now count toward a different restaurant
			s.refreshRatings(dish.RestaurantID)
			s.refreshRatings(*req.RestaurantID)
		}
	}

	updated, err := s.dishRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToDishResponse(updated), nil
}

// Delete removes the dish together with every review referencing it.
func (s *dishService) Delete(identity Identity, id uint) error {
	dish, err := s.dishRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	restaurant, err := s.restaurantRepo.FindByID(dish.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := writeAccess(restaurant.OwnerID, identity); err != nil {
		return err
	}

	if err := s.dishRepo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// the cascade took the dish's reviews with it
	s.refreshRatings(dish.RestaurantID)
	return nil
}

// refreshRatings recomputes the parent restaurant's advisory average after
// dish reviews appear or disappear. Best-effort, same as the review service.
func (s *dishService) refreshRatings(restaurantID uint) {
	avg, count, err := s.restaurantRepo.AverageRating(restaurantID)
	if err != nil {
		return
	}
	s.restaurantRepo.UpdateAverageRating(restaurantID, avg)
	s.ratings.Set(context.Background(), restaurantID, cache.RatingAggregate{Average: avg, Count: count})
}
