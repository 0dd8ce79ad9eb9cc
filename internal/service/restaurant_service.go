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

type RestaurantService interface {
	List() ([]dto.RestaurantResponse, error)
	Get(identity Identity, id uint) (*dto.RestaurantDetail, error)
	ListDishes(identity Identity, id uint) ([]dto.DishResponse, error)
	Create(identity Identity, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	Update(identity Identity, id uint, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Delete(identity Identity, id uint) error
	SetStatus(identity Identity, id uint, status string) (*dto.RestaurantResponse, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	reviewRepo     repository.ReviewRepository
	ratings        *cache.RatingsCache
}

func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	reviewRepo repository.ReviewRepository,
	ratings *cache.RatingsCache,
) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		reviewRepo:     reviewRepo,
		ratings:        ratings,
	}
}

// List returns approved restaurants only, for every viewer.
func (s *restaurantService) List() ([]dto.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.FindApproved()
	if err != nil {
		return nil, err
	}
	return dto.RestaurantListResponse(restaurants), nil
}

// Get returns one restaurant with its dishes and approved reviews. Pending
// and rejected restaurants are visible to the owner and admins only.
func (s *restaurantService) Get(identity Identity, id uint) (*dto.RestaurantDetail, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := readAccess(restaurant.Status, restaurant.OwnerID, identity); err != nil {
		return nil, err
	}

	dishes, err := s.dishRepo.FindByRestaurant(id)
	if err != nil {
		return nil, err
	}

	// Nested reviews are always filtered to approved, no matter who views
	// the parent.
	reviews, err := s.reviewRepo.FindApprovedByRestaurant(id)
	if err != nil {
		return nil, err
	}

	detail := &dto.RestaurantDetail{
		RestaurantResponse: *dto.FromModelToRestaurantResponse(restaurant),
		Dishes:             dto.DishListResponse(dishes),
		Reviews:            dto.ReviewListResponse(reviews),
	}
	detail.AverageRating, detail.RatingCount = s.ratingAggregate(id, restaurant.AverageRating)
	return detail, nil
}

// ratingAggregate reads the advisory rating summary, preferring the cache.
// Failures fall back to the stored column; the aggregate is never worth
// failing a read for.
func (s *restaurantService) ratingAggregate(id uint, stored float64) (float64, int64) {
	ctx := context.Background()

	if agg, ok, err := s.ratings.Get(ctx, id); err == nil && ok {
		return agg.Average, agg.Count
	}

	avg, count, err := s.restaurantRepo.AverageRating(id)
	if err != nil {
		return stored, 0
	}
	s.ratings.Set(ctx, id, cache.RatingAggregate{Average: avg, Count: count})
	return avg, count
}

// ListDishes returns the dishes of one restaurant, gated by the parent's
// visibility.
func (s *restaurantService) ListDishes(identity Identity, id uint) ([]dto.DishResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := readAccess(restaurant.Status, restaurant.OwnerID, identity); err != nil {
		return nil, err
	}

	dishes, err := s.dishRepo.FindByRestaurant(id)
	if err != nil {
		return nil, err
	}
	return dto.DishListResponse(dishes), nil
}

// Create creates a restaurant. Owners always become the owner of record
// regardless of the payload and start in pending; admins may assign any
// owner (or none) and publish immediately.
func (s *restaurantService) Create(identity Identity, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if !identity.Authenticated || (identity.Role != models.RoleAdmin && identity.Role != models.RoleOwner) {
		return nil, ErrForbidden
	}

	restaurant := &models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: req.OwnerID,
		Status:  models.InitialStatus(identity.Role),
	}
	if identity.Role == models.RoleOwner {
		ownerID := identity.UserID
		restaurant.OwnerID = &ownerID
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}
	return dto.FromModelToRestaurantResponse(restaurant), nil
}

// Update modifies name/address. A status field in the payload is honored for
// admins and silently ignored for everyone else; the rest of the update
// still proceeds.
func (s *restaurantService) Update(identity Identity, id uint, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
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
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Status != nil && identity.IsAdmin() {
		status, ok := models.ParseModerationStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		fields["status"] = status
	}

	if len(fields) > 0 {
		if err := s.restaurantRepo.Update(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// concurrently deleted between load and save
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	updated, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToRestaurantResponse(updated), nil
}

// Delete removes the restaurant and cascades over its dishes and every
// review referencing either.
func (s *restaurantService) Delete(identity Identity, id uint) error {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := writeAccess(restaurant.OwnerID, identity); err != nil {
		return err
	}

	if err := s.restaurantRepo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.ratings.Invalidate(context.Background(), id)
	return nil
}

// SetStatus moves the restaurant between moderation states. Admin only; any
// transition between the three states is allowed.
func (s *restaurantService) SetStatus(identity Identity, id uint, status string) (*dto.RestaurantResponse, error) {
	if !identity.IsAdmin() {
		return nil, ErrForbidden
	}

	parsed, ok := models.ParseModerationStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if err := s.restaurantRepo.UpdateStatus(id, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToRestaurantResponse(updated), nil
}
