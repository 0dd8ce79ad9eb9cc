package service

import (
	"github.com/stretchr/testify/mock"

	"platehub/internal/models"
)

// MockRestaurantRepository mocks the RestaurantRepository interface
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(restaurant *models.Restaurant) error {
	args := m.Called(restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindApproved() ([]models.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateStatus(id uint, status models.ModerationStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateAverageRating(id uint, avg float64) error {
	args := m.Called(id, avg)
	return args.Error(0)
}

func (m *MockRestaurantRepository) AverageRating(id uint) (float64, int64, error) {
	args := m.Called(id)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockRestaurantRepository) DeleteCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDishRepository mocks the DishRepository interface
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(dish *models.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MockDishRepository) FindByID(id uint) (*models.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByRestaurant(restaurantID uint) ([]models.Dish, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindWithApprovedRestaurant() ([]models.Dish, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockDishRepository) DeleteCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(id uint) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindApproved() ([]models.Review, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindApprovedByRestaurant(restaurantID uint) ([]models.Review, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindApprovedByDish(dishID uint) ([]models.Review, error) {
	args := m.Called(dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(id uint, fields map[string]any) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateStatus(id uint, status models.ModerationStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func uintPtr(v uint) *uint {
	return &v
}
