package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"platehub/internal/dto"
	"platehub/internal/models"
	"platehub/internal/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockRestaurantService mocks the RestaurantService interface
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) List() ([]dto.RestaurantResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RestaurantResponse), args.Error(1)
}

func (m *MockRestaurantService) Get(identity service.Identity, id uint) (*dto.RestaurantDetail, error) {
	args := m.Called(identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RestaurantDetail), args.Error(1)
}

func (m *MockRestaurantService) ListDishes(identity service.Identity, id uint) ([]dto.DishResponse, error) {
	args := m.Called(identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DishResponse), args.Error(1)
}

func (m *MockRestaurantService) Create(identity service.Identity, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	args := m.Called(identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RestaurantResponse), args.Error(1)
}

func (m *MockRestaurantService) Update(identity service.Identity, id uint, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	args := m.Called(identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RestaurantResponse), args.Error(1)
}

func (m *MockRestaurantService) Delete(identity service.Identity, id uint) error {
	args := m.Called(identity, id)
	return args.Error(0)
}

func (m *MockRestaurantService) SetStatus(identity service.Identity, id uint, status string) (*dto.RestaurantResponse, error) {
	args := m.Called(identity, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RestaurantResponse), args.Error(1)
}

// MockDishService mocks the DishService interface
type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) List() ([]dto.DishResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DishResponse), args.Error(1)
}

func (m *MockDishService) Get(identity service.Identity, id uint) (*dto.DishDetail, error) {
	args := m.Called(identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishDetail), args.Error(1)
}

func (m *MockDishService) Create(identity service.Identity, req dto.CreateDishRequest) (*dto.DishResponse, error) {
	args := m.Called(identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishResponse), args.Error(1)
}

func (m *MockDishService) Update(identity service.Identity, id uint, req dto.UpdateDishRequest) (*dto.DishResponse, error) {
	args := m.Called(identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishResponse), args.Error(1)
}

func (m *MockDishService) Delete(identity service.Identity, id uint) error {
	args := m.Called(identity, id)
	return args.Error(0)
}

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List() ([]dto.ReviewResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Get(identity service.Identity, id uint) (*dto.ReviewResponse, error) {
	args := m.Called(identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Create(identity service.Identity, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Update(identity service.Identity, id uint, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(identity, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Delete(identity service.Identity, id uint) error {
	args := m.Called(identity, id)
	return args.Error(0)
}

func (m *MockReviewService) SetStatus(identity service.Identity, id uint, status string) (*dto.ReviewResponse, error) {
	args := m.Called(identity, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func uintPtr(v uint) *uint {
	return &v
}
