package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"platehub/internal/dto"
	"platehub/internal/models"
	"platehub/internal/service"
)

// restaurantTestServer wires the handler through its real route registration,
// middleware included, against mocked services.
func restaurantTestServer(restaurantService *MockRestaurantService, authService *MockAuthService) http.Handler {
	router := setupRouter()
	api := router.Group("/api")
	NewRestaurantHandler(restaurantService).RegisterRoutes(api, authService)
	return router
}

func TestRestaurantList_Anonymous(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	mockService.On("List").Return([]dto.RestaurantResponse{
		{ID: 1, Name: "Pica House", Status: "approved"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/restaurants", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.RestaurantResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.Equal(t, "Pica House", response[0].Name)

	mockService.AssertExpectations(t)
}

func TestRestaurantGet_HiddenReturns404(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	mockService.On("Get", service.Anonymous(), uint(2)).Return(nil, service.ErrNotFound)

	req, _ := http.NewRequest("GET", "/api/restaurants/2", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestaurantGet_ForbiddenReturns403(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	identity := service.NewIdentity(99, models.RoleUser)
	mockAuth.On("ValidateToken", "user-token").Return(&service.Claims{
		UserID: 99, Role: models.RoleUser,
	}, nil)
	mockService.On("Get", identity, uint(2)).Return(nil, service.ErrForbidden)

	req, _ := http.NewRequest("GET", "/api/restaurants/2", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRestaurantGet_InvalidID(t *testing.T) {
	server := restaurantTestServer(new(MockRestaurantService), new(MockAuthService))

	req, _ := http.NewRequest("GET", "/api/restaurants/abc", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestaurantCreate_RequiresToken(t *testing.T) {
	mockService := new(MockRestaurantService)
	server := restaurantTestServer(mockService, new(MockAuthService))

	body, _ := json.Marshal(dto.CreateRestaurantRequest{Name: "Grill Garden"})
	req, _ := http.NewRequest("POST", "/api/restaurants", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestRestaurantCreate_PlainUserBlockedByMiddleware(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	mockAuth.On("ValidateToken", "user-token").Return(&service.Claims{
		UserID: 3, Role: models.RoleUser,
	}, nil)

	body, _ := json.Marshal(dto.CreateRestaurantRequest{Name: "Grill Garden"})
	req, _ := http.NewRequest("POST", "/api/restaurants", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer user-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestRestaurantCreate_Owner(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	identity := service.NewIdentity(7, models.RoleOwner)
	mockAuth.On("ValidateToken", "owner-token").Return(&service.Claims{
		UserID: 7, Role: models.RoleOwner,
	}, nil)

	reqBody := dto.CreateRestaurantRequest{Name: "Grill Garden", Address: "12 Oak St"}
	mockService.On("Create", identity, reqBody).Return(&dto.RestaurantResponse{
		ID: 2, Name: "Grill Garden", Status: "pending", OwnerID: uintPtr(7),
	}, nil)

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/api/restaurants", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer owner-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.RestaurantResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "pending", response.Status)
	assert.Equal(t, uint(7), *response.OwnerID)

	mockService.AssertExpectations(t)
}

func TestRestaurantUpdate_NotFound(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	identity := service.NewIdentity(1, models.RoleAdmin)
	mockAuth.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: 1, Role: models.RoleAdmin,
	}, nil)

	name := "Renamed"
	reqBody := dto.UpdateRestaurantRequest{Name: &name}
	mockService.On("Update", identity, uint(404), reqBody).Return(nil, service.ErrNotFound)

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("PUT", "/api/restaurants/404", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestaurantDelete_Success(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	identity := service.NewIdentity(7, models.RoleOwner)
	mockAuth.On("ValidateToken", "owner-token").Return(&service.Claims{
		UserID: 7, Role: models.RoleOwner,
	}, nil)
	mockService.On("Delete", identity, uint(2)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/restaurants/2", nil)
	req.Header.Set("Authorization", "Bearer owner-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestRestaurantSetStatus_NonAdminBlocked(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	mockAuth.On("ValidateToken", "owner-token").Return(&service.Claims{
		UserID: 7, Role: models.RoleOwner,
	}, nil)

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "approved"})
	req, _ := http.NewRequest("PATCH", "/api/restaurants/2/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer owner-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "SetStatus")
}

func TestRestaurantSetStatus_Admin(t *testing.T) {
	mockService := new(MockRestaurantService)
	mockAuth := new(MockAuthService)
	server := restaurantTestServer(mockService, mockAuth)

	identity := service.NewIdentity(1, models.RoleAdmin)
	mockAuth.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: 1, Role: models.RoleAdmin,
	}, nil)
	mockService.On("SetStatus", identity, uint(2), "approved").Return(&dto.RestaurantResponse{
		ID: 2, Name: "Grill Garden", Status: "approved",
	}, nil)

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "approved"})
	req, _ := http.NewRequest("PATCH", "/api/restaurants/2/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.RestaurantResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "approved", response.Status)

	mockService.AssertExpectations(t)
}

func TestRestaurantListDishes_Anonymous(t *testing.T) {
	mockService := new(MockRestaurantService)
	server := restaurantTestServer(mockService, new(MockAuthService))

	mockService.On("ListDishes", service.Anonymous(), uint(1)).Return([]dto.DishResponse{
		{ID: 10, Name: "Margarita", RestaurantID: 1},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/restaurants/1/dishes", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
