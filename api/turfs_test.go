package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTurfUseCase is a mock implementation of turfs.TurfUseCase
type MockTurfUseCase struct {
	mock.Mock
}

func (m *MockTurfUseCase) List(ctx context.Context) ([]domain.Turf, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Turf), args.Error(1)
}

func (m *MockTurfUseCase) GetByID(ctx context.Context, id string) (*domain.Turf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turf), args.Error(1)
}

func TestTurfHandler_list(t *testing.T) {
	mockService := &MockTurfUseCase{}
	handler := NewTurfHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/turfs", nil)

	visible := []domain.Turf{
		{ID: "t1", OwnerID: "ownerA", Name: "Green Arena", IsVerified: true, IsActive: true, Images: []string{}, Amenities: []string{}},
	}
	mockService.On("List", c.Request.Context()).Return(visible, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTurfHandler_get(t *testing.T) {
	mockService := &MockTurfUseCase{}
	handler := NewTurfHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	c.Request = httptest.NewRequest("GET", "/turfs/t1", nil)

	turf := &domain.Turf{ID: "t1", OwnerID: "ownerA", Name: "Green Arena", IsVerified: true, IsActive: true}
	mockService.On("GetByID", c.Request.Context(), "t1").Return(turf, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
