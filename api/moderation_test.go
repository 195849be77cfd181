package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockModerationUseCase is a mock implementation of moderation.ModerationUseCase
type MockModerationUseCase struct {
	mock.Mock
}

func (m *MockModerationUseCase) ListPending(ctx context.Context) ([]domain.Turf, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Turf), args.Error(1)
}

func (m *MockModerationUseCase) Approve(ctx context.Context, turfID string) (*domain.Turf, error) {
	args := m.Called(ctx, turfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turf), args.Error(1)
}

func (m *MockModerationUseCase) Reject(ctx context.Context, turfID, reason string) (*domain.Turf, error) {
	args := m.Called(ctx, turfID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turf), args.Error(1)
}

func TestModerationHandler_listPending(t *testing.T) {
	mockService := &MockModerationUseCase{}
	handler := NewModerationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/turfs/pending", nil)

	pending := []domain.Turf{
		{ID: "t1", OwnerID: "ownerA", Name: "Green Arena", Images: []string{}, Amenities: []string{}},
	}
	mockService.On("ListPending", c.Request.Context()).Return(pending, nil)

	handler.listPending(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestModerationHandler_approve(t *testing.T) {
	mockService := &MockModerationUseCase{}
	handler := NewModerationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	c.Request = httptest.NewRequest("POST", "/admin/turfs/t1/approve", nil)

	approved := &domain.Turf{ID: "t1", OwnerID: "ownerA", IsVerified: true, IsActive: true}
	mockService.On("Approve", c.Request.Context(), "t1").Return(approved, nil)

	handler.approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_verified":true`)
	mockService.AssertExpectations(t)
}

func TestModerationHandler_approve_notFound(t *testing.T) {
	mockService := &MockModerationUseCase{}
	handler := NewModerationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("POST", "/admin/turfs/missing/approve", nil)

	mockService.On("Approve", c.Request.Context(), "missing").Return(nil, domain.ErrTurfNotFound)

	handler.approve(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModerationHandler_reject_validation(t *testing.T) {
	mockService := &MockModerationUseCase{}
	handler := NewModerationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	c.Request = httptest.NewRequest("POST", "/admin/turfs/t1/reject", strings.NewReader(`{"reason":"   "}`))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Reject", c.Request.Context(), "t1", "   ").
		Return(nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation))

	handler.reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestModerationHandler_reject(t *testing.T) {
	mockService := &MockModerationUseCase{}
	handler := NewModerationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "t2"}}
	c.Request = httptest.NewRequest("POST", "/admin/turfs/t2/reject", strings.NewReader(`{"reason":"Incomplete information"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	reason := "Incomplete information"
	rejected := &domain.Turf{ID: "t2", OwnerID: "ownerB", RejectionReason: &reason}
	mockService.On("Reject", c.Request.Context(), "t2", reason).Return(rejected, nil)

	handler.reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rejection_reason":"Incomplete information"`)
	mockService.AssertExpectations(t)
}
