package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/Domenick1991/turfbooking/internal/obs"
	"github.com/Domenick1991/turfbooking/internal/service/checkin"
	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	service checkin.CheckInUseCase
}

type bookingResponse struct {
	ID          string `json:"id"`
	TurfID      string `json:"turf_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Status      string `json:"status"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TotalAmount int64  `json:"total_amount"`
	CheckedInAt string `json:"checked_in_at,omitempty"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:          b.ID,
		TurfID:      b.TurfID,
		UserID:      b.UserID,
		UserName:    b.UserName,
		Status:      string(b.Status),
		StartTime:   b.StartTime.Format(time.RFC3339),
		EndTime:     b.EndTime.Format(time.RFC3339),
		TotalAmount: b.TotalAmount,
	}
	if b.CheckedInAt != nil {
		resp.CheckedInAt = b.CheckedInAt.Format(time.RFC3339)
	}
	return resp
}

func NewCheckInHandler(service checkin.CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{service: service}
}

func (h *CheckInHandler) Register(router *gin.RouterGroup) {
	router.POST("/checkin/verify", h.verify)
	router.POST("/bookings/:id/checkin", h.checkIn)
}

// verify receives the booking payload decoded from a scanned code by the client app
// and confirms it belongs to the calling owner's turf. Read-only.
func (h *CheckInHandler) verify(c *gin.Context) {
	var scanned domain.Booking
	if err := c.ShouldBindJSON(&scanned); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.VerifyOwnership(c.Request.Context(), &scanned, CallerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *CheckInHandler) checkIn(c *gin.Context) {
	booking, err := h.service.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	obs.IncCheckIn()
	c.JSON(http.StatusOK, toBookingResponse(booking))
}
