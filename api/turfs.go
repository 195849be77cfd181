package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/Domenick1991/turfbooking/internal/service/turfs"
	"github.com/gin-gonic/gin"
)

type TurfHandler struct {
	service turfs.TurfUseCase
}

type turfResponse struct {
	ID              string   `json:"id"`
	OwnerID         string   `json:"owner_id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	PricePerHour    int64    `json:"price_per_hour"`
	Images          []string `json:"images"`
	Amenities       []string `json:"amenities"`
	IsVerified      bool     `json:"is_verified"`
	IsActive        bool     `json:"is_active"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	VerifiedAt      string   `json:"verified_at,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

func toTurfResponse(t *domain.Turf) turfResponse {
	resp := turfResponse{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Location:     t.Location,
		Description:  t.Description,
		PricePerHour: t.PricePerHour,
		Images:       t.Images,
		Amenities:    t.Amenities,
		IsVerified:   t.IsVerified,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.RejectionReason != nil {
		resp.RejectionReason = *t.RejectionReason
	}
	if t.VerifiedAt != nil {
		resp.VerifiedAt = t.VerifiedAt.Format(time.RFC3339)
	}
	return resp
}

func toTurfResponses(ts []domain.Turf) []turfResponse {
	out := make([]turfResponse, 0, len(ts))
	for i := range ts {
		out = append(out, toTurfResponse(&ts[i]))
	}
	return out
}

func NewTurfHandler(service turfs.TurfUseCase) *TurfHandler {
	return &TurfHandler{service: service}
}

func (h *TurfHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *TurfHandler) list(c *gin.Context) {
	visible, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTurfResponses(visible))
}

func (h *TurfHandler) get(c *gin.Context) {
	turf, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTurfResponse(turf))
}
