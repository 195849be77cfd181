package api

import (
	"net/http"

	"github.com/Domenick1991/turfbooking/internal/obs"
	"github.com/Domenick1991/turfbooking/internal/service/moderation"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	service moderation.ModerationUseCase
}

type rejectTurfRequest struct {
	Reason string `json:"reason"`
}

func NewModerationHandler(service moderation.ModerationUseCase) *ModerationHandler {
	return &ModerationHandler{service: service}
}

func (h *ModerationHandler) Register(router *gin.RouterGroup) {
	router.GET("/pending", h.listPending)
	router.POST("/:id/approve", h.approve)
	router.POST("/:id/reject", h.reject)
}

func (h *ModerationHandler) listPending(c *gin.Context) {
	pending, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTurfResponses(pending))
}

func (h *ModerationHandler) approve(c *gin.Context) {
	turf, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	obs.IncModeration("approved")
	c.JSON(http.StatusOK, toTurfResponse(turf))
}

func (h *ModerationHandler) reject(c *gin.Context) {
	var req rejectTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turf, err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}

	obs.IncModeration("rejected")
	c.JSON(http.StatusOK, toTurfResponse(turf))
}
