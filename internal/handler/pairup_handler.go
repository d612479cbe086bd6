package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diconnect/diconnect/internal/service"
)

// PairUpHandler handles pair-up participation HTTP requests.
type PairUpHandler struct {
	pairUpService PairUpServiceInterface
}

// NewPairUpHandler creates a new pair-up handler.
func NewPairUpHandler(pairUpService PairUpServiceInterface) *PairUpHandler {
	return &PairUpHandler{pairUpService: pairUpService}
}

// Pause handles POST /pairup/pause.
func (h *PairUpHandler) Pause(c *gin.Context) {
	h.setPaused(c, true)
}

// Resume handles POST /pairup/resume.
func (h *PairUpHandler) Resume(c *gin.Context) {
	h.setPaused(c, false)
}

func (h *PairUpHandler) setPaused(c *gin.Context, paused bool) {
	var req SetPausedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	mapping, err := h.pairUpService.SetPaused(req.UserObjectID, req.TeamID, paused)
	if err != nil {
		if errors.Is(err, service.ErrMappingNotFound) {
			Error(c, ErrorMappingNotFound, "no pair-up mapping for this user and team", http.StatusNotFound)
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, MappingResponse{
		UserObjectID: mapping.UserObjectID,
		TeamID:       mapping.TeamID,
		IsPaused:     mapping.IsPaused,
	})
}

// Status handles GET /pairup/status.
func (h *PairUpHandler) Status(c *gin.Context) {
	userObjectID := c.Query("user_object_id")
	if userObjectID == "" {
		BadRequest(c, "user_object_id parameter is required")
		return
	}

	mappings, err := h.pairUpService.GetStatus(userObjectID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	response := StatusResponse{
		UserObjectID: userObjectID,
		Mappings:     make([]MappingResponse, len(mappings)),
	}
	for i, m := range mappings {
		response.Mappings[i] = MappingResponse{
			UserObjectID: m.UserObjectID,
			TeamID:       m.TeamID,
			IsPaused:     m.IsPaused,
		}
	}

	c.JSON(http.StatusOK, response)
}
