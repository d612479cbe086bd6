package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents API error codes.
type ErrorCode string

const (
	ErrorGroupExists     ErrorCode = "GROUP_EXISTS"
	ErrorMappingNotFound ErrorCode = "MAPPING_NOT_FOUND"
	ErrorNotFound        ErrorCode = "NOT_FOUND"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// GroupResponse wraps resource group data.
type GroupResponse struct {
	GroupID                string `json:"group_id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	GroupType              string `json:"group_type"`
	TeamID                 string `json:"team_id"`
	MatchingFrequency      string `json:"matching_frequency"`
	ProfileMatchingEnabled bool   `json:"profile_matching_enabled"`
	ApprovalStatus         string `json:"approval_status"`
}

// MappingResponse wraps one pair-up participation row.
type MappingResponse struct {
	UserObjectID string `json:"user_object_id"`
	TeamID       string `json:"team_id"`
	IsPaused     bool   `json:"is_paused"`
}

// StatusResponse wraps a user's participation rows.
type StatusResponse struct {
	UserObjectID string            `json:"user_object_id"`
	Mappings     []MappingResponse `json:"mappings"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, "", message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}
