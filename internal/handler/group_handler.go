package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diconnect/diconnect/internal/domain"
	"github.com/diconnect/diconnect/internal/service"
)

// GroupHandler handles resource group HTTP requests.
type GroupHandler struct {
	groupService GroupServiceInterface
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService GroupServiceInterface) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup handles POST /groups/create.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	groupType, err := domain.NewGroupType(req.GroupType)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	frequency := domain.FrequencyWeekly
	if req.MatchingFrequency != "" {
		frequency, err = domain.NewMatchingFrequency(req.MatchingFrequency)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	group, err := h.groupService.CreateGroup(&domain.ResourceGroup{
		Name:                   req.Name,
		Description:            req.Description,
		GroupType:              groupType,
		TeamID:                 req.TeamID,
		MatchingFrequency:      frequency,
		ProfileMatchingEnabled: req.ProfileMatchingEnabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupExists):
			Error(c, ErrorGroupExists, "resource group already exists", http.StatusConflict)
		case errors.Is(err, service.ErrTeamIDRequired):
			BadRequest(c, err.Error())
		default:
			InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, toGroupResponse(group))
}

// GetGroup handles GET /groups/get.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID := c.Query("group_id")
	if groupID == "" {
		BadRequest(c, "group_id parameter is required")
		return
	}

	group, err := h.groupService.GetGroup(groupID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			NotFound(c, "resource group not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, toGroupResponse(group))
}

// ListGroups handles GET /groups/list.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	response := make([]GroupResponse, len(groups))
	for i := range groups {
		response[i] = toGroupResponse(&groups[i])
	}
	c.JSON(http.StatusOK, response)
}

// UpdateGroup handles POST /groups/update.
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	frequency, err := domain.NewMatchingFrequency(req.MatchingFrequency)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	approval, err := domain.NewApprovalStatus(req.ApprovalStatus)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	group, err := h.groupService.UpdateGroup(&domain.ResourceGroup{
		GroupID:                req.GroupID,
		Name:                   req.Name,
		Description:            req.Description,
		TeamID:                 req.TeamID,
		MatchingFrequency:      frequency,
		ProfileMatchingEnabled: req.ProfileMatchingEnabled,
		ApprovalStatus:         approval,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			NotFound(c, "resource group not found")
		case errors.Is(err, service.ErrTeamIDRequired):
			BadRequest(c, err.Error())
		default:
			InternalError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, toGroupResponse(group))
}

func toGroupResponse(group *domain.ResourceGroup) GroupResponse {
	return GroupResponse{
		GroupID:                group.GroupID,
		Name:                   group.Name,
		Description:            group.Description,
		GroupType:              string(group.GroupType),
		TeamID:                 group.TeamID,
		MatchingFrequency:      string(group.MatchingFrequency),
		ProfileMatchingEnabled: group.ProfileMatchingEnabled,
		ApprovalStatus:         string(group.ApprovalStatus),
	}
}
