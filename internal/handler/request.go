package handler

// CreateGroupRequest represents POST /groups/create body.
type CreateGroupRequest struct {
	Name                   string `json:"name" binding:"required"`
	Description            string `json:"description"`
	GroupType              string `json:"group_type" binding:"required"`
	TeamID                 string `json:"team_id"`
	MatchingFrequency      string `json:"matching_frequency"`
	ProfileMatchingEnabled bool   `json:"profile_matching_enabled"`
}

// UpdateGroupRequest represents POST /groups/update body.
type UpdateGroupRequest struct {
	GroupID                string `json:"group_id" binding:"required"`
	Name                   string `json:"name" binding:"required"`
	Description            string `json:"description"`
	TeamID                 string `json:"team_id"`
	MatchingFrequency      string `json:"matching_frequency" binding:"required"`
	ProfileMatchingEnabled bool   `json:"profile_matching_enabled"`
	ApprovalStatus         string `json:"approval_status" binding:"required"`
}

// SetPausedRequest represents POST /pairup/pause and /pairup/resume bodies.
type SetPausedRequest struct {
	UserObjectID string `json:"user_object_id" binding:"required"`
	TeamID       string `json:"team_id" binding:"required"`
}
