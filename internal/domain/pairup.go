package domain

import "time"

// PairUpMapping is the per-team participation record for one user.
// Rows are inserted when a user is first seen on a team roster and are
// never deleted; the pause flag survives a user leaving and rejoining.
type PairUpMapping struct {
	UserObjectID string     `json:"user_object_id" db:"user_object_id"`
	TeamID       string     `json:"team_id" db:"team_id"`
	IsPaused     bool       `json:"is_paused" db:"is_paused"`
	CreatedAt    *time.Time `json:"createdAt,omitempty" db:"created_at"`
}

// TeamUserMapping is the pairing-time projection of a participant:
// a resolved directory profile combined with the team it was resolved for.
// It exists only for the duration of one matching run.
type TeamUserMapping struct {
	UserObjectID      string
	UserGivenName     string
	UserPrincipalName string
	TeamID            string
	TeamName          string
}

// Pair is one matched couple produced by the pairing algorithm.
type Pair struct {
	First  TeamUserMapping
	Second TeamUserMapping
}

// UserConversation holds the messenger conversation reference for a user.
// A user without a conversation ID has not installed the bot and cannot
// receive notifications.
type UserConversation struct {
	UserObjectID   string     `json:"user_object_id" db:"user_object_id"`
	ConversationID string     `json:"conversation_id" db:"conversation_id"`
	ServiceURL     string     `json:"service_url" db:"service_url"`
	GivenName      string     `json:"given_name" db:"given_name"`
	PrincipalName  string     `json:"principal_name" db:"principal_name"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}
