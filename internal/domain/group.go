package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// GroupType represents how an employee resource group is hosted.
type GroupType string

// Group type constants.
const (
	GroupTypeTeams    GroupType = "Teams"
	GroupTypeExternal GroupType = "External"
)

// NewGroupType creates a new GroupType with validation.
// Returns an error if the type is invalid.
func NewGroupType(s string) (GroupType, error) {
	t := GroupType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid group type: %s (must be one of: %s, %s)", s, GroupTypeTeams, GroupTypeExternal)
	}
	return t, nil
}

// IsValid checks if the group type is valid.
func (t GroupType) IsValid() bool {
	return t == GroupTypeTeams || t == GroupTypeExternal
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (t *GroupType) Scan(value any) error {
	s, err := scanString(value, "GroupType")
	if err != nil {
		return err
	}
	parsed, err := NewGroupType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (t GroupType) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid GroupType value: %s", t)
	}
	return string(t), nil
}

// MatchingFrequency represents how often a group's members are paired up.
type MatchingFrequency string

// Matching frequency constants.
const (
	FrequencyWeekly  MatchingFrequency = "Weekly"
	FrequencyMonthly MatchingFrequency = "Monthly"
)

// NewMatchingFrequency creates a new MatchingFrequency with validation.
func NewMatchingFrequency(s string) (MatchingFrequency, error) {
	f := MatchingFrequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid matching frequency: %s (must be one of: %s, %s)", s, FrequencyWeekly, FrequencyMonthly)
	}
	return f, nil
}

// IsValid checks if the frequency is valid.
func (f MatchingFrequency) IsValid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (f *MatchingFrequency) Scan(value any) error {
	s, err := scanString(value, "MatchingFrequency")
	if err != nil {
		return err
	}
	parsed, err := NewMatchingFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (f MatchingFrequency) Value() (driver.Value, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("invalid MatchingFrequency value: %s", f)
	}
	return string(f), nil
}

// ApprovalStatus represents the admin approval state of a group.
type ApprovalStatus string

// Approval status constants.
const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// NewApprovalStatus creates a new ApprovalStatus with validation.
func NewApprovalStatus(s string) (ApprovalStatus, error) {
	a := ApprovalStatus(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid approval status: %s (must be one of: %s, %s, %s)", s, ApprovalPending, ApprovalApproved, ApprovalRejected)
	}
	return a, nil
}

// IsValid checks if the approval status is valid.
func (a ApprovalStatus) IsValid() bool {
	return a == ApprovalPending || a == ApprovalApproved || a == ApprovalRejected
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (a *ApprovalStatus) Scan(value any) error {
	s, err := scanString(value, "ApprovalStatus")
	if err != nil {
		return err
	}
	parsed, err := NewApprovalStatus(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (a ApprovalStatus) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("invalid ApprovalStatus value: %s", a)
	}
	return string(a), nil
}

// ResourceGroup represents an employee resource group.
type ResourceGroup struct {
	GroupID                string            `json:"group_id" db:"group_id"`
	Name                   string            `json:"name" db:"name"`
	Description            string            `json:"description" db:"description"`
	GroupType              GroupType         `json:"group_type" db:"group_type"`
	TeamID                 string            `json:"team_id" db:"team_id"`
	MatchingFrequency      MatchingFrequency `json:"matching_frequency" db:"matching_frequency"`
	ProfileMatchingEnabled bool              `json:"profile_matching_enabled" db:"profile_matching_enabled"`
	ApprovalStatus         ApprovalStatus    `json:"approval_status" db:"approval_status"`
	CreatedAt              *time.Time        `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt              *time.Time        `json:"updatedAt,omitempty" db:"updated_at"`
}

func scanString(value any, typeName string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be NULL", typeName)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}
