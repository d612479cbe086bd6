package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/diconnect/diconnect/internal/domain"
	"github.com/diconnect/diconnect/internal/repository"
)

// GroupService handles resource group business logic.
type GroupService struct {
	groups GroupStore
}

// NewGroupService creates a new group service.
func NewGroupService(groups GroupStore) *GroupService {
	return &GroupService{groups: groups}
}

// CreateGroup creates a resource group in Pending approval state.
// The admin approval workflow moves it to Approved or Rejected later.
func (s *GroupService) CreateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error) {
	if group.GroupType == domain.GroupTypeTeams && group.TeamID == "" {
		return nil, ErrTeamIDRequired
	}
	if group.GroupID == "" {
		group.GroupID = uuid.NewString()
	}
	group.ApprovalStatus = domain.ApprovalPending
	if group.MatchingFrequency == "" {
		group.MatchingFrequency = domain.FrequencyWeekly
	}

	if err := s.groups.Create(group); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrGroupExists
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	created, err := s.groups.Get(group.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created group: %w", err)
	}
	return created, nil
}

// GetGroup retrieves a resource group by ID.
func (s *GroupService) GetGroup(groupID string) (*domain.ResourceGroup, error) {
	group, err := s.groups.Get(groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroups retrieves all resource groups.
func (s *GroupService) ListGroups() ([]domain.ResourceGroup, error) {
	groups, err := s.groups.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// UpdateGroup applies admin edits to a group, including approval status,
// matching frequency and the profile matching flag.
func (s *GroupService) UpdateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error) {
	existing, err := s.groups.Get(group.GroupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	// Group type is fixed at creation.
	group.GroupType = existing.GroupType
	if group.GroupType == domain.GroupTypeTeams && group.TeamID == "" {
		return nil, ErrTeamIDRequired
	}

	if err := s.groups.Update(group); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	updated, err := s.groups.Get(group.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated group: %w", err)
	}
	return updated, nil
}
