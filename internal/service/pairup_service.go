package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diconnect/diconnect/internal/domain"
)

// PairUpService handles pair-up participation business logic.
type PairUpService struct {
	mappings MappingStore
}

// NewPairUpService creates a new pair-up service.
func NewPairUpService(mappings MappingStore) *PairUpService {
	return &PairUpService{mappings: mappings}
}

// SetPaused pauses or resumes a user's participation on one team.
// The mapping row must already exist; rows are only created by member sync
// when the user is observed on the team roster.
func (s *PairUpService) SetPaused(userObjectID, teamID string, paused bool) (*domain.PairUpMapping, error) {
	if err := s.mappings.SetPaused(userObjectID, teamID, paused); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to update pause flag: %w", err)
	}

	mapping, err := s.mappings.Get(userObjectID, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated mapping: %w", err)
	}
	return mapping, nil
}

// GetStatus returns a user's participation rows across all teams.
func (s *PairUpService) GetStatus(userObjectID string) ([]domain.PairUpMapping, error) {
	mappings, err := s.mappings.GetByUser(userObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participation status: %w", err)
	}
	return mappings, nil
}
