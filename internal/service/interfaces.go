package service

import "github.com/diconnect/diconnect/internal/domain"

// GroupStore defines the repository operations the group service needs.
type GroupStore interface {
	Create(group *domain.ResourceGroup) error
	Get(groupID string) (*domain.ResourceGroup, error)
	List() ([]domain.ResourceGroup, error)
	Update(group *domain.ResourceGroup) error
}

// MappingStore defines the repository operations the pair-up service needs.
type MappingStore interface {
	Get(userObjectID, teamID string) (*domain.PairUpMapping, error)
	GetByUser(userObjectID string) ([]domain.PairUpMapping, error)
	SetPaused(userObjectID, teamID string, paused bool) error
}
