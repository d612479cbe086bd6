package handler

import (
	"github.com/diconnect/diconnect/internal/domain"
)

// GroupServiceInterface defines the interface for resource group operations.
type GroupServiceInterface interface {
	CreateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error)
	GetGroup(groupID string) (*domain.ResourceGroup, error)
	ListGroups() ([]domain.ResourceGroup, error)
	UpdateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error)
}

// PairUpServiceInterface defines the interface for pair-up participation operations.
type PairUpServiceInterface interface {
	SetPaused(userObjectID, teamID string, paused bool) (*domain.PairUpMapping, error)
	GetStatus(userObjectID string) ([]domain.PairUpMapping, error)
}
