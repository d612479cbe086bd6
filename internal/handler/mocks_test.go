package handler

import (
	"github.com/stretchr/testify/mock"

	"github.com/diconnect/diconnect/internal/domain"
)

type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) CreateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error) {
	args := m.Called(group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceGroup), args.Error(1)
}

func (m *MockGroupService) GetGroup(groupID string) (*domain.ResourceGroup, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceGroup), args.Error(1)
}

func (m *MockGroupService) ListGroups() ([]domain.ResourceGroup, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceGroup), args.Error(1)
}

func (m *MockGroupService) UpdateGroup(group *domain.ResourceGroup) (*domain.ResourceGroup, error) {
	args := m.Called(group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceGroup), args.Error(1)
}

type MockPairUpService struct {
	mock.Mock
}

func (m *MockPairUpService) SetPaused(userObjectID, teamID string, paused bool) (*domain.PairUpMapping, error) {
	args := m.Called(userObjectID, teamID, paused)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairUpMapping), args.Error(1)
}

func (m *MockPairUpService) GetStatus(userObjectID string) ([]domain.PairUpMapping, error) {
	args := m.Called(userObjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PairUpMapping), args.Error(1)
}
