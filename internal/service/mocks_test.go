package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/diconnect/diconnect/internal/domain"
)

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) Create(group *domain.ResourceGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupStore) Get(groupID string) (*domain.ResourceGroup, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceGroup), args.Error(1)
}

func (m *MockGroupStore) List() ([]domain.ResourceGroup, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceGroup), args.Error(1)
}

func (m *MockGroupStore) Update(group *domain.ResourceGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

type MockMappingStore struct {
	mock.Mock
}

func (m *MockMappingStore) Get(userObjectID, teamID string) (*domain.PairUpMapping, error) {
	args := m.Called(userObjectID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairUpMapping), args.Error(1)
}

func (m *MockMappingStore) GetByUser(userObjectID string) ([]domain.PairUpMapping, error) {
	args := m.Called(userObjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PairUpMapping), args.Error(1)
}

func (m *MockMappingStore) SetPaused(userObjectID, teamID string, paused bool) error {
	args := m.Called(userObjectID, teamID, paused)
	return args.Error(0)
}
