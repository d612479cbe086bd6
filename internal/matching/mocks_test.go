package matching

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/diconnect/diconnect/internal/directory"
	"github.com/diconnect/diconnect/internal/domain"
)

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) ListOptedInForMatching(frequency domain.MatchingFrequency) ([]domain.ResourceGroup, error) {
	args := m.Called(frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceGroup), args.Error(1)
}

type MockMappingStore struct {
	mock.Mock
}

func (m *MockMappingStore) Exists(userObjectID, teamID string) (bool, error) {
	args := m.Called(userObjectID, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMappingStore) InsertIfMissing(userObjectID, teamID string) error {
	args := m.Called(userObjectID, teamID)
	return args.Error(0)
}

func (m *MockMappingStore) GetActiveByTeam(teamID string) ([]domain.PairUpMapping, error) {
	args := m.Called(teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PairUpMapping), args.Error(1)
}

type MockDirectoryClient struct {
	mock.Mock
}

func (m *MockDirectoryClient) TeamMembers(ctx context.Context, teamID string) ([]directory.Member, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Member), args.Error(1)
}

func (m *MockDirectoryClient) GetUser(ctx context.Context, userObjectID string) (*directory.Member, error) {
	args := m.Called(ctx, userObjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Member), args.Error(1)
}

// capturingPublisher records every batch it is asked to publish.
type capturingPublisher struct {
	batches [][][]byte
	err     error
}

func (p *capturingPublisher) PublishBatch(ctx context.Context, payloads [][]byte) error {
	if p.err != nil {
		return p.err
	}
	batch := make([][]byte, len(payloads))
	copy(batch, payloads)
	p.batches = append(p.batches, batch)
	return nil
}
