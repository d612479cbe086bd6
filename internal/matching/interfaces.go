package matching

import (
	"context"

	"github.com/diconnect/diconnect/internal/directory"
	"github.com/diconnect/diconnect/internal/domain"
)

// GroupStore lists the groups that take part in a matching cycle.
type GroupStore interface {
	ListOptedInForMatching(frequency domain.MatchingFrequency) ([]domain.ResourceGroup, error)
}

// MappingStore reads and writes pair-up participation rows.
type MappingStore interface {
	Exists(userObjectID, teamID string) (bool, error)
	InsertIfMissing(userObjectID, teamID string) error
	GetActiveByTeam(teamID string) ([]domain.PairUpMapping, error)
}

// DirectoryClient resolves team rosters and user profiles.
type DirectoryClient interface {
	TeamMembers(ctx context.Context, teamID string) ([]directory.Member, error)
	GetUser(ctx context.Context, userObjectID string) (*directory.Member, error)
}

// Publisher sends prepared notification payloads to the queue.
type Publisher interface {
	PublishBatch(ctx context.Context, payloads [][]byte) error
}
