package matching

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
)

// MemberSync reconciles a team's directory roster into the mapping table.
type MemberSync struct {
	directory DirectoryClient
	mappings  MappingStore
	log       logrus.FieldLogger
}

// NewMemberSync creates a new member sync stage.
func NewMemberSync(directory DirectoryClient, mappings MappingStore, log logrus.FieldLogger) *MemberSync {
	return &MemberSync{directory: directory, mappings: mappings, log: log}
}

// Run fetches the team roster and inserts a mapping row for each member not
// already present, unpaused. Existing rows are never modified and rows for
// departed members are never removed: the row carries the user's pause
// preference, which must survive leaving and rejoining the team.
// Any roster or storage failure aborts the stage for this group.
func (s *MemberSync) Run(ctx context.Context, group *domain.ResourceGroup) (int, error) {
	members, err := s.directory.TeamMembers(ctx, group.TeamID)
	if err != nil {
		s.log.WithError(err).Errorf("failed to fetch roster for team %s", group.TeamID)
		return 0, fmt.Errorf("failed to fetch roster for team %s: %w", group.TeamID, err)
	}

	inserted := 0
	for _, member := range members {
		if member.UserObjectID == "" {
			continue
		}
		exists, err := s.mappings.Exists(member.UserObjectID, group.TeamID)
		if err != nil {
			s.log.WithError(err).Errorf("failed to check mapping for member %s in team %s", member.UserObjectID, group.TeamID)
			return inserted, fmt.Errorf("failed to check mapping in team %s: %w", group.TeamID, err)
		}
		if exists {
			continue
		}
		if err := s.mappings.InsertIfMissing(member.UserObjectID, group.TeamID); err != nil {
			s.log.WithError(err).Errorf("failed to sync member %s into team %s", member.UserObjectID, group.TeamID)
			return inserted, fmt.Errorf("failed to sync member into team %s: %w", group.TeamID, err)
		}
		inserted++
	}

	return inserted, nil
}
