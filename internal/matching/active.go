package matching

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
)

// ActiveFetcher loads the active participants of a team for one matching run.
type ActiveFetcher struct {
	mappings  MappingStore
	directory DirectoryClient
	log       logrus.FieldLogger
}

// NewActiveFetcher creates a new active-participant stage.
func NewActiveFetcher(mappings MappingStore, directory DirectoryClient, log logrus.FieldLogger) *ActiveFetcher {
	return &ActiveFetcher{mappings: mappings, directory: directory, log: log}
}

// Run loads the unpaused mapping rows of the group's team and resolves each
// to a directory profile. A resolution failure drops that user from the run
// instead of aborting it; departed members fail resolution here, which is
// what keeps stale mapping rows out of the pairing stage. The dropped count
// is returned for the run report.
func (f *ActiveFetcher) Run(ctx context.Context, group *domain.ResourceGroup) ([]domain.TeamUserMapping, int, error) {
	mappings, err := f.mappings.GetActiveByTeam(group.TeamID)
	if err != nil {
		f.log.WithError(err).Errorf("failed to load active mappings for team %s", group.TeamID)
		return nil, 0, fmt.Errorf("failed to load active mappings for team %s: %w", group.TeamID, err)
	}

	users := make([]domain.TeamUserMapping, 0, len(mappings))
	dropped := 0
	for _, mapping := range mappings {
		member, err := f.directory.GetUser(ctx, mapping.UserObjectID)
		if err != nil {
			f.log.WithError(err).Warnf("dropping user %s from run for team %s: profile resolution failed", mapping.UserObjectID, group.TeamID)
			dropped++
			continue
		}
		users = append(users, domain.TeamUserMapping{
			UserObjectID:      member.UserObjectID,
			UserGivenName:     member.GivenName,
			UserPrincipalName: member.PrincipalName,
			TeamID:            group.TeamID,
			TeamName:          group.Name,
		})
	}

	return users, dropped, nil
}
