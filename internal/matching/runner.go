package matching

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
)

const (
	stageAttempts = 3
	stageBackoff  = 2 * time.Second
)

// RunReport aggregates the outcome of one matching cycle. Per-item drops
// are counted here rather than silently discarded so a cycle's partial
// failures are visible in one place.
type RunReport struct {
	Frequency      domain.MatchingFrequency
	Groups         int
	FailedGroups   int
	MembersSynced  int
	UsersResolved  int
	UsersDropped   int
	PairsPrepared  int
	MessagesSent   int
	PairsDropped   int
	LeftoverUsers  int
}

// Runner drives the matching pipeline for all opted-in groups of a frequency.
type Runner struct {
	groups GroupStore
	sync   *MemberSync
	active *ActiveFetcher
	sender *MatchSender
	log    logrus.FieldLogger

	// newRand is swapped in tests for a deterministic source.
	newRand func() *rand.Rand
}

// NewRunner creates a new matching cycle runner.
func NewRunner(groups GroupStore, sync *MemberSync, active *ActiveFetcher, sender *MatchSender, log logrus.FieldLogger) *Runner {
	return &Runner{
		groups:  groups,
		sync:    sync,
		active:  active,
		sender:  sender,
		log:     log,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
	}
}

// RunCycle runs sync, active-user fetch, pairing and send for every group
// opted in at the given frequency. Stages run sequentially per group with a
// bounded retry; a group that still fails is skipped so the rest of the
// cycle proceeds. Group discovery failure fails the whole cycle.
func (r *Runner) RunCycle(ctx context.Context, frequency domain.MatchingFrequency) (*RunReport, error) {
	groups, err := r.groups.ListOptedInForMatching(frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for %s matching: %w", frequency, err)
	}

	report := &RunReport{Frequency: frequency, Groups: len(groups)}
	for i := range groups {
		group := &groups[i]
		if err := r.runGroup(ctx, group, report); err != nil {
			r.log.WithError(err).Errorf("matching run failed for group %s (team %s)", group.GroupID, group.TeamID)
			report.FailedGroups++
		}
	}

	r.log.Infof("%s matching cycle: %d groups (%d failed), %d synced, %d resolved (%d dropped), %d pairs, %d sent (%d dropped, %d left over)",
		frequency, report.Groups, report.FailedGroups, report.MembersSynced,
		report.UsersResolved, report.UsersDropped, report.PairsPrepared,
		report.MessagesSent, report.PairsDropped, report.LeftoverUsers)
	return report, nil
}

func (r *Runner) runGroup(ctx context.Context, group *domain.ResourceGroup, report *RunReport) error {
	var synced int
	err := r.withRetry(ctx, "sync", group, func() error {
		var err error
		synced, err = r.sync.Run(ctx, group)
		return err
	})
	if err != nil {
		return err
	}
	report.MembersSynced += synced

	var users []domain.TeamUserMapping
	var dropped int
	err = r.withRetry(ctx, "active", group, func() error {
		var err error
		users, dropped, err = r.active.Run(ctx, group)
		return err
	})
	if err != nil {
		return err
	}
	report.UsersResolved += len(users)
	report.UsersDropped += dropped

	pairs := PrepareMatches(r.newRand(), users)
	report.PairsPrepared += len(pairs)
	if len(users)%2 == 1 {
		report.LeftoverUsers++
	}
	if len(pairs) == 0 {
		return nil
	}

	var sent, pairsDropped int
	err = r.withRetry(ctx, "send", group, func() error {
		var err error
		sent, pairsDropped, err = r.sender.Run(ctx, group, pairs)
		return err
	})
	if err != nil {
		return err
	}
	report.MessagesSent += sent
	report.PairsDropped += pairsDropped

	return nil
}

// withRetry runs a stage up to stageAttempts times with a fixed backoff.
func (r *Runner) withRetry(ctx context.Context, stage string, group *domain.ResourceGroup, fn func() error) error {
	var err error
	for attempt := 1; attempt <= stageAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == stageAttempts {
			break
		}
		r.log.WithError(err).Warnf("stage %s failed for team %s, retrying (%d/%d)", stage, group.TeamID, attempt, stageAttempts)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(stageBackoff):
		}
	}
	return fmt.Errorf("stage %s failed for team %s after %d attempts: %w", stage, group.TeamID, stageAttempts, err)
}
