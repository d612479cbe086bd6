package matching

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
)

// DefaultBatchSize caps how many notifications go into one publish call.
const DefaultBatchSize = 100

// MatchSender turns pairs into queue notifications and publishes them in
// capped batches.
type MatchSender struct {
	publisher Publisher
	batchSize int
	log       logrus.FieldLogger
}

// NewMatchSender creates a new sender stage. batchSize <= 0 falls back to
// DefaultBatchSize.
func NewMatchSender(publisher Publisher, batchSize int, log logrus.FieldLogger) *MatchSender {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &MatchSender{publisher: publisher, batchSize: batchSize, log: log}
}

// Run builds one notification per pair and publishes them sequentially in
// batches of at most batchSize. A pair that cannot produce a valid message
// is logged and dropped without blocking the rest; a publish failure aborts
// the stage. Returns the number of sent and dropped messages.
func (s *MatchSender) Run(ctx context.Context, group *domain.ResourceGroup, pairs []domain.Pair) (int, int, error) {
	payloads := make([][]byte, 0, len(pairs))
	dropped := 0
	for _, pair := range pairs {
		payload, err := buildNotification(group, pair)
		if err != nil {
			s.log.WithError(err).Errorf("dropping pair for team %s: failed to build notification", group.TeamID)
			dropped++
			continue
		}
		payloads = append(payloads, payload)
	}

	for start := 0; start < len(payloads); start += s.batchSize {
		end := start + s.batchSize
		if end > len(payloads) {
			end = len(payloads)
		}
		if err := s.publisher.PublishBatch(ctx, payloads[start:end]); err != nil {
			s.log.WithError(err).Errorf("failed to publish notification batch for team %s", group.TeamID)
			return start, dropped, fmt.Errorf("failed to publish notifications for team %s: %w", group.TeamID, err)
		}
	}

	return len(payloads), dropped, nil
}

// buildNotification creates the wire message for one pair. Both sides must
// carry a user object ID; the notification consumer cannot address a
// recipient without one.
func buildNotification(group *domain.ResourceGroup, pair domain.Pair) ([]byte, error) {
	if pair.First.UserObjectID == "" || pair.Second.UserObjectID == "" {
		return nil, fmt.Errorf("pair has a recipient without a user object id")
	}

	notification := domain.PairUpNotification{
		PairUpNotificationID: uuid.NewString(),
		TeamID:               group.TeamID,
		TeamName:             group.Name,
		PairUpUserData: domain.PairUpUserData{
			Recipient1: domain.PairUpRecipient{
				UserGivenName:     pair.First.UserGivenName,
				UserPrincipalName: pair.First.UserPrincipalName,
				UserObjectID:      pair.First.UserObjectID,
			},
			Recipient2: domain.PairUpRecipient{
				UserGivenName:     pair.Second.UserGivenName,
				UserPrincipalName: pair.Second.UserPrincipalName,
				UserObjectID:      pair.Second.UserObjectID,
			},
		},
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}
	return payload, nil
}
