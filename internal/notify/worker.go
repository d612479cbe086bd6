// Package notify consumes pair-up notifications and delivers cards to both recipients.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/domain"
	"github.com/diconnect/diconnect/internal/messenger"
)

// ConversationStore resolves a user's messenger conversation record.
type ConversationStore interface {
	Get(userObjectID string) (*domain.UserConversation, error)
}

// CardRenderer renders the notification card for one recipient.
type CardRenderer interface {
	RenderPairUp(teamName, matchedName, matchedUPN string) ([]byte, error)
}

// Worker handles pair-up notification messages from the queue.
type Worker struct {
	conversations ConversationStore
	cards         CardRenderer
	messenger     messenger.Messenger
	log           logrus.FieldLogger
}

// NewWorker creates a new notification worker.
func NewWorker(conversations ConversationStore, cards CardRenderer, m messenger.Messenger, log logrus.FieldLogger) *Worker {
	return &Worker{conversations: conversations, cards: cards, messenger: m, log: log}
}

// Handle processes one queue message. It never returns an error: there is no
// redelivery at this layer, so every failure path logs and drops the message.
func (w *Worker) Handle(ctx context.Context, payload []byte) error {
	var notification domain.PairUpNotification
	if err := json.Unmarshal(payload, &notification); err != nil {
		w.log.WithError(err).Error("dropping unparseable pair-up notification")
		return nil
	}

	log := w.log.WithField("notification_id", notification.PairUpNotificationID)

	first, second := notification.PairUpUserData.Recipient1, notification.PairUpUserData.Recipient2
	firstConv, err := w.resolve(first)
	if err != nil {
		log.WithError(err).Warnf("dropping notification for team %s: recipient %s unreachable", notification.TeamID, first.UserObjectID)
		return nil
	}
	secondConv, err := w.resolve(second)
	if err != nil {
		log.WithError(err).Warnf("dropping notification for team %s: recipient %s unreachable", notification.TeamID, second.UserObjectID)
		return nil
	}

	// Each side gets a card showing the other person as the match.
	if err := w.deliver(ctx, notification.TeamName, firstConv, second); err != nil {
		log.WithError(err).Errorf("failed to notify %s", first.UserObjectID)
	}
	if err := w.deliver(ctx, notification.TeamName, secondConv, first); err != nil {
		log.WithError(err).Errorf("failed to notify %s", second.UserObjectID)
	}

	return nil
}

// resolve loads a recipient's conversation record. A missing record or an
// empty conversation ID means the user has not installed the bot.
func (w *Worker) resolve(recipient domain.PairUpRecipient) (*domain.UserConversation, error) {
	conv, err := w.conversations.Get(recipient.UserObjectID)
	if err != nil {
		return nil, fmt.Errorf("no conversation record: %w", err)
	}
	if conv.ConversationID == "" {
		return nil, fmt.Errorf("conversation record has no conversation id")
	}
	return conv, nil
}

func (w *Worker) deliver(ctx context.Context, teamName string, conv *domain.UserConversation, matched domain.PairUpRecipient) error {
	card, err := w.cards.RenderPairUp(teamName, matched.UserGivenName, matched.UserPrincipalName)
	if err != nil {
		return fmt.Errorf("failed to render card: %w", err)
	}
	if err := w.messenger.SendCard(ctx, conv.ServiceURL, conv.ConversationID, card); err != nil {
		return fmt.Errorf("failed to send card: %w", err)
	}
	return nil
}
