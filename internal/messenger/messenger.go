// Package messenger delivers cards to users through the org messenger bot.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxSendAttempts = 2

// Messenger sends a rendered card into a user conversation.
type Messenger interface {
	SendCard(ctx context.Context, serviceURL, conversationID string, card json.RawMessage) error
}

// BotClient posts activities to the bot connector service.
type BotClient struct {
	baseURL string
	token   string
	client  *http.Client
	log     logrus.FieldLogger
}

// NewBotClient creates a new bot delivery client. baseURL is the fallback
// connector endpoint used when a conversation record carries no service URL.
func NewBotClient(baseURL, token string, log logrus.FieldLogger) *BotClient {
	return &BotClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type activity struct {
	Type        string       `json:"type"`
	Attachments []attachment `json:"attachments"`
}

type attachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
}

// SendCard posts the card into the conversation, retrying once on failure.
// The retry budget is deliberately small: the queue layer does not redeliver,
// so a persistently failing conversation is logged and given up on.
func (c *BotClient) SendCard(ctx context.Context, serviceURL, conversationID string, card json.RawMessage) error {
	payload, err := json.Marshal(activity{
		Type: "message",
		Attachments: []attachment{{
			ContentType: "application/vnd.microsoft.card.adaptive",
			Content:     card,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	base := serviceURL
	if base == "" {
		base = c.baseURL
	}
	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities",
		strings.TrimRight(base, "/"), url.PathEscape(conversationID))

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if lastErr = c.post(ctx, endpoint, payload); lastErr == nil {
			return nil
		}
		c.log.WithError(lastErr).Warnf("card delivery attempt %d/%d failed for conversation %s", attempt, maxSendAttempts, conversationID)
	}
	return fmt.Errorf("failed to deliver card after %d attempts: %w", maxSendAttempts, lastErr)
}

func (c *BotClient) post(ctx context.Context, endpoint string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("connector returned status %d", resp.StatusCode)
	}
	return nil
}
