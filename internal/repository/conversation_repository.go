package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diconnect/diconnect/internal/domain"
)

// ConversationRepository handles messenger conversation reference storage.
type ConversationRepository struct {
	db *sql.DB
}

// NewConversationRepository creates a new conversation repository.
func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Get retrieves the conversation record for a user.
func (r *ConversationRepository) Get(userObjectID string) (*domain.UserConversation, error) {
	query := `
		SELECT user_object_id, conversation_id, service_url, given_name, principal_name, updated_at
		FROM user_conversations
		WHERE user_object_id = $1
	`
	var conv domain.UserConversation
	err := r.db.QueryRow(query, userObjectID).Scan(
		&conv.UserObjectID,
		&conv.ConversationID,
		&conv.ServiceURL,
		&conv.GivenName,
		&conv.PrincipalName,
		&conv.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get conversation record: %w", err)
	}
	return &conv, nil
}

// Upsert stores or refreshes the conversation record for a user.
// Written when the bot is installed or a conversation update arrives.
func (r *ConversationRepository) Upsert(conv *domain.UserConversation) error {
	query := `
		INSERT INTO user_conversations (user_object_id, conversation_id, service_url, given_name, principal_name, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_object_id) DO UPDATE
		SET conversation_id = EXCLUDED.conversation_id,
		    service_url = EXCLUDED.service_url,
		    given_name = EXCLUDED.given_name,
		    principal_name = EXCLUDED.principal_name,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(query,
		conv.UserObjectID,
		conv.ConversationID,
		conv.ServiceURL,
		conv.GivenName,
		conv.PrincipalName,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert conversation record: %w", err)
	}
	return nil
}
