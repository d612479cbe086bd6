package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diconnect/diconnect/internal/domain"
)

// GroupRepository handles resource group database operations.
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new resource group repository.
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a new resource group.
func (r *GroupRepository) Create(group *domain.ResourceGroup) error {
	query := `
		INSERT INTO resource_groups
			(group_id, name, description, group_type, team_id, matching_frequency, profile_matching_enabled, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(query,
		group.GroupID,
		group.Name,
		group.Description,
		group.GroupType,
		group.TeamID,
		group.MatchingFrequency,
		group.ProfileMatchingEnabled,
		group.ApprovalStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to create resource group: %w", err)
	}
	return nil
}

// Get retrieves a resource group by ID.
func (r *GroupRepository) Get(groupID string) (*domain.ResourceGroup, error) {
	query := `
		SELECT group_id, name, description, group_type, team_id, matching_frequency,
		       profile_matching_enabled, approval_status, created_at, updated_at
		FROM resource_groups
		WHERE group_id = $1
	`
	var group domain.ResourceGroup
	err := r.db.QueryRow(query, groupID).Scan(
		&group.GroupID,
		&group.Name,
		&group.Description,
		&group.GroupType,
		&group.TeamID,
		&group.MatchingFrequency,
		&group.ProfileMatchingEnabled,
		&group.ApprovalStatus,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get resource group: %w", err)
	}
	return &group, nil
}

// List retrieves all resource groups.
func (r *GroupRepository) List() ([]domain.ResourceGroup, error) {
	query := `
		SELECT group_id, name, description, group_type, team_id, matching_frequency,
		       profile_matching_enabled, approval_status, created_at, updated_at
		FROM resource_groups
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// Update updates the mutable attributes of a resource group.
func (r *GroupRepository) Update(group *domain.ResourceGroup) error {
	query := `
		UPDATE resource_groups
		SET name = $1, description = $2, team_id = $3, matching_frequency = $4,
		    profile_matching_enabled = $5, approval_status = $6, updated_at = $7
		WHERE group_id = $8
	`
	result, err := r.db.Exec(query,
		group.Name,
		group.Description,
		group.TeamID,
		group.MatchingFrequency,
		group.ProfileMatchingEnabled,
		group.ApprovalStatus,
		time.Now(),
		group.GroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resource group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListOptedInForMatching returns approved Teams-type groups with profile
// matching enabled for the given frequency. Only these groups participate
// in a pair-up matching cycle.
func (r *GroupRepository) ListOptedInForMatching(frequency domain.MatchingFrequency) ([]domain.ResourceGroup, error) {
	query := `
		SELECT group_id, name, description, group_type, team_id, matching_frequency,
		       profile_matching_enabled, approval_status, created_at, updated_at
		FROM resource_groups
		WHERE group_type = 'Teams'
		  AND approval_status = 'Approved'
		  AND profile_matching_enabled = true
		  AND matching_frequency = $1
	`
	rows, err := r.db.Query(query, frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups opted in for matching: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

func scanGroups(rows *sql.Rows) ([]domain.ResourceGroup, error) {
	groups := make([]domain.ResourceGroup, 0)
	for rows.Next() {
		var group domain.ResourceGroup
		if err := rows.Scan(
			&group.GroupID,
			&group.Name,
			&group.Description,
			&group.GroupType,
			&group.TeamID,
			&group.MatchingFrequency,
			&group.ProfileMatchingEnabled,
			&group.ApprovalStatus,
			&group.CreatedAt,
			&group.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return groups, nil
}
