package repository

import (
	"database/sql"
	"fmt"

	"github.com/diconnect/diconnect/internal/domain"
)

// PairUpRepository handles pair-up participation mapping database operations.
type PairUpRepository struct {
	db *sql.DB
}

// NewPairUpRepository creates a new pair-up mapping repository.
func NewPairUpRepository(db *sql.DB) *PairUpRepository {
	return &PairUpRepository{db: db}
}

// InsertIfMissing inserts a mapping row for (user, team) as unpaused.
// An existing row is left untouched, including its pause flag, so two
// concurrent sync runs for the same team cannot clobber a user's preference.
func (r *PairUpRepository) InsertIfMissing(userObjectID, teamID string) error {
	query := `
		INSERT INTO pairup_mappings (user_object_id, team_id, is_paused)
		VALUES ($1, $2, false)
		ON CONFLICT (user_object_id, team_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userObjectID, teamID)
	if err != nil {
		return fmt.Errorf("failed to insert pairup mapping: %w", err)
	}
	return nil
}

// Exists checks if a mapping row exists for a user on a team.
func (r *PairUpRepository) Exists(userObjectID, teamID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pairup_mappings WHERE user_object_id = $1 AND team_id = $2)`
	err := r.db.QueryRow(query, userObjectID, teamID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check mapping existence: %w", err)
	}
	return exists, nil
}

// Get retrieves the mapping row for a user on a team.
func (r *PairUpRepository) Get(userObjectID, teamID string) (*domain.PairUpMapping, error) {
	query := `
		SELECT user_object_id, team_id, is_paused, created_at
		FROM pairup_mappings
		WHERE user_object_id = $1 AND team_id = $2
	`
	var mapping domain.PairUpMapping
	err := r.db.QueryRow(query, userObjectID, teamID).Scan(
		&mapping.UserObjectID,
		&mapping.TeamID,
		&mapping.IsPaused,
		&mapping.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get pairup mapping: %w", err)
	}
	return &mapping, nil
}

// GetByUser retrieves all mapping rows for a user across teams.
func (r *PairUpRepository) GetByUser(userObjectID string) ([]domain.PairUpMapping, error) {
	query := `
		SELECT user_object_id, team_id, is_paused, created_at
		FROM pairup_mappings
		WHERE user_object_id = $1
	`
	rows, err := r.db.Query(query, userObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user mappings: %w", err)
	}
	defer rows.Close()

	return scanMappings(rows)
}

// GetActiveByTeam retrieves all unpaused mapping rows for a team.
func (r *PairUpRepository) GetActiveByTeam(teamID string) ([]domain.PairUpMapping, error) {
	query := `
		SELECT user_object_id, team_id, is_paused, created_at
		FROM pairup_mappings
		WHERE team_id = $1 AND is_paused = false
	`
	rows, err := r.db.Query(query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active mappings: %w", err)
	}
	defer rows.Close()

	return scanMappings(rows)
}

// SetPaused updates the pause flag for a user on a team.
// Returns sql.ErrNoRows when no mapping row exists.
func (r *PairUpRepository) SetPaused(userObjectID, teamID string, paused bool) error {
	query := `UPDATE pairup_mappings SET is_paused = $1 WHERE user_object_id = $2 AND team_id = $3`
	result, err := r.db.Exec(query, paused, userObjectID, teamID)
	if err != nil {
		return fmt.Errorf("failed to update pause flag: %w", err)
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

func scanMappings(rows *sql.Rows) ([]domain.PairUpMapping, error) {
	mappings := make([]domain.PairUpMapping, 0)
	for rows.Next() {
		var mapping domain.PairUpMapping
		if err := rows.Scan(
			&mapping.UserObjectID,
			&mapping.TeamID,
			&mapping.IsPaused,
			&mapping.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pairup mapping: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return mappings, nil
}
