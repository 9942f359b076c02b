package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ascend-app/ascend/internal/domain"
)

// GameStateRepository implements the game-state repository for PostgreSQL.
// Each user's full progression state is stored as one jsonb document; the
// service layer serializes writers per user, so plain upserts are safe.
type GameStateRepository struct {
	db *pgxpool.Pool
}

// NewGameStateRepository creates a new GameStateRepository
func NewGameStateRepository(db *pgxpool.Pool) *GameStateRepository {
	return &GameStateRepository{db: db}
}

// GetState loads a user's state
func (r *GameStateRepository) GetState(ctx context.Context, userID string) (*domain.GameState, error) {
	query := `
		SELECT state
		FROM game_states
		WHERE user_id = $1
	`
	var data []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode game state: %w", err)
	}
	return &state, nil
}

// SaveState upserts the full state for a user
func (r *GameStateRepository) SaveState(ctx context.Context, userID string, state *domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode game state: %w", err)
	}

	query := `
		INSERT INTO game_states (user_id, state, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, data); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}

// DeleteState removes a user's state
func (r *GameStateRepository) DeleteState(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM game_states WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListUserIDs returns every user id with stored state
func (r *GameStateRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM game_states ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return ids, nil
}
