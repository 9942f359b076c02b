package repository

import (
	"context"

	"github.com/ascend-app/ascend/internal/domain"
)

// GameState defines the interface for game-state persistence. The state is
// stored and reloaded as one serialization unit per user; callers own
// concurrency control (the service serializes writers per user).
type GameState interface {
	// GetState loads a user's state, or domain.ErrUserNotFound
	GetState(ctx context.Context, userID string) (*domain.GameState, error)
	// SaveState upserts the full state for a user
	SaveState(ctx context.Context, userID string, state *domain.GameState) error
	// DeleteState removes a user's state
	DeleteState(ctx context.Context, userID string) error
	// ListUserIDs returns every user id with stored state, for the decay
	// worker and leaderboards
	ListUserIDs(ctx context.Context) ([]string, error)
}
