package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ascend-app/ascend/internal/database/postgres"
	"github.com/ascend-app/ascend/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	GameState repository.GameState
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		GameState: postgres.NewGameStateRepository(dbPool),
	}
}
