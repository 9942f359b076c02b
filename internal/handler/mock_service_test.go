package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/game"
)

// MockGameService mocks the game.Service interface
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) GetProfile(ctx context.Context, userID string) (*game.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Profile), args.Error(1)
}

func (m *MockGameService) LogAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (*game.ActionOutcome, error) {
	args := m.Called(ctx, userID, skillID, actionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.ActionOutcome), args.Error(1)
}

func (m *MockGameService) GetActions(ctx context.Context, userID string, skillID domain.SkillID) ([]domain.SkillAction, error) {
	args := m.Called(ctx, userID, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillAction), args.Error(1)
}

func (m *MockGameService) GetLog(ctx context.Context, userID string, limit int) ([]domain.ActionLogEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActionLogEntry), args.Error(1)
}

func (m *MockGameService) GetStreaks(ctx context.Context, userID string) (*game.StreakOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.StreakOverview), args.Error(1)
}

func (m *MockGameService) GetQuestBoard(ctx context.Context, userID string) (*game.QuestBoard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.QuestBoard), args.Error(1)
}

func (m *MockGameService) GetAchievements(ctx context.Context, userID string) ([]game.AchievementView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]game.AchievementView), args.Error(1)
}

func (m *MockGameService) ClaimAchievementReward(ctx context.Context, userID, achievementID string, skillID domain.SkillID) (int, error) {
	args := m.Called(ctx, userID, achievementID, skillID)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) GetBadges(ctx context.Context, userID string) ([]game.BadgeView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]game.BadgeView), args.Error(1)
}

func (m *MockGameService) GetTodos(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TodoItem), args.Error(1)
}

func (m *MockGameService) AddTodo(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (domain.TodoItem, error) {
	args := m.Called(ctx, userID, skillID, actionID)
	return args.Get(0).(domain.TodoItem), args.Error(1)
}

func (m *MockGameService) RemoveTodo(ctx context.Context, userID, todoID string) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}

func (m *MockGameService) AddCustomAction(ctx context.Context, userID string, skillID domain.SkillID, name string, xp int) (domain.SkillAction, error) {
	args := m.Called(ctx, userID, skillID, name, xp)
	return args.Get(0).(domain.SkillAction), args.Error(1)
}

func (m *MockGameService) RemoveCustomAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) error {
	args := m.Called(ctx, userID, skillID, actionID)
	return args.Error(0)
}

func (m *MockGameService) LogNetWorth(ctx context.Context, userID string, netWorth float64, note string) (domain.LogMoneyResult, error) {
	args := m.Called(ctx, userID, netWorth, note)
	return args.Get(0).(domain.LogMoneyResult), args.Error(1)
}

func (m *MockGameService) GetMoneyOverview(ctx context.Context, userID string) (*game.MoneyOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.MoneyOverview), args.Error(1)
}

func (m *MockGameService) SetHardcoreMode(ctx context.Context, userID string, enabled bool) error {
	args := m.Called(ctx, userID, enabled)
	return args.Error(0)
}

func (m *MockGameService) RunDecay(ctx context.Context, userID string) (domain.DecayResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DecayResult), args.Error(1)
}

func (m *MockGameService) RunDecayForAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) ExportSnapshot(ctx context.Context, userID string) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGameService) ImportSnapshot(ctx context.Context, userID string, data []byte) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

func (m *MockGameService) ResetState(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockGameService) GetLeaderboard(ctx context.Context, limit int) ([]game.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]game.LeaderboardEntry), args.Error(1)
}

func (m *MockGameService) GetCacheStats() game.CacheStats {
	args := m.Called()
	return args.Get(0).(game.CacheStats)
}
