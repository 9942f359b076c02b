package game

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/level"
)

// mockRepo is an in-memory repository. States are stored as JSON so each
// load returns an independent copy, mirroring a real database round-trip.
type mockRepo struct {
	mu      sync.Mutex
	states  map[string][]byte
	order   []string
	saveErr error
	getErr  error
	listErr error
	saveCnt int
}

func newMockRepo() *mockRepo {
	return &mockRepo{states: map[string][]byte{}}
}

func (m *mockRepo) GetState(_ context.Context, userID string) (*domain.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.states[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *mockRepo) SaveState(_ context.Context, userID string, state *domain.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if _, exists := m.states[userID]; !exists {
		m.order = append(m.order, userID)
	}
	m.states[userID] = data
	m.saveCnt++
	return nil
}

func (m *mockRepo) DeleteState(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.states[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.states, userID)
	return nil
}

func (m *mockRepo) ListUserIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]string{}, m.order...), nil
}

var testDay = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) // a Monday

func newTestService(t *testing.T) (Service, *mockRepo, *clock.SimulatedClock) {
	t.Helper()
	repo := newMockRepo()
	clk := clock.NewSimulatedClock(testDay)
	return NewService(repo, clk), repo, clk
}

func TestServiceGetProfileInitializesNewUser(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", profile.UserID)
	assert.Len(t, profile.Skills, 7)
	assert.Equal(t, 7, profile.TotalLevel)
	assert.Equal(t, 0, profile.TotalActions)

	// first contact persists the fresh state
	_, ok := repo.states["user-1"]
	assert.True(t, ok)
}

func TestServiceLogAction(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	outcome, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)
	assert.Equal(t, 75, outcome.XPEarned)

	profile, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalActions)
	assert.Equal(t, 1, profile.GlobalStreak.Current)
	assert.Equal(t, 75, profile.Skills[0].XP)
}

func TestServiceLogActionUnknownAction(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "no-such-action")
	assert.ErrorIs(t, err, domain.ErrActionNotFound)

	// the failed op must not persist a mutated state beyond initialization
	saves := repo.saveCnt
	_, err = svc.LogAction(ctx, "user-1", domain.SkillStrength, "bogus")
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
	assert.Equal(t, saves, repo.saveCnt)
}

func TestServiceLogActionPersistsAcrossCacheMiss(t *testing.T) {
	repo := newMockRepo()
	clk := clock.NewSimulatedClock(testDay)
	svc := NewService(repo, clk)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillIntellect, "reading_30")
	require.NoError(t, err)

	// a second service instance sees only what the repo holds
	svc2 := NewService(repo, clk)
	profile, err := svc2.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalActions)
}

func TestServiceCustomActionRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	action, err := svc.AddCustomAction(ctx, "user-1", domain.SkillMind, "cold shower", 40)
	require.NoError(t, err)
	assert.True(t, action.Custom)
	assert.Equal(t, 40, action.XP)

	outcome, err := svc.LogAction(ctx, "user-1", domain.SkillMind, action.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, outcome.XPEarned)

	require.NoError(t, svc.RemoveCustomAction(ctx, "user-1", domain.SkillMind, action.ID))
	_, err = svc.LogAction(ctx, "user-1", domain.SkillMind, action.ID)
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestServiceCustomActionXPClamped(t *testing.T) {
	svc, _, _ := newTestService(t)

	action, err := svc.AddCustomAction(context.Background(), "user-1", domain.SkillSocial, "host a dinner", 500)
	require.NoError(t, err)
	assert.Equal(t, 50, action.XP)
}

func TestServiceGetQuestBoard(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	board, err := svc.GetQuestBoard(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", board.DailyDate)
	assert.Equal(t, "2025-03-09", board.WeekKey) // most recent Sunday
	assert.Len(t, board.Daily, 5)
	assert.Len(t, board.Weekly, 3)
	for _, q := range board.Daily {
		assert.Equal(t, 0, q.Progress)
		assert.False(t, q.Completed)
	}
}

func TestServiceQuestBoardIsStableWithinDay(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetQuestBoard(ctx, "user-1")
	require.NoError(t, err)

	clk.Advance(6 * time.Hour) // still the same day
	second, err := svc.GetQuestBoard(ctx, "user-1")
	require.NoError(t, err)

	for i := range first.Daily {
		assert.Equal(t, first.Daily[i].ID, second.Daily[i].ID)
	}
}

func TestServiceClaimAchievementReward(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// first logged action unlocks ach_first_blood
	_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)

	reward, err := svc.ClaimAchievementReward(ctx, "user-1", "ach_first_blood", domain.SkillStrength)
	require.NoError(t, err)
	assert.Greater(t, reward, 0)

	_, err = svc.ClaimAchievementReward(ctx, "user-1", "ach_first_blood", domain.SkillStrength)
	assert.ErrorIs(t, err, domain.ErrRewardAlreadyClaimed)

	_, err = svc.ClaimAchievementReward(ctx, "user-1", "ach_no_such", domain.SkillStrength)
	assert.ErrorIs(t, err, domain.ErrAchievementNotFound)
}

func TestServiceGetAchievementsMarksUnlocked(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)

	views, err := svc.GetAchievements(ctx, "user-1")
	require.NoError(t, err)

	var firstBlood *AchievementView
	for i := range views {
		if views[i].ID == "ach_first_blood" {
			firstBlood = &views[i]
			break
		}
	}
	require.NotNil(t, firstBlood)
	assert.True(t, firstBlood.Unlocked)
	assert.False(t, firstBlood.RewardClaimed)
}

func TestServiceTodos(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddTodo(ctx, "user-1", domain.SkillMind, "meditation")
	require.NoError(t, err)
	assert.False(t, item.Completed)

	_, err = svc.AddTodo(ctx, "user-1", domain.SkillMind, "not-an-action")
	assert.ErrorIs(t, err, domain.ErrActionNotFound)

	// logging the matching action completes the todo
	_, err = svc.LogAction(ctx, "user-1", domain.SkillMind, "meditation")
	require.NoError(t, err)

	items, err := svc.GetTodos(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Completed)

	require.NoError(t, svc.RemoveTodo(ctx, "user-1", item.ID))
	items, err = svc.GetTodos(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestServiceMoneyTrack(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.LogNetWorth(ctx, "user-1", 15000, "after bonus")
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)

	result, err = svc.LogNetWorth(ctx, "user-1", 12000, "market dip")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, result.Entry.NetWorth)

	overview, err := svc.GetMoneyOverview(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, overview.CurrentNetWorth)
	assert.Len(t, overview.Entries, 2)
	assert.Equal(t, level.MoneyLevel(12000), overview.Level)
}

func TestServiceHardcoreToggleClearsPenalty(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetHardcoreMode(ctx, "user-1", true))

	profile, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, profile.HardcoreMode)

	// miss enough days to land in the warning tier
	_, err = svc.RunDecay(ctx, "user-1") // first run stamps only
	require.NoError(t, err)
	clk.Advance(24 * time.Hour)
	_, err = svc.RunDecay(ctx, "user-1")
	require.NoError(t, err)

	profile, err = svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TierWarning, profile.Penalty.Tier)

	require.NoError(t, svc.SetHardcoreMode(ctx, "user-1", false))
	profile, err = svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TierNone, profile.Penalty.Tier)
	assert.Equal(t, 0, profile.Penalty.ConsecutiveMisses)
}

func TestServiceRunDecayForAll(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.LogAction(ctx, id, domain.SkillStrength, "gym")
		require.NoError(t, err)
	}

	// first pass stamps, second pass two days later decays idle skills
	n, err := svc.RunDecayForAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	clk.Advance(48 * time.Hour)
	n, err = svc.RunDecayForAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	profile, err := svc.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Less(t, profile.Skills[0].XP, 75)
}

func TestServiceRunDecayForAllListError(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.listErr = errors.New("connection refused")

	_, err := svc.RunDecayForAll(context.Background())
	assert.Error(t, err)
}

func TestServiceSnapshotRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillEndurance, "run_30")
	require.NoError(t, err)

	data, err := svc.ExportSnapshot(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.ImportSnapshot(ctx, "user-2", data))
	profile, err := svc.GetProfile(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalActions)

	err = svc.ImportSnapshot(ctx, "user-3", []byte(`{"log":[]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}

func TestServiceResetState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)

	require.NoError(t, svc.ResetState(ctx, "user-1"))
	profile, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.TotalActions)
	assert.Equal(t, 0, profile.Skills[0].XP)
}

func TestServiceGetStreaks(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)
	clk.Advance(24 * time.Hour)
	_, err = svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
	require.NoError(t, err)

	overview, err := svc.GetStreaks(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, overview.Global.Current)
	assert.InDelta(t, 1.2, overview.Multiplier, 1e-9)
	assert.Equal(t, 2, overview.PerSkill[domain.SkillStrength].Current)
	assert.Zero(t, overview.PerSkill[domain.SkillIntellect].Current)
}

func TestServiceLeaderboard(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LogAction(ctx, "low", domain.SkillStrength, "give_me_10")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := svc.LogAction(ctx, "high", domain.SkillStrength, "gym")
		require.NoError(t, err)
	}

	entries, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "high", entries[0].UserID)
	assert.GreaterOrEqual(t, entries[0].TotalLevel, entries[1].TotalLevel)

	entries, err = svc.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestServiceGetLog(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
		require.NoError(t, err)
	}

	entries, err := svc.GetLog(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = svc.GetLog(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestServiceGetActions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	actions, err := svc.GetActions(ctx, "user-1", domain.SkillStrength)
	require.NoError(t, err)
	assert.NotEmpty(t, actions)

	_, err = svc.GetActions(ctx, "user-1", domain.SkillID("alchemy"))
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)
}

func TestServiceConcurrentLogActions(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.LogAction(ctx, "user-1", domain.SkillStrength, "gym")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	profile, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, goroutines, profile.TotalActions)
}

func TestServiceCacheStats(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)

	stats := svc.GetCacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, CacheSchemaVersion, stats.SchemaVersion)
}
