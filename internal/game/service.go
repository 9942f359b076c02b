package game

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ascend-app/ascend/internal/achievement"
	"github.com/ascend-app/ascend/internal/badge"
	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/concurrency"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/hardcore"
	"github.com/ascend-app/ascend/internal/level"
	"github.com/ascend-app/ascend/internal/logger"
	"github.com/ascend-app/ascend/internal/metrics"
	"github.com/ascend-app/ascend/internal/money"
	"github.com/ascend-app/ascend/internal/quest"
	"github.com/ascend-app/ascend/internal/repository"
	"github.com/ascend-app/ascend/internal/skill"
	"github.com/ascend-app/ascend/internal/streak"
)

// Cache defaults for loaded game states
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Service defines the interface for progression operations
type Service interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	LogAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (*ActionOutcome, error)
	GetActions(ctx context.Context, userID string, skillID domain.SkillID) ([]domain.SkillAction, error)
	GetLog(ctx context.Context, userID string, limit int) ([]domain.ActionLogEntry, error)

	GetStreaks(ctx context.Context, userID string) (*StreakOverview, error)
	GetQuestBoard(ctx context.Context, userID string) (*QuestBoard, error)
	GetAchievements(ctx context.Context, userID string) ([]AchievementView, error)
	ClaimAchievementReward(ctx context.Context, userID, achievementID string, skillID domain.SkillID) (int, error)
	GetBadges(ctx context.Context, userID string) ([]BadgeView, error)

	GetTodos(ctx context.Context, userID string) ([]domain.TodoItem, error)
	AddTodo(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (domain.TodoItem, error)
	RemoveTodo(ctx context.Context, userID, todoID string) error

	AddCustomAction(ctx context.Context, userID string, skillID domain.SkillID, name string, xp int) (domain.SkillAction, error)
	RemoveCustomAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) error

	LogNetWorth(ctx context.Context, userID string, netWorth float64, note string) (domain.LogMoneyResult, error)
	GetMoneyOverview(ctx context.Context, userID string) (*MoneyOverview, error)

	SetHardcoreMode(ctx context.Context, userID string, enabled bool) error
	RunDecay(ctx context.Context, userID string) (domain.DecayResult, error)
	RunDecayForAll(ctx context.Context) (int, error)

	ExportSnapshot(ctx context.Context, userID string) ([]byte, error)
	ImportSnapshot(ctx context.Context, userID string, data []byte) error
	ResetState(ctx context.Context, userID string) error

	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetCacheStats() CacheStats
}

type service struct {
	repo  repository.GameState
	locks *concurrency.LockManager
	cache *stateCache
	clk   clock.Clock
}

// NewService creates the progression service. The clock is injectable so
// date-keyed behavior (streaks, quests, decay) is testable.
func NewService(repo repository.GameState, clk clock.Clock) Service {
	return &service{
		repo:  repo,
		locks: concurrency.NewLockManager(),
		cache: newStateCache(DefaultCacheSize, DefaultCacheTTL),
		clk:   clk,
	}
}

// withState runs fn under the user's lock against the loaded (or freshly
// created) state, then persists it. A failed fn leaves the store untouched.
func (s *service) withState(ctx context.Context, userID string, fn func(state *domain.GameState) error) error {
	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	if err := fn(state); err != nil {
		// the in-memory copy may be half-mutated; drop it
		s.cache.Invalidate(userID)
		return err
	}

	if err := s.repo.SaveState(ctx, userID, state); err != nil {
		s.cache.Invalidate(userID)
		return fmt.Errorf("failed to persist state for %s: %w", userID, err)
	}
	s.cache.Set(userID, state)
	return nil
}

// withStateRead runs fn under the user's lock without persisting afterwards
func (s *service) withStateRead(ctx context.Context, userID string, fn func(state *domain.GameState) error) error {
	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return fn(state)
}

func (s *service) loadOrCreate(ctx context.Context, userID string) (*domain.GameState, error) {
	if state, ok := s.cache.Get(userID); ok {
		return state, nil
	}

	state, err := s.repo.GetState(ctx, userID)
	if err == nil {
		s.cache.Set(userID, state)
		return state, nil
	}
	if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("failed to load state for %s: %w", userID, err)
	}

	// first contact: initialize a fresh profile
	state = NewState(s.clk.Now())
	if err := s.repo.SaveState(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("failed to initialize state for %s: %w", userID, err)
	}
	logger.FromContext(ctx).Info("Initialized new profile", "user_id", userID)
	s.cache.Set(userID, state)
	return state, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var profile *Profile
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		profile = buildProfile(userID, state)
		return nil
	})
	return profile, err
}

func (s *service) GetStreaks(ctx context.Context, userID string) (*StreakOverview, error) {
	var overview *StreakOverview
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		perSkill := make(map[domain.SkillID]domain.StreakData, len(state.Streaks.PerSkill))
		for id, data := range state.Streaks.PerSkill {
			perSkill[id] = data
		}
		overview = &StreakOverview{
			Global:     state.Streaks.Global,
			Multiplier: streak.Multiplier(state.Streaks.Global.Current),
			PerSkill:   perSkill,
		}
		return nil
	})
	return overview, err
}

func (s *service) LogAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (*ActionOutcome, error) {
	var outcome ActionOutcome
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		action := skill.FindAction(skillID, actionID, state.CustomActions)
		if action == nil {
			return domain.ErrActionNotFound
		}

		now := s.clk.Now()
		ResetTodosIfStale(state, now)
		outcome.LogActionResult = LogAction(state, skillID, actionID, action.Name, action.XP, now)

		if escape := hardcore.CheckEscape(state, now); escape.Escaped {
			outcome.Escape = &escape
			if escape.Achievement != "" {
				outcome.NewAchievements = append(outcome.NewAchievements, escape.Achievement)
			}
			metrics.PenaltyEscapes.WithLabelValues(string(escape.FromTier)).Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ActionsLogged.WithLabelValues(string(skillID)).Inc()
	metrics.XPAwarded.WithLabelValues(string(skillID)).Add(float64(outcome.XPEarned))
	if outcome.LeveledUp {
		metrics.LevelUps.Inc()
	}
	metrics.AchievementsUnlocked.Add(float64(len(outcome.NewAchievements)))
	metrics.BadgesUnlocked.Add(float64(len(outcome.NewBadges)))
	metrics.QuestsCompleted.WithLabelValues(metrics.WindowDaily).Add(float64(len(outcome.QuestsCompleted)))

	log := logger.FromContext(ctx)
	log.Info("Action logged",
		"user_id", userID,
		"skill", skillID,
		"action", actionID,
		"xp_earned", outcome.XPEarned,
		"leveled_up", outcome.LeveledUp)
	return &outcome, nil
}

func (s *service) GetActions(ctx context.Context, userID string, skillID domain.SkillID) ([]domain.SkillAction, error) {
	if skill.Def(skillID) == nil {
		return nil, domain.ErrSkillNotFound
	}
	var actions []domain.SkillAction
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		actions = skill.Actions(skillID, state.CustomActions)
		return nil
	})
	return actions, err
}

func (s *service) GetLog(ctx context.Context, userID string, limit int) ([]domain.ActionLogEntry, error) {
	if limit <= 0 || limit > domain.MaxLogEntries {
		limit = domain.MaxLogEntries
	}
	var entries []domain.ActionLogEntry
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		n := limit
		if n > len(state.Log) {
			n = len(state.Log)
		}
		entries = append([]domain.ActionLogEntry{}, state.Log[:n]...)
		return nil
	})
	return entries, err
}

func (s *service) GetQuestBoard(ctx context.Context, userID string) (*QuestBoard, error) {
	var board *QuestBoard
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		now := s.clk.Now()
		today := clock.DateKey(now)
		weekKey := clock.WeekKey(now)

		todayLog := logSince(state.Log, today, now.Location())
		weekLog := logSince(state.Log, weekKey, now.Location())

		board = &QuestBoard{DailyDate: today, WeekKey: weekKey}
		for _, q := range quest.DailyQuests(today) {
			board.Daily = append(board.Daily, questView(q, todayLog, state.CompletedQuests.DailyDate == today && state.CompletedQuests.Daily[q.ID]))
		}
		for _, q := range quest.WeeklyQuests(weekKey) {
			board.Weekly = append(board.Weekly, questView(q, weekLog, state.CompletedQuests.WeeklyDate == weekKey && state.CompletedQuests.Weekly[q.ID]))
		}
		return nil
	})
	return board, err
}

func questView(q domain.Quest, entries []domain.ActionLogEntry, completed bool) QuestView {
	progress := quest.Progress(q, entries)
	if progress > q.Target {
		progress = q.Target
	}
	return QuestView{Quest: q, Progress: progress, Completed: completed}
}

func (s *service) GetAchievements(ctx context.Context, userID string) ([]AchievementView, error) {
	var views []AchievementView
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		claimed := make(map[string]bool, len(state.CompletedAchievementRewards))
		for _, id := range state.CompletedAchievementRewards {
			claimed[id] = true
		}
		for _, a := range achievement.Pool {
			views = append(views, AchievementView{
				Achievement:   a,
				Unlocked:      state.HasAchievement(a.ID),
				RewardClaimed: claimed[a.ID],
			})
		}
		return nil
	})
	return views, err
}

func (s *service) ClaimAchievementReward(ctx context.Context, userID, achievementID string, skillID domain.SkillID) (int, error) {
	var reward int
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		var err error
		reward, err = ClaimAchievementReward(state, achievementID, skillID)
		return err
	})
	return reward, err
}

func (s *service) GetBadges(ctx context.Context, userID string) ([]BadgeView, error) {
	var views []BadgeView
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		for _, b := range badge.Pool {
			views = append(views, BadgeView{Badge: b, Unlocked: state.HasBadge(b.ID)})
		}
		return nil
	})
	return views, err
}

func (s *service) GetTodos(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	var items []domain.TodoItem
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		ResetTodosIfStale(state, s.clk.Now())
		items = append([]domain.TodoItem{}, state.Todos.Items...)
		return nil
	})
	return items, err
}

func (s *service) AddTodo(ctx context.Context, userID string, skillID domain.SkillID, actionID string) (domain.TodoItem, error) {
	var item domain.TodoItem
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		var err error
		item, err = AddTodo(state, skillID, actionID, s.clk.Now())
		return err
	})
	return item, err
}

func (s *service) RemoveTodo(ctx context.Context, userID, todoID string) error {
	return s.withState(ctx, userID, func(state *domain.GameState) error {
		RemoveTodo(state, todoID)
		return nil
	})
}

func (s *service) AddCustomAction(ctx context.Context, userID string, skillID domain.SkillID, name string, xp int) (domain.SkillAction, error) {
	var action domain.SkillAction
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		var err error
		action, err = AddCustomAction(state, skillID, name, xp)
		return err
	})
	return action, err
}

func (s *service) RemoveCustomAction(ctx context.Context, userID string, skillID domain.SkillID, actionID string) error {
	return s.withState(ctx, userID, func(state *domain.GameState) error {
		RemoveCustomAction(state, skillID, actionID)
		return nil
	})
}

func (s *service) LogNetWorth(ctx context.Context, userID string, netWorth float64, note string) (domain.LogMoneyResult, error) {
	var result domain.LogMoneyResult
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		result = money.LogNetWorth(&state.MoneyLog, netWorth, note, s.clk.Now())
		return nil
	})
	if err == nil {
		metrics.MoneySnapshots.Inc()
	}
	return result, err
}

func (s *service) GetMoneyOverview(ctx context.Context, userID string) (*MoneyOverview, error) {
	var overview *MoneyOverview
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		nw := state.MoneyLog.CurrentNetWorth
		overview = &MoneyOverview{
			CurrentNetWorth: nw,
			Formatted:       level.FormatMoney(nw),
			Level:           level.MoneyLevel(nw),
			Title:           level.MoneyTitle(nw),
			Progress:        level.MoneyProgress(nw),
			Entries:         append([]domain.MoneyEntry{}, state.MoneyLog.Entries...),
		}
		return nil
	})
	return overview, err
}

func (s *service) SetHardcoreMode(ctx context.Context, userID string, enabled bool) error {
	return s.withState(ctx, userID, func(state *domain.GameState) error {
		state.HardcoreMode = enabled
		if !enabled {
			// leaving hardcore clears the penalty machine, not decay history
			state.Penalty.Tier = domain.TierNone
			state.Penalty.ConsecutiveMisses = 0
			state.Penalty.PenaltyQuestActive = false
		}
		return nil
	})
}

func (s *service) RunDecay(ctx context.Context, userID string) (domain.DecayResult, error) {
	var result domain.DecayResult
	err := s.withState(ctx, userID, func(state *domain.GameState) error {
		result = hardcore.RunDecay(state, s.clk.Now())
		return nil
	})
	if err != nil {
		return domain.DecayResult{}, err
	}

	metrics.DecayRuns.Inc()
	if result.Decayed {
		total := 0
		for _, loss := range result.Losses {
			total += loss.Amount
		}
		metrics.DecayXPLost.Add(float64(total))
		logger.FromContext(ctx).Info("Decay applied",
			"user_id", userID,
			"skills_decayed", len(result.Losses),
			"xp_lost", total)
	}
	return result, nil
}

// RunDecayForAll applies the daily decay check to every stored user.
// Per-user failures are logged and skipped so one bad record cannot stall
// the nightly run.
func (s *service) RunDecayForAll(ctx context.Context) (int, error) {
	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users for decay: %w", err)
	}

	log := logger.FromContext(ctx)
	processed := 0
	for _, id := range ids {
		if _, err := s.RunDecay(ctx, id); err != nil {
			log.Error("Decay run failed for user", "user_id", id, "error", err)
			continue
		}
		processed++
	}
	return processed, nil
}

func (s *service) ExportSnapshot(ctx context.Context, userID string) ([]byte, error) {
	var data []byte
	err := s.withStateRead(ctx, userID, func(state *domain.GameState) error {
		var err error
		data, err = ExportSnapshot(state)
		return err
	})
	if err == nil {
		metrics.SnapshotsExported.Inc()
	}
	return data, err
}

func (s *service) ImportSnapshot(ctx context.Context, userID string, data []byte) error {
	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state, err := ImportSnapshot(data)
	if err != nil {
		return err
	}
	if err := s.repo.SaveState(ctx, userID, state); err != nil {
		return fmt.Errorf("failed to persist imported state for %s: %w", userID, err)
	}
	s.cache.Set(userID, state)
	metrics.SnapshotsImported.Inc()
	logger.FromContext(ctx).Info("Snapshot imported", "user_id", userID)
	return nil
}

func (s *service) ResetState(ctx context.Context, userID string) error {
	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := NewState(s.clk.Now())
	if err := s.repo.SaveState(ctx, userID, state); err != nil {
		return fmt.Errorf("failed to reset state for %s: %w", userID, err)
	}
	s.cache.Set(userID, state)
	return nil
}

func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for _, id := range ids {
		state, err := s.repo.GetState(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Error("Skipping user in leaderboard", "user_id", id, "error", err)
			continue
		}
		totalLevel := level.TotalLevel(state.Skills)
		entries = append(entries, LeaderboardEntry{
			UserID:       id,
			TotalLevel:   totalLevel,
			Title:        level.Title(totalLevel, state.HardcoreMode, state.Penalty.Tier),
			TotalActions: len(state.Log),
			Achievements: len(state.UnlockedAchievements),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalLevel != entries[j].TotalLevel {
			return entries[i].TotalLevel > entries[j].TotalLevel
		}
		return entries[i].TotalActions > entries[j].TotalActions
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *service) GetCacheStats() CacheStats {
	return CacheStats{Entries: s.cache.Len(), SchemaVersion: CacheSchemaVersion}
}
