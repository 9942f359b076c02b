package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/ascend-app/ascend/internal/clock"
	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/skill"
)

// ResetTodosIfStale clears the todo list when its recorded date is no longer
// today. Safe on any state, including an empty LastResetDate.
func ResetTodosIfStale(state *domain.GameState, now time.Time) {
	today := clock.DateKey(now)
	if state.Todos.LastResetDate == today {
		return
	}
	state.Todos = domain.TodoState{LastResetDate: today, Items: []domain.TodoItem{}}
}

// AddTodo plans an action for today. The action must exist in the catalog or
// in the user's custom actions for the skill.
func AddTodo(state *domain.GameState, skillID domain.SkillID, actionID string, now time.Time) (domain.TodoItem, error) {
	action := skill.FindAction(skillID, actionID, state.CustomActions)
	if action == nil {
		return domain.TodoItem{}, domain.ErrActionNotFound
	}

	ResetTodosIfStale(state, now)
	item := domain.TodoItem{
		ID:         uuid.NewString(),
		SkillID:    skillID,
		ActionID:   actionID,
		ActionName: action.Name,
	}
	state.Todos.Items = append(state.Todos.Items, item)
	return item, nil
}

// RemoveTodo drops a planned item by id; unknown ids are a no-op
func RemoveTodo(state *domain.GameState, todoID string) {
	items := state.Todos.Items[:0]
	for _, item := range state.Todos.Items {
		if item.ID != todoID {
			items = append(items, item)
		}
	}
	state.Todos.Items = items
}
