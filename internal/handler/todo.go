package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/game"
)

// HandleGetTodos returns the user's daily todo list. Completed state resets
// each calendar day.
// @Summary Get todos
// @Tags todos
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {array} domain.TodoItem
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/todos [get]
func HandleGetTodos(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		items, err := svc.GetTodos(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTodosFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// AddTodoRequest represents the request to plan an action as a daily todo
type AddTodoRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	SkillID  string `json:"skill_id" validate:"required,skillid"`
	ActionID string `json:"action_id" validate:"required,max=120"`
}

// HandleAddTodo plans an action for today; logging the matching action
// completes it automatically
// @Summary Add todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body AddTodoRequest true "Todo to add"
// @Success 201 {object} domain.TodoItem
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/todos [post]
func HandleAddTodo(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddTodoRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add todo"); err != nil {
			return
		}

		item, err := svc.AddTodo(r.Context(), req.UserID, domain.SkillID(req.SkillID), req.ActionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddTodoFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, item)
	}
}

// RemoveTodoRequest represents the request to delete a todo
type RemoveTodoRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	TodoID string `json:"todo_id" validate:"required,max=100"`
}

// HandleRemoveTodo deletes a todo from the user's list
// @Summary Remove todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body RemoveTodoRequest true "Todo to remove"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/todos/remove [post]
func HandleRemoveTodo(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveTodoRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove todo"); err != nil {
			return
		}

		if err := svc.RemoveTodo(r.Context(), req.UserID, req.TodoID); err != nil {
			respondServiceError(w, r, ErrMsgRemoveTodoFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTodoRemovedSuccess})
	}
}
