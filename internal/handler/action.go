package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// LogActionRequest represents the request to log a completed action
type LogActionRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	SkillID  string `json:"skill_id" validate:"required,skillid"`
	ActionID string `json:"action_id" validate:"required,max=100"`
}

// LogActionResponse wraps the outcome of a logged action
type LogActionResponse struct {
	Message string              `json:"message"`
	Result  *game.ActionOutcome `json:"result"`
}

// HandleLogAction records a completed real-world action and awards XP
// @Summary Log an action
// @Description Awards XP for an action, updates streaks, quests, achievements and badges
// @Tags actions
// @Accept json
// @Produce json
// @Param request body LogActionRequest true "Action to log"
// @Success 200 {object} LogActionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/actions [post]
func HandleLogAction(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log action"); err != nil {
			return
		}

		outcome, err := svc.LogAction(r.Context(), req.UserID, domain.SkillID(req.SkillID), req.ActionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgLogActionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, LogActionResponse{
			Message: "Action logged",
			Result:  outcome,
		})
	}
}

// HandleGetActions lists the loggable actions for a skill, including the
// user's custom ones
// @Summary List actions for a skill
// @Tags actions
// @Produce json
// @Param user_id query string true "User identifier"
// @Param skill_id query string true "Skill identifier"
// @Success 200 {array} domain.SkillAction
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/actions [get]
func HandleGetActions(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		skillID, ok := GetQueryParam(r, w, "skill_id")
		if !ok {
			return
		}

		actions, err := svc.GetActions(r.Context(), userID, domain.SkillID(skillID))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetActionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, actions)
	}
}

// HandleGetActionLog returns the user's recent action history, newest first
// @Summary Get action log
// @Tags actions
// @Produce json
// @Param user_id query string true "User identifier"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {array} domain.ActionLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/actions/log [get]
func HandleGetActionLog(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w, 50)
		if !ok {
			return
		}

		entries, err := svc.GetLog(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLogFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// AddCustomActionRequest represents the request to create a custom action
type AddCustomActionRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100"`
	SkillID string `json:"skill_id" validate:"required,skillid"`
	Name    string `json:"name" validate:"required,max=100"`
	XP      int    `json:"xp" validate:"gte=1"`
}

// HandleAddCustomAction creates a user-defined action for a skill
// @Summary Add a custom action
// @Description Creates a custom action; XP is clamped to the allowed maximum
// @Tags actions
// @Accept json
// @Produce json
// @Param request body AddCustomActionRequest true "Custom action"
// @Success 201 {object} domain.SkillAction
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/actions/custom [post]
func HandleAddCustomAction(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddCustomActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add custom action"); err != nil {
			return
		}

		action, err := svc.AddCustomAction(r.Context(), req.UserID, domain.SkillID(req.SkillID), req.Name, req.XP)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddCustomFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Custom action added",
			"user_id", req.UserID,
			"skill", req.SkillID,
			"action_id", action.ID)
		respondJSON(w, http.StatusCreated, action)
	}
}

// RemoveCustomActionRequest represents the request to delete a custom action
type RemoveCustomActionRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	SkillID  string `json:"skill_id" validate:"required,skillid"`
	ActionID string `json:"action_id" validate:"required,max=120"`
}

// HandleRemoveCustomAction deletes a user-defined action
// @Summary Remove a custom action
// @Tags actions
// @Accept json
// @Produce json
// @Param request body RemoveCustomActionRequest true "Custom action to remove"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/actions/custom/remove [post]
func HandleRemoveCustomAction(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RemoveCustomActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove custom action"); err != nil {
			return
		}

		if err := svc.RemoveCustomAction(r.Context(), req.UserID, domain.SkillID(req.SkillID), req.ActionID); err != nil {
			respondServiceError(w, r, ErrMsgRemoveCustomFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCustomRemovedSuccess})
	}
}
