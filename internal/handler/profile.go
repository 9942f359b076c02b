package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// DefaultLeaderboardLimit caps the leaderboard size when no limit is given
const DefaultLeaderboardLimit = 10

// HandleGetProfile returns the aggregate progression profile for a user
// @Summary Get profile
// @Description Returns skills, levels, streaks, penalty state and counters for a user
// @Tags profile
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} game.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile [get]
func HandleGetProfile(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProfileFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// ResetProfileRequest represents the request to wipe a user's progress
type ResetProfileRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// HandleResetProfile wipes a user's progress back to a fresh state
// @Summary Reset profile
// @Description Replaces the user's entire progression state with a fresh one
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ResetProfileRequest true "Reset request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profile/reset [post]
func HandleResetProfile(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reset profile"); err != nil {
			return
		}

		if err := svc.ResetState(r.Context(), req.UserID); err != nil {
			respondServiceError(w, r, ErrMsgResetFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile reset", "user_id", req.UserID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileResetSuccess})
	}
}

// HandleGetLeaderboard ranks users by total level
// @Summary Get leaderboard
// @Description Returns the top users ordered by total level, ties broken by action count
// @Tags profile
// @Produce json
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {array} game.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
