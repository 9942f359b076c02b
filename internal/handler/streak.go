package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
)

// HandleGetStreaks returns the global and per-skill streak counters
// @Summary Get streaks
// @Description Returns the global streak, its XP multiplier and every per-skill streak
// @Tags streaks
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} game.StreakOverview
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/streaks [get]
func HandleGetStreaks(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		overview, err := svc.GetStreaks(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStreaksFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, overview)
	}
}
