package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
)

// HandleGetQuestBoard returns the user's active daily and weekly quests
// with live progress
// @Summary Get quest board
// @Description Returns the deterministic daily and weekly quest selections for the current windows
// @Tags quests
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} game.QuestBoard
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quests [get]
func HandleGetQuestBoard(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		board, err := svc.GetQuestBoard(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetQuestsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, board)
	}
}
