package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// LogNetWorthRequest represents a net-worth snapshot submission.
// NetWorth is the absolute current amount, not a delta.
type LogNetWorthRequest struct {
	UserID   string  `json:"user_id" validate:"required,max=100"`
	NetWorth float64 `json:"net_worth"`
	Note     string  `json:"note" validate:"max=200"`
}

// HandleLogNetWorth records a net-worth snapshot on the money track
// @Summary Log net worth
// @Description Records an absolute net-worth snapshot and reports money level changes
// @Tags money
// @Accept json
// @Produce json
// @Param request body LogNetWorthRequest true "Net worth snapshot"
// @Success 200 {object} domain.LogMoneyResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/money [post]
func HandleLogNetWorth(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogNetWorthRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log net worth"); err != nil {
			return
		}

		result, err := svc.LogNetWorth(r.Context(), req.UserID, req.NetWorth, req.Note)
		if err != nil {
			respondServiceError(w, r, ErrMsgLogMoneyFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Net worth logged",
			"user_id", req.UserID,
			"leveled_up", result.LeveledUp)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetMoneyOverview returns the money track state: current net worth,
// money level and the snapshot history
// @Summary Get money overview
// @Tags money
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} game.MoneyOverview
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/money [get]
func HandleGetMoneyOverview(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		overview, err := svc.GetMoneyOverview(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMoneyFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, overview)
	}
}
