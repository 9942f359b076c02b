package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// SetHardcoreRequest represents the request to toggle hardcore mode
type SetHardcoreRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

// HandleSetHardcoreMode toggles hardcore mode. Disabling it clears the
// penalty state machine.
// @Summary Set hardcore mode
// @Tags hardcore
// @Accept json
// @Produce json
// @Param request body SetHardcoreRequest true "Hardcore toggle"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/hardcore [post]
func HandleSetHardcoreMode(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetHardcoreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set hardcore mode"); err != nil {
			return
		}

		if err := svc.SetHardcoreMode(r.Context(), req.UserID, *req.Enabled); err != nil {
			respondServiceError(w, r, ErrMsgSetHardcoreFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Hardcore mode set",
			"user_id", req.UserID,
			"enabled", *req.Enabled)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHardcoreUpdatedSuccess})
	}
}

// RunDecayRequest represents the request to run the decay check for one user
type RunDecayRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// HandleRunDecay triggers the daily decay check for a single user. The
// nightly worker normally does this; the endpoint exists for admin use.
// @Summary Run decay check
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RunDecayRequest true "Decay request"
// @Success 200 {object} domain.DecayResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/decay [post]
func HandleRunDecay(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunDecayRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Run decay"); err != nil {
			return
		}

		result, err := svc.RunDecay(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, ErrMsgRunDecayFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// DecayAllResponse reports how many users the decay sweep processed
type DecayAllResponse struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
}

// HandleRunDecayAll triggers the decay sweep over every stored user
// @Summary Run decay for all users
// @Tags admin
// @Produce json
// @Success 200 {object} DecayAllResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/decay-all [post]
func HandleRunDecayAll(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		processed, err := svc.RunDecayForAll(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgRunDecayFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DecayAllResponse{
			Message:   "Decay sweep complete",
			Processed: processed,
		})
	}
}
