package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers already sent, nothing more we can do
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// Profile messages
	ErrMsgUserNotFoundError = "User not found"

	// Progression messages
	ErrMsgSkillNotFoundError        = "Unknown skill"
	ErrMsgActionNotFoundError       = "Unknown action for that skill"
	ErrMsgQuestNotFoundError        = "Quest not found"
	ErrMsgAchievementNotFoundError  = "Achievement not found or not yet unlocked"
	ErrMsgRewardAlreadyClaimedError = "That achievement reward was already claimed"

	// Snapshot messages
	ErrMsgInvalidSnapshotError = "Snapshot is malformed or missing required fields"

	// Hardcore messages
	ErrMsgHardcoreDisabledError = "Hardcore mode is not enabled"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusBadRequest, ErrMsgSkillNotFoundError
	case errors.Is(err, domain.ErrActionNotFound):
		return http.StatusBadRequest, ErrMsgActionNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusBadRequest, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusBadRequest, ErrMsgAchievementNotFoundError
	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		return http.StatusConflict, ErrMsgRewardAlreadyClaimedError
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, ErrMsgInvalidSnapshotError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrHardcoreDisabled):
		return http.StatusBadRequest, ErrMsgHardcoreDisabledError
	}

	// Wrapped errors with a domain base: try unwrapping
	if unwrapped := errors.Unwrap(err); unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (tests, mocks) pass through; anything else is
	// hidden behind a generic message
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return http.StatusInternalServerError, msg
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
