package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// MaxSnapshotSize caps an imported snapshot body at 1MB
const MaxSnapshotSize = 1 << 20

// HandleExportSnapshot returns the user's full state as a portable JSON
// document
// @Summary Export snapshot
// @Description Returns the complete progression state for backup or transfer
// @Tags snapshot
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} domain.GameState
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/snapshot [get]
func HandleExportSnapshot(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		data, err := svc.ExportSnapshot(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="ascend-snapshot.json"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write snapshot", "error", err)
		}
	}
}

// ImportSnapshotRequest wraps a snapshot document for import. The snapshot
// is kept as raw JSON so validation happens in one place.
type ImportSnapshotRequest struct {
	UserID   string          `json:"user_id" validate:"required,max=100"`
	Snapshot json.RawMessage `json:"snapshot" validate:"required"`
}

// HandleImportSnapshot replaces the user's state with an exported snapshot
// @Summary Import snapshot
// @Description Validates and installs a previously exported state document
// @Tags snapshot
// @Accept json
// @Produce json
// @Param request body ImportSnapshotRequest true "Snapshot to import"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/snapshot [post]
func HandleImportSnapshot(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxSnapshotSize)

		var req ImportSnapshotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import snapshot"); err != nil {
			return
		}

		if err := svc.ImportSnapshot(r.Context(), req.UserID, req.Snapshot); err != nil {
			respondServiceError(w, r, ErrMsgImportFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSnapshotImportSuccess})
	}
}
