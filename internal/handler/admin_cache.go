package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/game"
)

// HandleGetCacheStats reports the in-memory state cache size and schema
// version, useful when diagnosing stale reads
// @Summary Get cache statistics
// @Tags admin
// @Produce json
// @Success 200 {object} game.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func HandleGetCacheStats(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetCacheStats())
	}
}
