package handler

import (
	"net/http"

	"github.com/kavia-common/notes-backend/internal/handler/dto"
)

// handleGetStats returns aggregate statistics over all notes.
// @Summary Note statistics
// @Description Aggregate counts over the notes table, including activity within the last 24 hours.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.noteService.GetStats(ctx)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.StatsResponse{
		TotalNotes:     stats.TotalNotes,
		CreatedLastDay: stats.CreatedLastDay,
		UpdatedLastDay: stats.UpdatedLastDay,
		LastUpdatedAt:  stats.LastUpdatedAt,
	})
}
