package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kavia-common/notes-backend/internal/handler/dto"
	"github.com/kavia-common/notes-backend/internal/service"
)

// handleListNotes returns a page of notes, most recently updated first.
// @Summary List notes
// @Description Retrieve notes ordered by most recently updated first.
// @Tags notes
// @Produce json
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.NotesListResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /notes [get]
func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters := parseListFilters(r)

	limit := filters.Limit
	if limit <= 0 {
		limit = service.DefaultListLimit
	}
	if limit > service.MaxListLimit {
		limit = service.MaxListLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	notes, total, err := h.noteService.ListNotes(ctx, limit, offset)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToNotesListResponse(notes, total, limit, offset))
}

// handleGetNote retrieves a single note by ID.
// @Summary Get note by ID
// @Description Retrieve a single note by its unique identifier.
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [get]
func (h *Handler) handleGetNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	noteID, ok := extractNoteID(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.GetNote(ctx, noteID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// handleCreateNote creates a new note.
// @Summary Create note
// @Description Create a new note with a title and content.
// @Tags notes
// @Accept json
// @Produce json
// @Param request body dto.CreateNoteRequest true "Note creation request"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /notes [post]
func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	note, err := h.noteService.CreateNote(ctx, req.Title, req.Content)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToNoteResponse(note))
}

// handleUpdateNote applies a partial update to an existing note.
// @Summary Update note
// @Description Update an existing note's title and/or content.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Note update request"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /notes/{id} [put]
func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	noteID, ok := extractNoteID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	note, err := h.noteService.UpdateNote(ctx, noteID, req.Title, req.Content)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// handleDeleteNote deletes a note by ID.
// @Summary Delete note
// @Description Delete a note by its unique identifier.
// @Tags notes
// @Param id path int true "Note ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [delete]
func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	noteID, ok := extractNoteID(w, r)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(ctx, noteID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseListFilters parses pagination query parameters. Unparseable values
// fall back to defaults rather than failing the request.
func parseListFilters(r *http.Request) dto.ListNotesFilters {
	filters := dto.ListNotesFilters{}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filters.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			filters.Offset = offset
		}
	}

	return filters
}
