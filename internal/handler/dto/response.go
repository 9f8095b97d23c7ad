package dto

import (
	"time"

	"github.com/kavia-common/notes-backend/internal/domain"
)

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// NoteResponse represents a single note in API responses.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotesListResponse represents the response for GET /notes.
type NotesListResponse struct {
	Notes  []NoteResponse `json:"notes"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// StatsResponse represents aggregate note statistics.
type StatsResponse struct {
	TotalNotes     int        `json:"total_notes"`
	CreatedLastDay int        `json:"created_last_day"`
	UpdatedLastDay int        `json:"updated_last_day"`
	LastUpdatedAt  *time.Time `json:"last_updated_at"`
}

// ToNoteResponse converts domain.Note to NoteResponse.
func ToNoteResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ToNotesListResponse converts a page of notes to the list envelope.
func ToNotesListResponse(notes []*domain.Note, total, limit, offset int) NotesListResponse {
	response := NotesListResponse{
		Notes:  make([]NoteResponse, len(notes)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, note := range notes {
		response.Notes[i] = ToNoteResponse(note)
	}
	return response
}
