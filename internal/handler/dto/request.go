package dto

// CreateNoteRequest represents the request body for POST /notes.
// Content is a pointer so a missing field can be told apart from an
// intentionally empty note body.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// UpdateNoteRequest represents the request body for PUT /notes/{id}.
// Both fields are optional; omitted fields are left unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ListNotesFilters represents query parameters for GET /notes.
type ListNotesFilters struct {
	Limit  int // ?limit=50
	Offset int // ?offset=0
}
