package service

import (
	"context"
	"log/slog"

	"github.com/kavia-common/notes-backend/internal/domain"
	"github.com/kavia-common/notes-backend/internal/repository"
)

const (
	// DefaultListLimit is the page size used when the client does not ask for one.
	DefaultListLimit = 50

	// MaxListLimit caps the page size a client may request.
	MaxListLimit = 200
)

// NoteService coordinates note operations. All validation runs before any
// repository call so invalid requests never touch the database.
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// validateTitle checks the title length bounds shared by create and update.
func validateTitle(title string) error {
	if title == "" {
		return domain.ErrEmptyTitle
	}
	if len(title) > domain.MaxTitleLength {
		return domain.ErrTitleTooLong
	}
	return nil
}

// CreateNote validates and persists a new note.
func (s *NoteService) CreateNote(ctx context.Context, title string, content *string) (*domain.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrEmptyContent
	}

	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:   title,
		Content: *content,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("note created", "note_id", note.ID)

	return note, nil
}

// GetNote fetches a single note by ID.
func (s *NoteService) GetNote(ctx context.Context, noteID int64) (*domain.Note, error) {
	return s.noteRepo.GetByID(ctx, noteID)
}

// ListNotes returns a page of notes ordered by most recently updated first,
// along with the total note count. Limit is clamped to the allowed range.
func (s *NoteService) ListNotes(ctx context.Context, limit, offset int) ([]*domain.Note, int, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.noteRepo.List(ctx, limit, offset)
}

// UpdateNote validates and applies a partial update. Nil fields are left
// unchanged; at least one field must be provided.
func (s *NoteService) UpdateNote(ctx context.Context, noteID int64, title, content *string) (*domain.Note, error) {
	if title == nil && content == nil {
		return nil, domain.ErrEmptyUpdate
	}
	if title != nil {
		if err := validateTitle(*title); err != nil {
			return nil, err
		}
	}

	note, err := s.noteRepo.Update(ctx, noteID, title, content)
	if err != nil {
		return nil, err
	}

	slog.Info("note updated", "note_id", note.ID)

	return note, nil
}

// DeleteNote removes a note by ID.
func (s *NoteService) DeleteNote(ctx context.Context, noteID int64) error {
	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		return err
	}

	slog.Info("note deleted", "note_id", noteID)

	return nil
}

// GetStats returns aggregate statistics over all notes.
func (s *NoteService) GetStats(ctx context.Context) (*repository.NoteStatsResult, error) {
	return s.noteRepo.GetNoteStats(ctx)
}
