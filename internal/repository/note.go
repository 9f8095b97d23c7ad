package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kavia-common/notes-backend/internal/database"
	"github.com/kavia-common/notes-backend/internal/domain"
)

// noteColumns is the shared list of columns for note queries.
var noteColumns = []string{"id", "title", "content", "created_at", "updated_at"}

// NoteRepository handles database operations for notes.
type NoteRepository struct {
	db *database.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *database.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// scanNote scans a single row into a Note struct.
func scanNote(row pgx.Row) (*domain.Note, error) {
	var note domain.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &note, nil
}

// scanNotes scans multiple rows into a slice of Note structs.
func scanNotes(rows pgx.Rows) ([]*domain.Note, error) {
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return notes, nil
}

// List retrieves notes ordered by most recently updated first, along with
// the total count ignoring pagination.
func (r *NoteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Note, int, error) {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := psql.
		Select(noteColumns...).
		From("notes").
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query notes: %w", err)
	}

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From("notes").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	return notes, total, nil
}

// GetByID retrieves a note by ID.
func (r *NoteRepository) GetByID(ctx context.Context, noteID int64) (*domain.Note, error) {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for note: %w", err)
	}

	return scanNote(pool.QueryRow(ctx, query, args...))
}

// Create inserts a new note and returns it with ID and timestamps populated.
func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Insert("notes").
		Columns("title", "content").
		Values(note.Title, note.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for note: %w", err)
	}

	err = pool.QueryRow(ctx, query, args...).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

// Update applies a partial update to a note. Nil fields are left unchanged;
// updated_at is always bumped. Returns ErrNoteNotFound for unknown IDs.
func (r *NoteRepository) Update(ctx context.Context, noteID int64, title, content *string) (*domain.Note, error) {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}

	qb := psql.
		Update("notes").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": noteID})

	if title != nil {
		qb = qb.Set("title", *title)
	}
	if content != nil {
		qb = qb.Set("content", *content)
	}

	query, args, err := qb.
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for note %d: %w", noteID, err)
	}

	return scanNote(pool.QueryRow(ctx, query, args...))
}

// Delete removes a note by ID. Returns ErrNoteNotFound for unknown IDs.
func (r *NoteRepository) Delete(ctx context.Context, noteID int64) error {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return err
	}

	query, args, err := psql.
		Delete("notes").
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for note %d: %w", noteID, err)
	}

	tag, err := pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}
