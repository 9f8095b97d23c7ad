package repository

import (
	"context"
	"fmt"
	"time"
)

// NoteStatsResult holds aggregate statistics over the notes table.
type NoteStatsResult struct {
	TotalNotes     int
	CreatedLastDay int
	UpdatedLastDay int
	LastUpdatedAt  *time.Time
}

// GetNoteStats retrieves aggregate statistics for all notes. The raw query
// is used here because squirrel has no support for FILTER clauses.
func (r *NoteRepository) GetNoteStats(ctx context.Context) (*NoteStatsResult, error) {
	pool, err := acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			COUNT(*) as total_notes,
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '24 hours') as created_last_day,
			COUNT(*) FILTER (WHERE updated_at >= NOW() - INTERVAL '24 hours') as updated_last_day,
			MAX(updated_at) as last_updated_at
		FROM notes
	`

	var result NoteStatsResult
	err = pool.QueryRow(ctx, query).Scan(
		&result.TotalNotes,
		&result.CreatedLastDay,
		&result.UpdatedLastDay,
		&result.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("query note stats: %w", err)
	}

	return &result, nil
}
