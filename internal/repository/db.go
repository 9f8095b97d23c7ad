package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kavia-common/notes-backend/internal/database"
	"github.com/kavia-common/notes-backend/internal/domain"
)

// acquire returns the lazily-initialized connection pool. Initialization
// failures are surfaced as ErrDatabaseUnavailable so handlers can map them
// to a service-unavailable response instead of an opaque internal error.
func acquire(ctx context.Context, db *database.DB) (*pgxpool.Pool, error) {
	pool, err := db.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseUnavailable, err)
	}
	return pool, nil
}
