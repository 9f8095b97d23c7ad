package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Note errors
	ErrNoteNotFound = errors.New("note not found")

	// Validation errors
	ErrEmptyTitle   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title exceeds maximum length")
	ErrEmptyContent = errors.New("content is required")
	ErrEmptyUpdate  = errors.New("at least one of title or content is required")

	// Infrastructure errors
	ErrDatabaseUnavailable = errors.New("database unavailable")
)
