package domain

import "time"

// MaxTitleLength is the maximum allowed length of a note title.
const MaxTitleLength = 255

// Note represents a single note stored in the notes table.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
