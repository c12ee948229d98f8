package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a review. Guest comments carry a caller-supplied author
// name and a nil UserID; user comments carry the user reference and an
// author name resolved from the user record at write time. The two are
// kept consistent by the service layer and a table check constraint.
type Comment struct {
	ID        uuid.UUID  `db:"id"`
	MediaID   string     `db:"media_id"`
	UserID    *uuid.UUID `db:"user_id"`
	Author    string     `db:"author"`
	Rating    int        `db:"rating"` // 1-5
	Comment   string     `db:"comment"`
	IsGuest   bool       `db:"is_guest"`
	CreatedAt time.Time  `db:"created_at"`
}
