package entity

import (
	"time"

	"github.com/google/uuid"
)

// User rows are created on registration and never updated or deleted.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
