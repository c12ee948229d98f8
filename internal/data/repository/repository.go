package repository

import (
	"runup-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Media   MediaRepository
	Comment CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Media:   NewMediaRepository(db, log),
		Comment: NewCommentRepository(db, log),
	}
}
