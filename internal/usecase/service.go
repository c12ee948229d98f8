package usecase

import (
	"runup-api/internal/data/repository"
	"runup-api/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Media  MediaService
	Review ReviewService
	Admin  AdminService
}

func NewService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		Media:  NewMediaService(repo, log),
		Review: NewReviewService(repo, log),
		Admin:  NewAdminService(repo, log),
	}
}
