package adaptor

import (
	"runup-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Media  *MediaHandler
	Review *ReviewHandler
	Admin  *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Media:  NewMediaHandler(service.Media, log),
		Review: NewReviewHandler(service.Review, log),
		Admin:  NewAdminHandler(service.Admin, log),
	}
}
