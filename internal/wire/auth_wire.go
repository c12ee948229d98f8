package wire

import (
	"runup-api/internal/adaptor"
	"runup-api/pkg/middleware"
	"runup-api/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// /api/auth/me resolves the bearer token; the handler answers 401
	// for anonymous callers.
	r.With(middleware.Authenticate(tokens, log)).Get("/api/auth/me", authHandler.Me)
}
