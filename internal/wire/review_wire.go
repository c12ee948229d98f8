package wire

import (
	"runup-api/internal/adaptor"
	"runup-api/pkg/middleware"
	"runup-api/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{itemId} - comments plus guest/user summaries
	r.Get("/api/reviews/{itemId}", reviewHandler.ListReviews)

	// POST /api/reviews - guests and authenticated users share this
	// endpoint, so auth is optional here.
	r.With(middleware.Authenticate(tokens, log)).Post("/api/reviews", reviewHandler.SubmitReview)
}
