package wire

import (
	"runup-api/internal/adaptor"
	"runup-api/pkg/middleware"
	"runup-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.Key, log))

		r.Get("/", adminHandler.ListReviews)
		r.Delete("/{id}", adminHandler.DeleteReview)
		r.Post("/bulk-delete", adminHandler.BulkDeleteReviews)
	})
}
