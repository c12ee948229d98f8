package wire

import (
	"runup-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMedia(r chi.Router, mediaHandler *adaptor.MediaHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/media - paginated, filtered listing
	r.Get("/api/media", mediaHandler.ListMedia)

	// GET /api/media/details/{itemId} - single item
	r.Get("/api/media/details/{itemId}", mediaHandler.GetMediaDetails)
}
