package adaptor

import (
	"net/http"
	"strings"

	"runup-api/internal/dto/request"
	"runup-api/internal/usecase"
	"runup-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MediaHandler struct {
	service usecase.MediaService
	log     *zap.Logger
}

func NewMediaHandler(service usecase.MediaService, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		log:     log.With(zap.String("handler", "media")),
	}
}

// ListMedia handles GET /api/media (public)
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.MediaListRequest{
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Genre:    query.Get("genre"),
		Page:     utils.ParseInt(query.Get("page"), 1),
		Limit:    utils.ParseInt(query.Get("limit"), 100),
	}

	resp, err := h.service.ListMedia(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list media")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// GetMediaDetails handles GET /api/media/details/{itemId} (public)
func (h *MediaHandler) GetMediaDetails(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Missing item ID in URL")
		return
	}

	resp, err := h.service.GetMediaDetails(r.Context(), itemID)
	if err != nil {
		h.handleServiceError(w, err, "get media details")
		return
	}

	utils.ResponseSuccess(w, resp)
}

func (h *MediaHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Item not found")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
