package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/internal/usecase"
	"runup-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListReviews handles GET /api/admin/reviews (admin key required)
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAllReviews(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list all reviews")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// DeleteReview handles DELETE /api/admin/reviews/{id}
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Missing review ID in URL")
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, response.DeleteReviewResponse{Success: true})
}

// BulkDeleteReviews handles POST /api/admin/reviews/bulk-delete
func (h *AdminHandler) BulkDeleteReviews(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "deleteType and value are required")
		return
	}

	deleted, err := h.service.BulkDeleteReviews(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "bulk delete reviews")
		return
	}

	utils.ResponseSuccess(w, response.BulkDeleteResponse{
		Success:      true,
		DeletedCount: deleted,
	})
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "unsupported delete criteria"):
		h.log.Warn(operation+" failed - unsupported criteria", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
