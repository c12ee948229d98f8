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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/reviews/{itemId} (public)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Missing item ID in URL")
		return
	}

	resp, err := h.service.ListReviews(r.Context(), itemID)
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// SubmitReview handles POST /api/reviews. The endpoint serves both
// guests and logged-in users: an authenticated caller (identity placed
// in context by the authenticate middleware) gets the review attributed
// to their account, anyone else must supply an author name.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Missing required fields: itemId and rating are required.")
		return
	}

	if req.ItemID == "" || req.Rating == 0 {
		utils.ResponseBadRequest(w, "Missing required fields: itemId and rating are required.")
		return
	}

	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	if err := h.service.SubmitReview(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "submit review")
		return
	}

	utils.ResponseCreated(w, response.SubmitReviewResponse{Success: true})
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "author name is required"):
		h.log.Warn(operation+" failed - guest without author", zap.Error(err))
		utils.ResponseBadRequest(w, "Author name is required for guest reviews")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
