package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// Mock ReviewService
// =============================================================================

type mockReviewService struct {
	submitFunc func(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error
	listFunc   func(ctx context.Context, itemID string) (*response.ReviewListResponse, error)
}

func (m *mockReviewService) SubmitReview(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, req)
	}
	return errors.New("not implemented")
}

func (m *mockReviewService) ListReviews(ctx context.Context, itemID string) (*response.ReviewListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, itemID)
	}
	return nil, errors.New("not implemented")
}

func newReviewRouter(svc *mockReviewService) *chi.Mux {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/reviews/{itemId}", h.ListReviews)
	r.Post("/api/reviews", h.SubmitReview)
	return r
}

// =============================================================================
// ListReviews Tests
// =============================================================================

func TestListReviewsHandler(t *testing.T) {
	svc := &mockReviewService{
		listFunc: func(ctx context.Context, itemID string) (*response.ReviewListResponse, error) {
			if itemID != "movie-42" {
				t.Errorf("ListReviews(%q), want movie-42", itemID)
			}
			return &response.ReviewListResponse{
				Comments: []response.CommentResponse{},
				Summary: response.ReviewSummary{
					Guest: response.SummarizeRatings(nil),
					User:  response.SummarizeRatings(nil),
				},
			}, nil
		},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/movie-42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body response.ReviewListResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Summary.Guest.AverageRating != "0.0" || body.Summary.User.AverageRating != "0.0" {
		t.Errorf("summary = %+v", body.Summary)
	}
}

// =============================================================================
// SubmitReview Tests
// =============================================================================

func TestSubmitReviewHandler_Guest(t *testing.T) {
	var gotUserID *uuid.UUID
	var gotReq *request.CreateReviewRequest
	svc := &mockReviewService{
		submitFunc: func(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error {
			gotUserID = userID
			gotReq = req
			return nil
		},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"itemId":"movie-42","rating":4,"author":"anon","comment":"good"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotUserID != nil {
		t.Errorf("userID = %v, want nil for unauthenticated caller", gotUserID)
	}
	if gotReq.ItemID != "movie-42" || gotReq.Rating != 4 || gotReq.Author != "anon" {
		t.Errorf("req = %+v", gotReq)
	}

	var body response.SubmitReviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("Success = false, want true")
	}
}

func TestSubmitReviewHandler_Authenticated(t *testing.T) {
	userID := uuid.New()
	var gotUserID *uuid.UUID
	svc := &mockReviewService{
		submitFunc: func(ctx context.Context, id *uuid.UUID, req *request.CreateReviewRequest) error {
			gotUserID = id
			return nil
		},
	}
	h := NewReviewHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"itemId":"movie-42","rating":5}`))
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "bob"))
	rec := httptest.NewRecorder()
	h.SubmitReview(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotUserID == nil || *gotUserID != userID {
		t.Errorf("userID = %v, want %v", gotUserID, userID)
	}
}

func TestSubmitReviewHandler_MissingFields(t *testing.T) {
	router := newReviewRouter(&mockReviewService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"itemId"`},
		{name: "no itemId", body: `{"rating":4,"author":"anon"}`},
		{name: "no rating", body: `{"itemId":"movie-42","author":"anon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := decodeError(t, rec); got != "Missing required fields: itemId and rating are required." {
				t.Errorf("error = %q", got)
			}
		})
	}
}

func TestSubmitReviewHandler_GuestWithoutAuthor(t *testing.T) {
	svc := &mockReviewService{
		submitFunc: func(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error {
			return errors.New("author name is required for guest reviews")
		},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"itemId":"movie-42","rating":4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeError(t, rec); got != "Author name is required for guest reviews" {
		t.Errorf("error = %q", got)
	}
}

func TestSubmitReviewHandler_ServiceFailure(t *testing.T) {
	svc := &mockReviewService{
		submitFunc: func(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error {
			return errors.New("create review: connection refused")
		},
	}
	router := newReviewRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"itemId":"movie-42","rating":4,"author":"anon"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// Internal detail never leaks into the response body.
	if got := decodeError(t, rec); got != "Internal Server Error" {
		t.Errorf("error = %q", got)
	}
}
