package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// Mock AdminService
// =============================================================================

type mockAdminService struct {
	listAllFunc    func(ctx context.Context) (*response.AdminReviewsResponse, error)
	deleteFunc     func(ctx context.Context, reviewID string) error
	bulkDeleteFunc func(ctx context.Context, req *request.BulkDeleteRequest) (int64, error)
}

func (m *mockAdminService) ListAllReviews(ctx context.Context) (*response.AdminReviewsResponse, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAdminService) DeleteReview(ctx context.Context, reviewID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, reviewID)
	}
	return errors.New("not implemented")
}

func (m *mockAdminService) BulkDeleteReviews(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
	if m.bulkDeleteFunc != nil {
		return m.bulkDeleteFunc(ctx, req)
	}
	return 0, errors.New("not implemented")
}

func newAdminRouter(svc *mockAdminService) *chi.Mux {
	h := NewAdminHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/admin/reviews", h.ListReviews)
	r.Delete("/api/admin/reviews/{id}", h.DeleteReview)
	r.Post("/api/admin/reviews/bulk-delete", h.BulkDeleteReviews)
	return r
}

func TestAdminListReviewsHandler(t *testing.T) {
	svc := &mockAdminService{
		listAllFunc: func(ctx context.Context) (*response.AdminReviewsResponse, error) {
			return &response.AdminReviewsResponse{
				Comments: []response.CommentResponse{{ID: uuid.New().String(), Author: "a", Rating: 5}},
			}, nil
		},
	}
	router := newAdminRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body response.AdminReviewsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Comments) != 1 {
		t.Errorf("len(Comments) = %d, want 1", len(body.Comments))
	}
}

func TestAdminDeleteReviewHandler(t *testing.T) {
	target := uuid.New()
	svc := &mockAdminService{
		deleteFunc: func(ctx context.Context, reviewID string) error {
			if reviewID != target.String() {
				t.Errorf("DeleteReview(%q), want %v", reviewID, target)
			}
			return nil
		},
	}
	router := newAdminRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/reviews/"+target.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body response.DeleteReviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("Success = false, want true")
	}
}

func TestAdminDeleteReviewHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "not found",
			serviceErr: fmt.Errorf("review %s not found", uuid.New()),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			serviceErr: errors.New("invalid review ID format abc"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			serviceErr: errors.New("delete review: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAdminService{
				deleteFunc: func(ctx context.Context, reviewID string) error {
					return tt.serviceErr
				},
			}
			router := newAdminRouter(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/reviews/"+uuid.New().String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAdminBulkDeleteHandler(t *testing.T) {
	svc := &mockAdminService{
		bulkDeleteFunc: func(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
			if req.DeleteType != "author" || req.Value != "spammer" {
				t.Errorf("req = %+v", req)
			}
			return 4, nil
		},
	}
	router := newAdminRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reviews/bulk-delete",
		strings.NewReader(`{"deleteType":"author","value":"spammer"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body response.BulkDeleteResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.DeletedCount != 4 {
		t.Errorf("body = %+v", body)
	}
}

func TestAdminBulkDeleteHandler_UnsupportedCriteria(t *testing.T) {
	svc := &mockAdminService{
		bulkDeleteFunc: func(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
			return 0, fmt.Errorf("unsupported delete criteria: %s", req.DeleteType)
		},
	}
	router := newAdminRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reviews/bulk-delete",
		strings.NewReader(`{"deleteType":"rating","value":"5"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if got := decodeError(t, rec); !strings.Contains(got, "unsupported delete criteria") {
		t.Errorf("error = %q", got)
	}
}
