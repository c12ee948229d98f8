package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"runup-api/pkg/utils"

	"go.uber.org/zap"
)

// =============================================================================
// AdminKey Tests
// =============================================================================

func TestAdminKey(t *testing.T) {
	const key = "deployment-admin-key"

	tests := []struct {
		name          string
		configuredKey string
		header        string
		wantStatus    int
		wantNext      bool
	}{
		{
			name:          "correct key",
			configuredKey: key,
			header:        "Bearer " + key,
			wantStatus:    http.StatusOK,
			wantNext:      true,
		},
		{
			name:          "wrong key",
			configuredKey: key,
			header:        "Bearer wrong-key",
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "missing header",
			configuredKey: key,
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "wrong scheme",
			configuredKey: key,
			header:        "Basic " + key,
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "no key configured",
			configuredKey: "",
			header:        "Bearer " + key,
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "no key configured and empty bearer",
			configuredKey: "",
			header:        "Bearer ",
			wantStatus:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/reviews", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AdminKey(tt.configuredKey, zap.NewNop())(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if reached != tt.wantNext {
				t.Errorf("reached handler = %v, want %v", reached, tt.wantNext)
			}

			if tt.wantStatus == http.StatusForbidden {
				var body utils.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if body.Error != "Forbidden" {
					t.Errorf("error = %q, want Forbidden", body.Error)
				}
			}
		})
	}
}

// =============================================================================
// CORS Tests
// =============================================================================

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
	rec := httptest.NewRecorder()
	CORS()(next).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Errorf("Allow-Headers = %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/reviews", nil)
	rec := httptest.NewRecorder()
	CORS()(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("Allow-Methods = %q", got)
	}
}
