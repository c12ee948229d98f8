package middleware

import (
	"crypto/hmac"
	"net/http"
	"strings"

	"runup-api/pkg/utils"

	"go.uber.org/zap"
)

// AdminKey guards the moderation endpoints with a shared deployment
// key supplied as a bearer credential. The comparison is constant-time.
// An unset key disables the entire admin surface.
func AdminKey(key string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				logger.Warn("Admin endpoint hit but no admin key configured",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			provided := strings.TrimPrefix(authHeader, "Bearer ")
			if !hmac.Equal([]byte(provided), []byte(key)) {
				logger.Warn("Admin key mismatch",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
