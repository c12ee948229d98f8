package middleware

import (
	"net/http"
	"strings"

	"runup-api/pkg/token"
	"runup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate extracts and verifies a bearer token. A missing header,
// a non-Bearer scheme or any verification failure leaves the request
// anonymous; handlers that need an identity must check the context and
// answer 401 themselves. Review submission relies on exactly this:
// the same endpoint serves guests and logged-in users.
func Authenticate(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.Debug("Token rejected, treating caller as anonymous",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
