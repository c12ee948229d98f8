// Package token issues and verifies the self-contained session tokens
// used by the API: header.payload.signature, each part base64url
// without padding, signed with HMAC-SHA256. Verification is stateless;
// there is no server-side session store and no refresh mechanism.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
)

// Claims is the signed payload. Field names match what the frontend
// stores and the previous deployments issued.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService creates a token service. The secret is a deployment
// secret and must never be empty.
func NewService(secret string, expiry time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}, nil
}

// Expiry reports the configured token lifetime.
func (s *Service) Expiry() time.Duration {
	return s.expiry
}

// Issue signs a new token for the given user.
func (s *Service) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the three-part structure, the HMAC signature and the
// expiry, in that order, and returns the embedded claims. The
// signature comparison inside the JWT library is constant-time.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, fmt.Errorf("verify token: %w", err)
		}
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrMalformed
	}

	return claims, nil
}
