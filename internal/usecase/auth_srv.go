package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"runup-api/internal/data/entity"
	"runup-api/internal/data/repository"
	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/pkg/token"
	"runup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	WhoAmI(ctx context.Context, userID uuid.UUID) (*response.MeResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Service
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 3. Create user; the unique constraint decides duplicates, so a
	// concurrent registration with the same username cannot slip past.
	user := &entity.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			s.log.Warn("Username already taken", zap.String("username", req.Username))
			return nil, repository.ErrDuplicateUsername
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.RegisterResponse{
		Success:  true,
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user. Unknown user and wrong password produce the same
	// error so callers cannot enumerate usernames.
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 4. Issue session token
	signed, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.LoginResponse{
		Success:  true,
		Token:    signed,
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *authService) WhoAmI(ctx context.Context, userID uuid.UUID) (*response.MeResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		// Token is valid but the account is gone.
		return nil, fmt.Errorf("user not found")
	}

	return &response.MeResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}
