package usecase

import (
	"context"
	"fmt"

	"runup-api/internal/data/repository"
	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListAllReviews(ctx context.Context) (*response.AdminReviewsResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error
	BulkDeleteReviews(ctx context.Context, req *request.BulkDeleteRequest) (int64, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListAllReviews(ctx context.Context) (*response.AdminReviewsResponse, error) {
	rows, err := s.repo.Comment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all reviews", zap.Error(err))
		return nil, fmt.Errorf("list all reviews: %w", err)
	}

	comments := make([]response.CommentResponse, len(rows))
	for i, row := range rows {
		comments[i] = response.CommentToResponse(row)
	}

	return &response.AdminReviewsResponse{Comments: comments}, nil
}

func (s *adminService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s", reviewID)
	}

	deleted, err := s.repo.Comment.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("review %s not found", reviewID)
	}

	s.log.Info("Review deleted by admin", zap.String("review_id", reviewID))
	return nil
}

func (s *adminService) BulkDeleteReviews(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk delete validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var deleted int64
	var err error

	switch req.DeleteType {
	case "author":
		deleted, err = s.repo.Comment.DeleteByAuthor(ctx, req.Value)
	case "media":
		deleted, err = s.repo.Comment.DeleteByMediaID(ctx, req.Value)
	case "user":
		userID, parseErr := uuid.Parse(req.Value)
		if parseErr != nil {
			return 0, fmt.Errorf("invalid user ID format %s", req.Value)
		}
		deleted, err = s.repo.Comment.DeleteByUserID(ctx, userID)
	default:
		return 0, fmt.Errorf("unsupported delete criteria: %s", req.DeleteType)
	}

	if err != nil {
		s.log.Error("Failed to bulk delete reviews",
			zap.Error(err),
			zap.String("delete_type", req.DeleteType),
		)
		return 0, fmt.Errorf("bulk delete reviews: %w", err)
	}

	s.log.Info("Reviews bulk deleted",
		zap.String("delete_type", req.DeleteType),
		zap.String("value", req.Value),
		zap.Int64("deleted_count", deleted),
	)

	return deleted, nil
}
