package usecase

import (
	"context"
	"fmt"
	"time"

	"runup-api/internal/data/entity"
	"runup-api/internal/data/repository"
	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// SubmitReview stores one review. A non-nil userID attributes the
	// review to that account; nil means guest.
	SubmitReview(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error

	// ListReviews returns every comment for the item, newest first,
	// with independent guest and user summaries.
	ListReviews(ctx context.Context, itemID string) (*response.ReviewListResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	comment := &entity.Comment{
		ID:        uuid.New(),
		MediaID:   req.ItemID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if userID != nil {
		// Authenticated: the display name always comes from the user
		// record, never from the request body.
		user, err := s.repo.User.FindByID(ctx, *userID)
		if err != nil {
			s.log.Error("Failed to resolve review author", zap.Error(err),
				zap.String("user_id", userID.String()))
			return fmt.Errorf("resolve review author: %w", err)
		}

		author := "Unknown User"
		if user != nil {
			author = user.Username
		}

		comment.UserID = userID
		comment.Author = author
		comment.IsGuest = false
	} else {
		if req.Author == "" {
			return fmt.Errorf("author name is required for guest reviews")
		}
		comment.Author = req.Author
		comment.IsGuest = true
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("media_id", req.ItemID),
			zap.Bool("is_guest", comment.IsGuest),
		)
		return fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("media_id", req.ItemID),
		zap.Int("rating", req.Rating),
		zap.Bool("is_guest", comment.IsGuest),
	)

	return nil
}

func (s *reviewService) ListReviews(ctx context.Context, itemID string) (*response.ReviewListResponse, error) {
	rows, err := s.repo.Comment.FindByMediaID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("media_id", itemID))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	comments := make([]response.CommentResponse, len(rows))
	var guest, user []response.CommentResponse
	for i, row := range rows {
		comments[i] = response.CommentToResponse(row)
		if comments[i].IsGuest {
			guest = append(guest, comments[i])
		} else {
			user = append(user, comments[i])
		}
	}

	// Both summaries are recomputed from the full comment set on every
	// read and are present even when a group is empty.
	return &response.ReviewListResponse{
		Comments: comments,
		Summary: response.ReviewSummary{
			Guest: response.SummarizeRatings(guest),
			User:  response.SummarizeRatings(user),
		},
	}, nil
}
