package usecase

import (
	"context"
	"fmt"

	"runup-api/internal/data/repository"
	"runup-api/internal/dto/request"
	"runup-api/internal/dto/response"
	"runup-api/pkg/utils"

	"go.uber.org/zap"
)

type MediaService interface {
	ListMedia(ctx context.Context, req *request.MediaListRequest) (*response.MediaListResponse, error)
	GetMediaDetails(ctx context.Context, itemID string) (*response.MediaDetail, error)
}

type mediaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMediaService(repo *repository.Repository, log *zap.Logger) MediaService {
	return &mediaService{
		repo: repo,
		log:  log.With(zap.String("service", "media")),
	}
}

func (s *mediaService) ListMedia(ctx context.Context, req *request.MediaListRequest) (*response.MediaListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List media validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	query := repository.MediaQuery{
		Type:     req.Type,
		Category: req.Category,
		Search:   req.Search,
		Genre:    req.Genre,
		Limit:    req.Limit,
		Offset:   utils.CalculateOffset(req.Page, req.Limit),
	}

	total, err := s.repo.Media.CountFiltered(ctx, query)
	if err != nil {
		s.log.Error("Failed to count media", zap.Error(err), zap.Any("query", query))
		return nil, fmt.Errorf("count media: %w", err)
	}

	items, err := s.repo.Media.FindFiltered(ctx, query)
	if err != nil {
		s.log.Error("Failed to list media", zap.Error(err), zap.Any("query", query))
		return nil, fmt.Errorf("list media: %w", err)
	}

	summaries := make([]response.MediaSummary, len(items))
	for i, item := range items {
		summaries[i] = response.MediaToSummary(item)
	}

	return &response.MediaListResponse{
		Items:      summaries,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: utils.CalculateTotalPages(total, req.Limit),
	}, nil
}

func (s *mediaService) GetMediaDetails(ctx context.Context, itemID string) (*response.MediaDetail, error) {
	item, err := s.repo.Media.FindByID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to find media item", zap.Error(err), zap.String("media_id", itemID))
		return nil, fmt.Errorf("find media item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %s not found", itemID)
	}

	detail := response.MediaToDetail(item)
	return &detail, nil
}
