package response

import (
	"runup-api/internal/data/entity"
)

// MediaSummary is the listing shape: the subset of columns the card
// grid renders. Dates travel as YYYY-MM-DD strings or null.
type MediaSummary struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	ReleaseDate *string  `json:"releaseDate"`
	PosterImage *string  `json:"posterImage"`
	Overview    *string  `json:"overview"`
	Genres      []string `json:"genres"`
}

type MediaDetail struct {
	MediaSummary
	Score              *float64 `json:"score"`
	Backdrops          []string `json:"backdrops"`
	Screenshots        []string `json:"screenshots"`
	SystemRequirements *string  `json:"systemRequirements"`
}

type MediaListResponse struct {
	Items      []MediaSummary `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// Helper converters

func formatReleaseDate(item *entity.MediaItem) *string {
	if item.ReleaseDate == nil {
		return nil
	}
	s := item.ReleaseDate.Format("2006-01-02")
	return &s
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func MediaToSummary(item *entity.MediaItem) MediaSummary {
	return MediaSummary{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		ReleaseDate: formatReleaseDate(item),
		PosterImage: item.PosterImage,
		Overview:    item.Overview,
		Genres:      emptyIfNil(item.Genres),
	}
}

func MediaToDetail(item *entity.MediaItem) MediaDetail {
	return MediaDetail{
		MediaSummary:       MediaToSummary(item),
		Score:              item.Score,
		Backdrops:          emptyIfNil(item.Backdrops),
		Screenshots:        emptyIfNil(item.Screenshots),
		SystemRequirements: item.SystemRequirements,
	}
}
