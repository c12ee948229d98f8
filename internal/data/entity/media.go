package entity

import (
	"time"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	MediaTypeGame  MediaType = "game"
)

// MediaItem is keyed by (id, type). Rows are written by the import
// tool; the API only reads them.
type MediaItem struct {
	ID                 string     `db:"id"`
	Type               MediaType  `db:"type"`
	Title              string     `db:"title"`
	ReleaseDate        *time.Time `db:"release_date"`
	PosterImage        *string    `db:"poster_image"`
	Overview           *string    `db:"overview"`
	Genres             []string   `db:"genres"`
	Score              *float64   `db:"score"`
	Backdrops          []string   `db:"backdrops"`
	Screenshots        []string   `db:"screenshots"`
	SystemRequirements *string    `db:"system_requirements"`
}
