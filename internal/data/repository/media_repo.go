package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"runup-api/internal/data/entity"
	"runup-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MediaQuery carries the listing filters. Zero values mean "no filter";
// Category is "upcoming" or "launched" relative to today.
type MediaQuery struct {
	Type     string
	Category string
	Search   string
	Genre    string
	Limit    int
	Offset   int
}

// buildWhere turns the populated filters into an AND-joined WHERE
// clause with positional args.
func (q MediaQuery) buildWhere() (string, []any) {
	var clauses []string
	var args []any

	if q.Type != "" {
		args = append(args, q.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}

	today := time.Now().Format("2006-01-02")
	switch q.Category {
	case "upcoming":
		args = append(args, today)
		clauses = append(clauses, fmt.Sprintf("release_date > $%d::date", len(args)))
	case "launched":
		args = append(args, today)
		clauses = append(clauses, fmt.Sprintf("release_date <= $%d::date", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	if q.Genre != "" && q.Genre != "all" {
		args = append(args, "%"+q.Genre+"%")
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE $%d)", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

type MediaRepository interface {
	FindFiltered(ctx context.Context, q MediaQuery) ([]*entity.MediaItem, error)
	CountFiltered(ctx context.Context, q MediaQuery) (int64, error)
	FindByID(ctx context.Context, id string) (*entity.MediaItem, error)
	Upsert(ctx context.Context, item *entity.MediaItem) error
}

type mediaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMediaRepository(db database.PgxIface, log *zap.Logger) MediaRepository {
	return &mediaRepository{
		db:  db,
		log: log.With(zap.String("repository", "media")),
	}
}

func (mr *mediaRepository) FindFiltered(ctx context.Context, q MediaQuery) ([]*entity.MediaItem, error) {
	whereSQL, args := q.buildWhere()

	args = append(args, q.Limit)
	limitPos := len(args)
	args = append(args, q.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT id, type, title, release_date, poster_image, overview, genres
		FROM media
		%s
		ORDER BY release_date ASC
		LIMIT $%d OFFSET $%d
	`, whereSQL, limitPos, offsetPos)

	rows, err := mr.db.Query(ctx, query, args...)
	if err != nil {
		mr.log.Error("Failed to list media",
			zap.Error(err),
			zap.Any("query", q),
		)
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []*entity.MediaItem
	for rows.Next() {
		var item entity.MediaItem
		err := rows.Scan(
			&item.ID,
			&item.Type,
			&item.Title,
			&item.ReleaseDate,
			&item.PosterImage,
			&item.Overview,
			&item.Genres,
		)
		if err != nil {
			mr.log.Error("Failed to scan media row", zap.Error(err))
			return nil, fmt.Errorf("scan media row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate media rows: %w", err)
	}

	return items, nil
}

func (mr *mediaRepository) CountFiltered(ctx context.Context, q MediaQuery) (int64, error) {
	whereSQL, args := q.buildWhere()
	query := fmt.Sprintf(`SELECT COUNT(*) FROM media %s`, whereSQL)

	var count int64
	err := mr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		mr.log.Error("Failed to count media",
			zap.Error(err),
			zap.Any("query", q),
		)
		return 0, fmt.Errorf("count media: %w", err)
	}

	return count, nil
}

// FindByID looks an item up by its id alone. Ids carry a type prefix
// upstream, so the first match is the item.
func (mr *mediaRepository) FindByID(ctx context.Context, id string) (*entity.MediaItem, error) {
	query := `
		SELECT id, type, title, release_date, poster_image, overview, genres,
		       score, backdrops, screenshots, system_requirements
		FROM media
		WHERE id = $1
		LIMIT 1
	`

	var item entity.MediaItem
	err := mr.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Type,
		&item.Title,
		&item.ReleaseDate,
		&item.PosterImage,
		&item.Overview,
		&item.Genres,
		&item.Score,
		&item.Backdrops,
		&item.Screenshots,
		&item.SystemRequirements,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find media by ID",
			zap.Error(err),
			zap.String("media_id", id),
		)
		return nil, fmt.Errorf("find media by ID %s: %w", id, err)
	}

	return &item, nil
}

// Upsert is used by the import tool only.
func (mr *mediaRepository) Upsert(ctx context.Context, item *entity.MediaItem) error {
	query := `
		INSERT INTO media (id, type, title, release_date, poster_image, overview,
		                   genres, score, backdrops, screenshots, system_requirements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id, type) DO UPDATE SET
			title = EXCLUDED.title,
			release_date = EXCLUDED.release_date,
			poster_image = EXCLUDED.poster_image,
			overview = EXCLUDED.overview,
			genres = EXCLUDED.genres,
			score = EXCLUDED.score,
			backdrops = EXCLUDED.backdrops,
			screenshots = EXCLUDED.screenshots,
			system_requirements = EXCLUDED.system_requirements
	`

	_, err := mr.db.Exec(ctx, query,
		item.ID,
		item.Type,
		item.Title,
		item.ReleaseDate,
		item.PosterImage,
		item.Overview,
		item.Genres,
		item.Score,
		item.Backdrops,
		item.Screenshots,
		item.SystemRequirements,
	)

	if err != nil {
		mr.log.Error("Failed to upsert media item",
			zap.Error(err),
			zap.String("media_id", item.ID),
			zap.String("type", string(item.Type)),
		)
		return fmt.Errorf("upsert media %s: %w", item.ID, err)
	}

	return nil
}
