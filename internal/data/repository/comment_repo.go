package repository

import (
	"context"
	"fmt"

	"runup-api/internal/data/entity"
	"runup-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CommentWithUser is a comment joined with the current username of its
// author, when the author still exists. Username is nil for guest
// comments and for comments whose user row is gone.
type CommentWithUser struct {
	entity.Comment
	Username *string
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByMediaID(ctx context.Context, mediaID string) ([]*CommentWithUser, error)
	FindAll(ctx context.Context) ([]*CommentWithUser, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByAuthor(ctx context.Context, author string) (int64, error)
	DeleteByMediaID(ctx context.Context, mediaID string) (int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (cr *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, media_id, user_id, author, rating, comment, is_guest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := cr.db.Exec(ctx, query,
		comment.ID,
		comment.MediaID,
		comment.UserID,
		comment.Author,
		comment.Rating,
		comment.Comment,
		comment.IsGuest,
		comment.CreatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("media_id", comment.MediaID),
			zap.Bool("is_guest", comment.IsGuest),
		)
		return fmt.Errorf("create comment for media %s: %w", comment.MediaID, err)
	}

	return nil
}

const commentWithUserColumns = `
	c.id, c.media_id, c.user_id, c.author, c.rating, c.comment, c.is_guest, c.created_at,
	u.username
`

func (cr *commentRepository) scanRows(rows pgx.Rows) ([]*CommentWithUser, error) {
	defer rows.Close()

	var comments []*CommentWithUser
	for rows.Next() {
		var c CommentWithUser
		err := rows.Scan(
			&c.ID,
			&c.MediaID,
			&c.UserID,
			&c.Author,
			&c.Rating,
			&c.Comment.Comment,
			&c.IsGuest,
			&c.CreatedAt,
			&c.Username,
		)
		if err != nil {
			cr.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

// FindByMediaID returns every comment for the item, newest first. The
// aggregation layer recomputes its summaries from this full set on
// each read; per-item comment volume is small enough that no
// incremental counters are kept.
func (cr *commentRepository) FindByMediaID(ctx context.Context, mediaID string) ([]*CommentWithUser, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.media_id = $1
		ORDER BY c.created_at DESC
	`, commentWithUserColumns)

	rows, err := cr.db.Query(ctx, query, mediaID)
	if err != nil {
		cr.log.Error("Failed to find comments by media ID",
			zap.Error(err),
			zap.String("media_id", mediaID),
		)
		return nil, fmt.Errorf("find comments by media ID %s: %w", mediaID, err)
	}

	return cr.scanRows(rows)
}

// FindAll returns every comment in the store, newest first. Admin use.
func (cr *commentRepository) FindAll(ctx context.Context) ([]*CommentWithUser, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		ORDER BY c.created_at DESC
	`, commentWithUserColumns)

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to list all comments", zap.Error(err))
		return nil, fmt.Errorf("list all comments: %w", err)
	}

	return cr.scanRows(rows)
}

func (cr *commentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		cr.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return 0, fmt.Errorf("delete comment %s: %w", id.String(), err)
	}
	return result.RowsAffected(), nil
}

func (cr *commentRepository) DeleteByAuthor(ctx context.Context, author string) (int64, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM comments WHERE author = $1`, author)
	if err != nil {
		cr.log.Error("Failed to delete comments by author",
			zap.Error(err),
			zap.String("author", author),
		)
		return 0, fmt.Errorf("delete comments by author %s: %w", author, err)
	}
	return result.RowsAffected(), nil
}

func (cr *commentRepository) DeleteByMediaID(ctx context.Context, mediaID string) (int64, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM comments WHERE media_id = $1`, mediaID)
	if err != nil {
		cr.log.Error("Failed to delete comments by media ID",
			zap.Error(err),
			zap.String("media_id", mediaID),
		)
		return 0, fmt.Errorf("delete comments by media ID %s: %w", mediaID, err)
	}
	return result.RowsAffected(), nil
}

func (cr *commentRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := cr.db.Exec(ctx, `DELETE FROM comments WHERE user_id = $1`, userID)
	if err != nil {
		cr.log.Error("Failed to delete comments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("delete comments by user ID %s: %w", userID.String(), err)
	}
	return result.RowsAffected(), nil
}
