// Package services holds the feed domain logic: existence checks,
// denormalized counter maintenance and response shaping. Handlers stay
// thin; everything status-relevant is decided here.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"socialapp/dto"
	"socialapp/internal/apperr"
	"socialapp/internal/observability"
	"socialapp/internal/repository"
	"socialapp/model"
)

type FeedService struct {
	db       *sqlx.DB
	posts    *repository.PostRepository
	comments *repository.CommentRepository
	likes    *repository.LikeRepository
	metrics  *observability.Metrics
	log      *slog.Logger
}

func NewFeedService(db *sqlx.DB, log *slog.Logger) *FeedService {
	return &FeedService{
		db:       db,
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		likes:    repository.NewLikeRepository(db),
		metrics:  observability.NewMetrics(),
		log:      log,
	}
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *FeedService) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		s.log.Error("transaction commit failed", "error", err)
		return err
	}
	return nil
}

// refreshCounts recomputes both counters from the child tables and saves
// them on the parent. Counting from the source of truth instead of
// incrementing keeps concurrent writers from drifting the stored value.
func (s *FeedService) refreshCounts(ctx context.Context, tx *sqlx.Tx, postID int64, now time.Time) error {
	likes, err := s.likes.WithTx(tx).CountByPostID(ctx, postID)
	if err != nil {
		return err
	}
	comments, err := s.comments.WithTx(tx).CountByPostID(ctx, postID)
	if err != nil {
		return err
	}
	return s.posts.WithTx(tx).UpdateCounts(ctx, postID, likes, comments, now)
}

func validateAuthored(username, content string) error {
	if strings.TrimSpace(username) == "" {
		return apperr.Validation("Username is required")
	}
	if strings.TrimSpace(content) == "" {
		return apperr.Validation("Content is required")
	}
	return nil
}

// formatTime renders a stored timestamp as ISO-8601 UTC. Persisted rows
// always carry one; the zero-time fallback matches the original contract.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return t.UTC().Format(time.RFC3339)
}

func toPostResponse(p *model.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:            p.ID,
		Username:      p.Username,
		Content:       p.Content,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
	}
}
