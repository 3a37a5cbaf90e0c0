package services

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"socialapp/dto"
	"socialapp/internal/apperr"
	"socialapp/model"
)

func toLikeResponse(l *model.Like) *dto.LikeResponse {
	return &dto.LikeResponse{
		ID:        l.ID,
		PostID:    l.PostID,
		Username:  l.Username,
		CreatedAt: formatTime(l.CreatedAt),
	}
}

// LikePost records a like and recounts the parent's likesCount. A second
// like by the same user on the same post is a conflict, not an upsert.
func (s *FeedService) LikePost(ctx context.Context, postID int64, req dto.LikeRequest) (resp *dto.LikeResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "likePost", start, err) }()

	if strings.TrimSpace(req.Username) == "" {
		return nil, apperr.Validation("Username is required")
	}

	now := time.Now().UTC()
	like := &model.Like{
		PostID:    postID,
		Username:  req.Username,
		CreatedAt: now,
	}

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		post, err := s.posts.WithTx(tx).FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperr.NotFound("Post not found")
		}

		exists, err := s.likes.WithTx(tx).ExistsByPostIDAndUsername(ctx, postID, req.Username)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("User already liked this post")
		}

		if err := s.likes.WithTx(tx).Insert(ctx, like); err != nil {
			return err
		}
		return s.refreshCounts(ctx, tx, postID, now)
	})
	if err != nil {
		return nil, err
	}
	return toLikeResponse(like), nil
}

// UnlikePost removes the user's like and recounts the parent's likesCount.
func (s *FeedService) UnlikePost(ctx context.Context, postID int64, req dto.LikeRequest) (err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "unlikePost", start, err) }()

	if strings.TrimSpace(req.Username) == "" {
		return apperr.Validation("Username is required")
	}

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		post, err := s.posts.WithTx(tx).FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperr.NotFound("Post not found")
		}

		like, err := s.likes.WithTx(tx).FindByPostIDAndUsername(ctx, postID, req.Username)
		if err != nil {
			return err
		}
		if like == nil {
			return apperr.NotFound("Like not found")
		}

		if err := s.likes.WithTx(tx).Delete(ctx, like.ID); err != nil {
			return err
		}
		return s.refreshCounts(ctx, tx, postID, time.Now().UTC())
	})
}
