package services

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"socialapp/dto"
	"socialapp/internal/apperr"
	"socialapp/model"
)

func toCommentResponse(c *model.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// ListComments returns a post's comments, oldest first.
func (s *FeedService) ListComments(ctx context.Context, postID int64) (resp []dto.CommentResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "listComments", start, err) }()

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}

	comments, err := s.comments.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, *toCommentResponse(&comments[i]))
	}
	return resp, nil
}

// CreateComment inserts the comment and recounts the parent's commentsCount
// in the same transaction.
func (s *FeedService) CreateComment(ctx context.Context, postID int64, req dto.CreateCommentRequest) (resp *dto.CommentResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "createComment", start, err) }()

	if err := validateAuthored(req.Username, req.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &model.Comment{
		PostID:    postID,
		Username:  req.Username,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		post, err := s.posts.WithTx(tx).FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperr.NotFound("Post not found")
		}
		if err := s.comments.WithTx(tx).Insert(ctx, comment); err != nil {
			return err
		}
		return s.refreshCounts(ctx, tx, postID, now)
	})
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

func (s *FeedService) GetComment(ctx context.Context, postID, commentID int64) (resp *dto.CommentResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "getComment", start, err) }()

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}

	comment, err := s.comments.FindByIDAndPostID(ctx, commentID, postID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("Comment not found")
	}
	return toCommentResponse(comment), nil
}

func (s *FeedService) UpdateComment(ctx context.Context, postID, commentID int64, req dto.UpdateCommentRequest) (resp *dto.CommentResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "updateComment", start, err) }()

	if err := validateAuthored(req.Username, req.Content); err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}

	comment, err := s.comments.FindByIDAndPostID(ctx, commentID, postID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("Comment not found")
	}

	comment.Username = req.Username
	comment.Content = req.Content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// DeleteComment removes the comment and recounts the parent's commentsCount
// in the same transaction.
func (s *FeedService) DeleteComment(ctx context.Context, postID, commentID int64) (err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "deleteComment", start, err) }()

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		post, err := s.posts.WithTx(tx).FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperr.NotFound("Post not found")
		}

		comment, err := s.comments.WithTx(tx).FindByIDAndPostID(ctx, commentID, postID)
		if err != nil {
			return err
		}
		if comment == nil {
			return apperr.NotFound("Comment not found")
		}

		if err := s.comments.WithTx(tx).Delete(ctx, comment.ID); err != nil {
			return err
		}
		return s.refreshCounts(ctx, tx, postID, time.Now().UTC())
	})
}
