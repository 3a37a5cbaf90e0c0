package services

import (
	"context"
	"time"

	"socialapp/dto"
	"socialapp/internal/apperr"
	"socialapp/model"
)

// ListPosts returns every post, newest first.
func (s *FeedService) ListPosts(ctx context.Context) (resp []dto.PostResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "listPosts", start, err) }()

	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, *toPostResponse(&posts[i]))
	}
	return resp, nil
}

func (s *FeedService) CreatePost(ctx context.Context, req dto.CreatePostRequest) (resp *dto.PostResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "createPost", start, err) }()

	if err := validateAuthored(req.Username, req.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		Username:  req.Username,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return toPostResponse(post), nil
}

func (s *FeedService) GetPost(ctx context.Context, postID int64) (resp *dto.PostResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "getPost", start, err) }()

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}
	return toPostResponse(post), nil
}

func (s *FeedService) UpdatePost(ctx context.Context, postID int64, req dto.UpdatePostRequest) (resp *dto.PostResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "updatePost", start, err) }()

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

	post.Username = req.Username
	post.Content = req.Content
	post.UpdatedAt = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return toPostResponse(post), nil
}

// DeletePost removes a post; its comments and likes cascade away with it.
func (s *FeedService) DeletePost(ctx context.Context, postID int64) (err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "deletePost", start, err) }()

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("Post not found")
	}
	return s.posts.Delete(ctx, postID)
}
