package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapp/database"
	"socialapp/dto"
	"socialapp/internal/handlers"
	"socialapp/internal/routes"
	"socialapp/internal/services"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewFeedService(db, log)

	app := fiber.New()
	routes.RegisterRoutes(app,
		handlers.NewPostHandler(svc, log),
		handlers.NewCommentHandler(svc, log),
		handlers.NewLikeHandler(svc, log),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPostEndpoints(t *testing.T) {
	app := setupApp(t)

	t.Run("empty list", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		list := decode[[]dto.PostResponse](t, resp)
		assert.Empty(t, list)
	})

	t.Run("create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "john_doe", Content: "hello"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		post := decode[dto.PostResponse](t, resp)
		assert.Equal(t, "john_doe", post.Username)
		assert.Equal(t, 0, post.LikesCount)
		assert.Equal(t, 0, post.CommentsCount)
	})

	t.Run("create blank username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "", Content: "hello"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "Username is required", body.Message)
	})

	t.Run("get missing", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts/9999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "Post not found", body.Message)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("patch then delete", func(t *testing.T) {
		created := decode[dto.PostResponse](t, doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "a", Content: "b"}))

		resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/posts/%d", created.ID), dto.UpdatePostRequest{Username: "a", Content: "edited"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		updated := decode[dto.PostResponse](t, resp)
		assert.Equal(t, "edited", updated.Content)

		resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/posts/%d", created.ID), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCommentEndpoints(t *testing.T) {
	app := setupApp(t)

	post := decode[dto.PostResponse](t, doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "john_doe", Content: "hello"}))
	base := fmt.Sprintf("/posts/%d/comments", post.ID)

	t.Run("missing parent", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts/9999/comments", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, "/posts/9999/comments", dto.CreateCommentRequest{Username: "alice", Content: "hi"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("create and list", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, base, dto.CreateCommentRequest{Username: "alice", Content: "hi"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		comment := decode[dto.CommentResponse](t, resp)
		assert.Equal(t, post.ID, comment.PostID)

		resp = doJSON(t, app, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[[]dto.CommentResponse](t, resp)
		require.Len(t, list, 1)

		parent := decode[dto.PostResponse](t, doJSON(t, app, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), nil))
		assert.Equal(t, 1, parent.CommentsCount)
	})

	t.Run("blank content", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, base, dto.CreateCommentRequest{Username: "alice", Content: ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get update delete", func(t *testing.T) {
		created := decode[dto.CommentResponse](t, doJSON(t, app, http.MethodPost, base, dto.CreateCommentRequest{Username: "bob", Content: "second"}))

		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("%s/%d", base, created.ID), dto.UpdateCommentRequest{Username: "bob", Content: "edited"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		updated := decode[dto.CommentResponse](t, resp)
		assert.Equal(t, "edited", updated.Content)

		resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("comment under wrong parent", func(t *testing.T) {
		other := decode[dto.PostResponse](t, doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "jane", Content: "other"}))
		created := decode[dto.CommentResponse](t, doJSON(t, app, http.MethodPost, fmt.Sprintf("/posts/%d/comments", other.ID), dto.CreateCommentRequest{Username: "bob", Content: "x"}))

		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("%s/%d", base, created.ID), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// Mirrors the like/unlike walkthrough end to end.
func TestLikeEndpoints(t *testing.T) {
	app := setupApp(t)

	post := decode[dto.PostResponse](t, doJSON(t, app, http.MethodPost, "/posts", dto.CreatePostRequest{Username: "john_doe", Content: "hello"}))
	likesPath := fmt.Sprintf("/posts/%d/likes", post.ID)
	postPath := fmt.Sprintf("/posts/%d", post.ID)

	resp := doJSON(t, app, http.MethodPost, likesPath, dto.LikeRequest{Username: "alice"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	like := decode[dto.LikeResponse](t, resp)
	assert.Equal(t, post.ID, like.PostID)
	assert.Equal(t, "alice", like.Username)

	parent := decode[dto.PostResponse](t, doJSON(t, app, http.MethodGet, postPath, nil))
	assert.Equal(t, 1, parent.LikesCount)

	resp = doJSON(t, app, http.MethodPost, likesPath, dto.LikeRequest{Username: "alice"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "User already liked this post", body.Message)

	resp = doJSON(t, app, http.MethodDelete, likesPath, dto.LikeRequest{Username: "alice"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	parent = decode[dto.PostResponse](t, doJSON(t, app, http.MethodGet, postPath, nil))
	assert.Equal(t, 0, parent.LikesCount)

	resp = doJSON(t, app, http.MethodDelete, likesPath, dto.LikeRequest{Username: "alice"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/posts/9999/likes", dto.LikeRequest{Username: "alice"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
