package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"socialapp/dto"
	"socialapp/internal/services"
)

type PostHandler struct {
	svc *services.FeedService
	log *slog.Logger
}

func NewPostHandler(svc *services.FeedService, log *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

// GET /posts
func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.svc.ListPosts(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(posts)
}

// POST /posts
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	post, err := h.svc.CreatePost(c.Context(), body)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GET /posts/:postId
func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	post, err := h.svc.GetPost(c.Context(), postID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(post)
}

// PATCH /posts/:postId
func (h *PostHandler) Update(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var body dto.UpdatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	post, err := h.svc.UpdatePost(c.Context(), postID, body)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(post)
}

// DELETE /posts/:postId
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.svc.DeletePost(c.Context(), postID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
