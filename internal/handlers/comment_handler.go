package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"socialapp/dto"
	"socialapp/internal/services"
)

type CommentHandler struct {
	svc *services.FeedService
	log *slog.Logger
}

func NewCommentHandler(svc *services.FeedService, log *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: log}
}

// GET /posts/:postId/comments
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	comments, err := h.svc.ListComments(c.Context(), postID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(comments)
}

// POST /posts/:postId/comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	comment, err := h.svc.CreateComment(c.Context(), postID, body)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GET /posts/:postId/comments/:commentId
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	comment, err := h.svc.GetComment(c.Context(), postID, commentID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(comment)
}

// PATCH /posts/:postId/comments/:commentId
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var body dto.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	comment, err := h.svc.UpdateComment(c.Context(), postID, commentID, body)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(comment)
}

// DELETE /posts/:postId/comments/:commentId
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.svc.DeleteComment(c.Context(), postID, commentID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
