package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"socialapp/dto"
	"socialapp/internal/services"
)

type LikeHandler struct {
	svc *services.FeedService
	log *slog.Logger
}

func NewLikeHandler(svc *services.FeedService, log *slog.Logger) *LikeHandler {
	return &LikeHandler{svc: svc, log: log}
}

// POST /posts/:postId/likes
func (h *LikeHandler) Like(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var body dto.LikeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	like, err := h.svc.LikePost(c.Context(), postID, body)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// DELETE /posts/:postId/likes
func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return respondError(c, h.log, err)
	}

	var body dto.LikeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	if err := h.svc.UnlikePost(c.Context(), postID, body); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
