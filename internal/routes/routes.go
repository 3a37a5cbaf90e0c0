package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialapp/internal/handlers"
)

func RegisterRoutes(app *fiber.App, posts *handlers.PostHandler, comments *handlers.CommentHandler, likes *handlers.LikeHandler) {
	p := app.Group("/posts")
	p.Get("/", posts.List)
	p.Post("/", posts.Create)
	p.Get("/:postId", posts.Get)
	p.Patch("/:postId", posts.Update)
	p.Delete("/:postId", posts.Delete)

	c := p.Group("/:postId/comments")
	c.Get("/", comments.List)
	c.Post("/", comments.Create)
	c.Get("/:commentId", comments.Get)
	c.Patch("/:commentId", comments.Update)
	c.Delete("/:commentId", comments.Delete)

	l := p.Group("/:postId/likes")
	l.Post("/", likes.Like)
	l.Delete("/", likes.Unlike)
}
