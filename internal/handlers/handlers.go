package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"socialapp/dto"
	"socialapp/internal/apperr"
)

// parseID reads a numeric path parameter; non-numeric ids are a 400.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}

// respondError maps a service error to its status and {message} body.
// Errors outside the taxonomy come back as a 500 and get logged.
func respondError(c *fiber.Ctx, log *slog.Logger, err error) error {
	status := apperr.StatusCode(err)
	if status == http.StatusInternalServerError {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: err.Error()})
}
