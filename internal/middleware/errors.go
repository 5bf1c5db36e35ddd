package middleware

import (
	"errors"
	"net/http"

	"github.com/bilgisen/welcome/internal/logger"
	"github.com/bilgisen/welcome/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler renders errors with the global logger.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return NewErrorHandler(logger.Get())(c, err)
}

// NewErrorHandler renders every error returned by a handler as a JSON body.
// A *fiber.Error keeps its code and message; anything else is an opaque 500.
func NewErrorHandler(l *zerolog.Logger) fiber.ErrorHandler {
	if l == nil {
		l = logger.Get()
	}

	return func(c *fiber.Ctx, err error) error {
		code := statusOf(err)
		message := http.StatusText(code)

		var e *fiber.Error
		if errors.As(err, &e) {
			message = e.Message
		}

		event := l.Warn()
		if code >= fiber.StatusInternalServerError {
			event = l.Error()
		}
		event.
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", code).
			Msg("HTTP error")

		return c.Status(code).JSON(models.ErrorResponse{Error: message})
	}
}

func statusOf(err error) int {
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
