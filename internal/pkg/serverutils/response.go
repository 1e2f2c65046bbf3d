package serverutils

import (
	"errors"

	"ai-topiclist-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const defaultErrorMessage = "Internal server error"

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"message": message}
}

// ErrorHandler is installed as fiber.Config.ErrorHandler and is the single place
// errors become HTTP responses.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := defaultErrorMessage

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			message = appErr.Message
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("http", message, map[string]interface{}{
				"error":  err,
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
