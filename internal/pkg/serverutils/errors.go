package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the only error shape handlers hand back to Fiber. The ErrorHandler
// turns it into {"message": Message} with status Code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

// Internal keeps the cause for the log only; clients see message.
func Internal(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}

// MalformedAIResponse is raised when the model reply is not a usable topic list document.
func MalformedAIResponse(err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: "Failed to parse AI response", Err: err}
}
