// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocalsUserId = "user_id"
	LocalsToken  = "token"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// BearerToken returns the token from "Authorization: Bearer <token>", or "" when absent.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

func NewJwtMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := BearerToken(ctx)
		if tokenStr == "" {
			return Unauthorized("Authorization header is required")
		}

		userId, err := verifier.Verify(ctx.UserContext(), tokenStr)
		if err != nil {
			return Unauthorized("Invalid token")
		}

		ctx.Locals(LocalsUserId, userId)
		ctx.Locals(LocalsToken, tokenStr)
		return ctx.Next()
	}
}

func UserIdFromCtx(ctx *fiber.Ctx) (uuid.UUID, bool) {
	userId, ok := ctx.Locals(LocalsUserId).(uuid.UUID)
	return userId, ok && userId != uuid.Nil
}

func TokenFromCtx(ctx *fiber.Ctx) string {
	token, _ := ctx.Locals(LocalsToken).(string)
	return token
}
