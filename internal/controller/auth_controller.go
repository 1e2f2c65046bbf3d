package controller

import (
	"errors"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/pkg/serverutils"
	"ai-topiclist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/profile", requireAuth, c.GetProfile)
	h.Put("/profile", requireAuth, c.UpdateProfile)
	h.Post("/logout", requireAuth, c.Logout)
}

func authError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserExists):
		return serverutils.BadRequest("User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return serverutils.Unauthorized("Invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		return serverutils.NotFound("User not found")
	case errors.Is(err, service.ErrEmailInUse):
		return serverutils.BadRequest("Email already in use")
	case errors.Is(err, service.ErrInvalidToken):
		return serverutils.Unauthorized("Invalid token")
	}
	return err
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req, "Email and password are required"); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return authError(err)
	}
	return ctx.JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req, "Email and password are required"); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return authError(err)
	}
	return ctx.JSON(res)
}

func (c *authController) GetProfile(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.GetProfile(ctx.UserContext(), userId)
	if err != nil {
		return authError(err)
	}
	return ctx.JSON(res)
}

func (c *authController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req, "Display name and email are required"); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.UserContext(), userId, &req)
	if err != nil {
		return authError(err)
	}
	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.UserContext(), serverutils.TokenFromCtx(ctx)); err != nil {
		return authError(err)
	}
	return ctx.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
