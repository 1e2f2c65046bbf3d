package controller

import (
	"errors"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/pkg/serverutils"
	"ai-topiclist-be/internal/service"
	"ai-topiclist-be/pkg/topicdoc"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/chat")
	h.Post("/session", requireAuth, c.CreateSession)
	h.Get("/session", requireAuth, c.ListSessions)
	h.Get("/session/:id", requireAuth, c.GetSession)
	h.Post("/", c.PostMessage)
}

func chatError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return serverutils.NotFound("Chat session not found")
	case errors.Is(err, service.ErrAIUnavailable):
		return serverutils.Internal("Failed to generate AI response", err)
	case errors.Is(err, topicdoc.ErrMalformed):
		return serverutils.MalformedAIResponse(err)
	}
	return err
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.CreateSession(ctx.UserContext(), userId)
	if err != nil {
		return chatError(err)
	}
	return ctx.JSON(res)
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.ListSessions(ctx.UserContext(), userId)
	if err != nil {
		return chatError(err)
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.GetSession(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		return chatError(err)
	}
	return ctx.JSON(res)
}

func (c *chatController) PostMessage(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Session ID and message are required")
	}
	if err := serverutils.ValidateRequest(&req, "Session ID and message are required"); err != nil {
		return err
	}

	res, err := c.service.PostMessage(ctx.UserContext(), &req)
	if err != nil {
		return chatError(err)
	}
	return ctx.JSON(res)
}
