package controller

import (
	"errors"

	"ai-topiclist-be/internal/dto"
	"ai-topiclist-be/internal/pkg/serverutils"
	"ai-topiclist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITopicListController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type topicListController struct {
	service service.ITopicListService
}

func NewTopicListController(service service.ITopicListService) ITopicListController {
	return &topicListController{service: service}
}

func (c *topicListController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/topiclist")
	h.Post("/", c.Create)
	h.Get("/", requireAuth, c.List)
	h.Post("/complete/:id", c.Complete)
	h.Get("/:id", c.GetById)
	h.Delete("/:id", requireAuth, c.Delete)
}

// topicListError maps known failures and falls back to fallback for anything else.
func topicListError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		return serverutils.Unauthorized("Invalid token")
	case errors.Is(err, service.ErrInvalidTopicData):
		return serverutils.BadRequest("Invalid topic data")
	case errors.Is(err, service.ErrTopicListNotFound):
		return serverutils.NotFound("Topic list not found")
	case errors.Is(err, service.ErrTopicNotFound):
		return serverutils.NotFound("Topic not found")
	}
	return serverutils.Internal(fallback, err)
}

func (c *topicListController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTopicListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("User Token and topic data are required")
	}
	if req.UserToken == "" || !req.HasTopicData() {
		return serverutils.BadRequest("User Token and topic data are required")
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return topicListError(err, "Failed to create topic list")
	}
	return ctx.JSON(res)
}

func (c *topicListController) List(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.List(ctx.UserContext(), userId)
	if err != nil {
		return topicListError(err, "Failed to fetch topic lists")
	}
	return ctx.JSON(res)
}

func (c *topicListController) GetById(ctx *fiber.Ctx) error {
	res, err := c.service.GetById(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return topicListError(err, "Failed to fetch topic list")
	}
	return ctx.JSON(res)
}

func (c *topicListController) Complete(ctx *fiber.Ctx) error {
	res, err := c.service.Complete(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return topicListError(err, "Failed to complete topic")
	}
	return ctx.JSON(res)
}

func (c *topicListController) Delete(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIdFromCtx(ctx)
	if !ok {
		return serverutils.Unauthorized("Invalid token")
	}

	res, err := c.service.Delete(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		return topicListError(err, "Failed to delete topic list")
	}
	return ctx.JSON(res)
}
