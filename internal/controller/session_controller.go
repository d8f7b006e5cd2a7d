package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	BeginSteps(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
	RequestGuide(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("start", c.Start)
	h.Post(":id/steps", c.BeginSteps)
	h.Post(":id/answer", c.SubmitAnswer)
	h.Post(":id/guide", c.RequestGuide)
	h.Post(":id/next", c.Next)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *sessionController) BeginSteps(ctx *fiber.Ctx) error {
	res, err := c.sessionService.BeginSteps(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate session steps", res))
}

func (c *sessionController) SubmitAnswer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.sessionService.SubmitAnswer(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}

func (c *sessionController) RequestGuide(ctx *fiber.Ctx) error {
	res, err := c.sessionService.RequestGuide(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate step guide", res))
}

func (c *sessionController) Next(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Next(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	if err := c.sessionService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}
