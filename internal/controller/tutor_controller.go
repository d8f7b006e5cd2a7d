package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	DetectDomain(ctx *fiber.Ctx) error
	DetectMode(ctx *fiber.Ctx) error
	Overview(ctx *fiber.Ctx) error
	Steps(ctx *fiber.Ctx) error
	ValidateStep(ctx *fiber.Ctx) error
	ConceptualGuide(ctx *fiber.Ctx) error
	SuggestExpansion(ctx *fiber.Ctx) error
}

type tutorController struct {
	detectionService service.IDetectionService
	guideService     service.IGuideService
}

func NewTutorController(
	detectionService service.IDetectionService,
	guideService service.IGuideService,
) ITutorController {
	return &tutorController{
		detectionService: detectionService,
		guideService:     guideService,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutor/v1")
	h.Post("detect-domain", c.DetectDomain)
	h.Post("detect-mode", c.DetectMode)
	h.Post("overview", c.Overview)
	h.Post("steps", c.Steps)
	h.Post("validate-step", c.ValidateStep)
	h.Post("conceptual-guide", c.ConceptualGuide)
	h.Post("suggest-expansion", c.SuggestExpansion)
}

func (c *tutorController) DetectDomain(ctx *fiber.Ctx) error {
	var req dto.DetectDomainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.detectionService.DetectDomain(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success detect domain", res))
}

func (c *tutorController) DetectMode(ctx *fiber.Ctx) error {
	var req dto.DetectModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.detectionService.DetectMode(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success detect mode", res))
}

func (c *tutorController) Overview(ctx *fiber.Ctx) error {
	var req dto.OverviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.Overview(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate overview", res))
}

func (c *tutorController) Steps(ctx *fiber.Ctx) error {
	var req dto.StepsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.Steps(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate steps", res))
}

func (c *tutorController) ValidateStep(ctx *fiber.Ctx) error {
	var req dto.ValidateStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.ValidateStep(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success validate step", res))
}

func (c *tutorController) ConceptualGuide(ctx *fiber.Ctx) error {
	var req dto.ConceptualGuideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.ConceptualGuide(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate conceptual guide", res))
}

func (c *tutorController) SuggestExpansion(ctx *fiber.Ctx) error {
	var req dto.SuggestExpansionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.SuggestExpansion(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest expansion", res))
}
