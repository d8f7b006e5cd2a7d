package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"
)

type ILearningController interface {
	RegisterRoutes(r fiber.Router)
	GenerateSolution(ctx *fiber.Ctx) error
	ReflectionFeedback(ctx *fiber.Ctx) error
	LearningSummary(ctx *fiber.Ctx) error
	ChallengeFeedback(ctx *fiber.Ctx) error
	RetrieveContext(ctx *fiber.Ctx) error
	ListProblems(ctx *fiber.Ctx) error
	ListReflections(ctx *fiber.Ctx) error
	LearningHistory(ctx *fiber.Ctx) error
}

type learningController struct {
	solutionService  service.ISolutionService
	retrievalService service.IRetrievalService
}

func NewLearningController(
	solutionService service.ISolutionService,
	retrievalService service.IRetrievalService,
) ILearningController {
	return &learningController{
		solutionService:  solutionService,
		retrievalService: retrievalService,
	}
}

func (c *learningController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/learning/v1")
	h.Post("solution", c.GenerateSolution)
	h.Post("reflection", c.ReflectionFeedback)
	h.Post("summary", c.LearningSummary)
	h.Post("challenge", c.ChallengeFeedback)
	h.Post("retrieve-context", c.RetrieveContext)
	h.Get("problems", c.ListProblems)
	h.Get("problems/:id/history", c.LearningHistory)
	h.Get("solutions/:id/reflections", c.ListReflections)
}

func (c *learningController) GenerateSolution(ctx *fiber.Ctx) error {
	var req dto.GenerateSolutionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.solutionService.GenerateSolution(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate solution", res))
}

func (c *learningController) ReflectionFeedback(ctx *fiber.Ctx) error {
	var req dto.ReflectionFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.solutionService.ReflectionFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate reflection feedback", res))
}

func (c *learningController) LearningSummary(ctx *fiber.Ctx) error {
	var req dto.LearningSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.solutionService.LearningSummary(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate learning summary", res))
}

func (c *learningController) ChallengeFeedback(ctx *fiber.Ctx) error {
	var req dto.ChallengeFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.solutionService.ChallengeFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate challenge feedback", res))
}

func (c *learningController) RetrieveContext(ctx *fiber.Ctx) error {
	var req dto.RetrieveContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.retrievalService.RetrieveContext(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retrieve context", res))
}

func (c *learningController) ListProblems(ctx *fiber.Ctx) error {
	res, err := c.solutionService.ListProblems(ctx.Context(), ctx.Query("domain"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list problems", res))
}

func (c *learningController) ListReflections(ctx *fiber.Ctx) error {
	solutionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ValidationInput("invalid solution id")
	}

	res, err := c.solutionService.ListReflections(ctx.Context(), solutionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reflections", res))
}

func (c *learningController) LearningHistory(ctx *fiber.Ctx) error {
	problemId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.ValidationInput("invalid problem id")
	}

	res, err := c.solutionService.LearningHistoryForProblem(ctx.Context(), problemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list learning history", res))
}
