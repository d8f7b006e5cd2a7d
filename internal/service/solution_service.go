package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/specification"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/pkg/ai/extract"
	"ai-tutor-be/pkg/ai/prompt"
	"ai-tutor-be/pkg/llm"
)

type ISolutionService interface {
	GenerateSolution(ctx context.Context, req *dto.GenerateSolutionRequest) (*dto.GenerateSolutionResponse, error)
	ReflectionFeedback(ctx context.Context, req *dto.ReflectionFeedbackRequest) (*dto.ReflectionFeedbackResponse, error)
	LearningSummary(ctx context.Context, req *dto.LearningSummaryRequest) (*dto.LearningSummaryResponse, error)
	ChallengeFeedback(ctx context.Context, req *dto.ChallengeFeedbackRequest) (*dto.ChallengeFeedbackResponse, error)
	ListProblems(ctx context.Context, domain string, limit int) (*dto.ListProblemsResponse, error)
	ListReflections(ctx context.Context, solutionId uuid.UUID) (*dto.ListReflectionsResponse, error)
	LearningHistoryForProblem(ctx context.Context, problemId uuid.UUID) (*dto.ListLearningHistoryResponse, error)
}

type solutionService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	retrievalService IRetrievalService
	publisherService IPublisherService
	log              logger.ILogger
}

func NewSolutionService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	retrievalService IRetrievalService,
	publisherService IPublisherService,
	log logger.ILogger,
) ISolutionService {
	return &solutionService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		retrievalService: retrievalService,
		publisherService: publisherService,
		log:              log,
	}
}

// GenerateSolution produces a worked solution for the question and records
// the problem and its solution together. The two inserts share one
// transaction so a failed solution insert never leaves an orphan problem
// row. Retrieval context and the embedding event are both best-effort.
func (s *solutionService) GenerateSolution(ctx context.Context, req *dto.GenerateSolutionRequest) (*dto.GenerateSolutionResponse, error) {
	retrievedContext := ""
	if s.retrievalService != nil {
		res, err := s.retrievalService.RetrieveContext(ctx, &dto.RetrieveContextRequest{
			Description: req.Question,
			Domain:      req.Domain,
		})
		if err != nil {
			s.log.Warn("solution", "context retrieval failed, continuing without it", map[string]interface{}{
				"error": err.Error(),
			})
		} else if res.SimilarCount > 0 {
			retrievedContext = res.Context
		}
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.Solution(req.Question, req.Domain, retrievedContext),
		llm.WithMaxTokens(prompt.BudgetSolution))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate solution", err)
	}

	var payload struct {
		Code              string   `json:"code"`
		Explanation       string   `json:"explanation"`
		Assumptions       string   `json:"assumptions"`
		TradeOffs         string   `json:"tradeOffs"`
		ReflectionPrompts []string `json:"reflectionPrompts"`
	}
	if err := extract.Object(raw, &payload); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate solution", err, raw)
	}

	problem := entity.Problem{
		Id:          uuid.New(),
		Title:       truncateTitle(req.Question),
		Description: req.Question,
		Domain:      req.Domain,
		CreatedAt:   time.Now(),
	}
	solution := entity.Solution{
		Id:          uuid.New(),
		ProblemId:   problem.Id,
		Code:        payload.Code,
		Explanation: payload.Explanation,
		Assumptions: payload.Assumptions,
		TradeOffs:   payload.TradeOffs,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence("failed to begin transaction", err)
	}
	if err := uow.ProblemRepository().Create(ctx, &problem); err != nil {
		_ = uow.Rollback()
		return nil, apperr.Persistence("failed to save problem", err)
	}
	if err := uow.SolutionRepository().Create(ctx, &solution); err != nil {
		_ = uow.Rollback()
		return nil, apperr.Persistence("failed to save solution", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence("failed to commit solution", err)
	}

	s.publishEmbedEvent(ctx, solution.Id)

	return &dto.GenerateSolutionResponse{
		Solution: dto.SolutionDTO{
			Id:                solution.Id,
			ProblemId:         problem.Id,
			Code:              payload.Code,
			Explanation:       payload.Explanation,
			Assumptions:       payload.Assumptions,
			TradeOffs:         payload.TradeOffs,
			ReflectionPrompts: payload.ReflectionPrompts,
		},
	}, nil
}

// publishEmbedEvent queues the solution for embedding indexing. Indexing is
// an optimization, so a publish failure is logged and swallowed.
func (s *solutionService) publishEmbedEvent(ctx context.Context, solutionId uuid.UUID) {
	msgJson, err := json.Marshal(dto.PublishEmbedSolutionMessage{SolutionId: solutionId})
	if err != nil {
		s.log.Error("solution", "failed to marshal embed event", map[string]interface{}{
			"solution_id": solutionId.String(),
			"error":       err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Error("solution", "failed to publish embed event", map[string]interface{}{
			"solution_id": solutionId.String(),
			"error":       err.Error(),
		})
	}
}

// ReflectionFeedback is the one completion returned as free text rather than
// JSON. The exchange is recorded against the solution.
func (s *solutionService) ReflectionFeedback(ctx context.Context, req *dto.ReflectionFeedbackRequest) (*dto.ReflectionFeedbackResponse, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt.ReflectionFeedback(req.Prompt, req.UserAnswer),
		llm.WithMaxTokens(prompt.BudgetReflectionFeedback))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate reflection feedback", err)
	}

	reflection := entity.Reflection{
		Id:         uuid.New(),
		SolutionId: req.SolutionId,
		Prompt:     req.Prompt,
		UserAnswer: req.UserAnswer,
		AiFeedback: raw,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReflectionRepository().Create(ctx, &reflection); err != nil {
		return nil, apperr.Persistence("failed to save reflection", err)
	}

	return &dto.ReflectionFeedbackResponse{
		Feedback:     raw,
		ReflectionId: reflection.Id,
	}, nil
}

func (s *solutionService) LearningSummary(ctx context.Context, req *dto.LearningSummaryRequest) (*dto.LearningSummaryResponse, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt.LearningSummary(req.Explanation, req.ReflectionAnswers),
		llm.WithMaxTokens(prompt.BudgetLearningSummary))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate learning summary", err)
	}

	var summary dto.SummaryDTO
	if err := extract.Object(raw, &summary); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate learning summary", err, raw)
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		return nil, apperr.Persistence("failed to encode summary", err)
	}

	history := entity.LearningHistory{
		Id:            uuid.New(),
		ProblemId:     req.ProblemId,
		Summary:       summaryJson,
		ProgressScore: summary.ProgressScore,
		CreatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LearningHistoryRepository().Create(ctx, &history); err != nil {
		return nil, apperr.Persistence("failed to save learning history", err)
	}

	return &dto.LearningSummaryResponse{Summary: summary}, nil
}

// ChallengeFeedback scores the user's independent retry against the original
// solution and records the attempt on the solution row.
func (s *solutionService) ChallengeFeedback(ctx context.Context, req *dto.ChallengeFeedbackRequest) (*dto.ChallengeFeedbackResponse, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt.ChallengeFeedback(req.OriginalCode, req.UserAttempt),
		llm.WithMaxTokens(prompt.BudgetChallengeFeedback))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate challenge feedback", err)
	}

	var feedback dto.ChallengeFeedbackDTO
	if err := extract.Object(raw, &feedback); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate challenge feedback", err, raw)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	solution, err := uow.SolutionRepository().FindById(ctx, req.SolutionId)
	if err != nil {
		return nil, apperr.Persistence("failed to load solution", err)
	}
	if solution == nil {
		return nil, apperr.ValidationInput("solution not found")
	}

	solution.ChallengeAttempt = req.UserAttempt
	if err := uow.SolutionRepository().Update(ctx, solution); err != nil {
		return nil, apperr.Persistence("failed to record challenge attempt", err)
	}

	return &dto.ChallengeFeedbackResponse{Feedback: feedback}, nil
}

const defaultListLimit = 20

// ListProblems returns recent problems, newest first, optionally filtered by
// domain. The limit is clamped so a caller cannot page the whole table.
func (s *solutionService) ListProblems(ctx context.Context, domain string, limit int) (*dto.ListProblemsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: limit},
	}
	if domain != "" {
		specs = append(specs, specification.ByDomain{Domain: domain})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	problems, err := uow.ProblemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Persistence("failed to list problems", err)
	}

	res := &dto.ListProblemsResponse{Problems: make([]dto.ProblemDTO, 0, len(problems))}
	for _, p := range problems {
		res.Problems = append(res.Problems, dto.ProblemDTO{
			Id:          p.Id,
			Title:       p.Title,
			Description: p.Description,
			Domain:      p.Domain,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}

// ListReflections returns the reflection exchanges recorded for a solution
// in the order they happened.
func (s *solutionService) ListReflections(ctx context.Context, solutionId uuid.UUID) (*dto.ListReflectionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reflections, err := uow.ReflectionRepository().FindAll(ctx,
		specification.BySolutionID{SolutionID: solutionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperr.Persistence("failed to list reflections", err)
	}

	res := &dto.ListReflectionsResponse{Reflections: make([]dto.ReflectionDTO, 0, len(reflections))}
	for _, r := range reflections {
		res.Reflections = append(res.Reflections, dto.ReflectionDTO{
			Id:         r.Id,
			SolutionId: r.SolutionId,
			Prompt:     r.Prompt,
			UserAnswer: r.UserAnswer,
			AiFeedback: r.AiFeedback,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}

// LearningHistoryForProblem returns the summaries generated for a problem,
// newest first. A summary blob that no longer decodes is returned with its
// score only rather than failing the whole listing.
func (s *solutionService) LearningHistoryForProblem(ctx context.Context, problemId uuid.UUID) (*dto.ListLearningHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.LearningHistoryRepository().FindAll(ctx,
		specification.ByProblemID{ProblemID: problemId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence("failed to list learning history", err)
	}

	res := &dto.ListLearningHistoryResponse{History: make([]dto.LearningHistoryDTO, 0, len(entries))}
	for _, h := range entries {
		item := dto.LearningHistoryDTO{
			Id:            h.Id,
			ProblemId:     h.ProblemId,
			ProgressScore: h.ProgressScore,
			CreatedAt:     h.CreatedAt.Format(time.RFC3339),
		}
		if err := json.Unmarshal(h.Summary, &item.Summary); err != nil {
			s.log.Warn("solution", "stored summary does not decode", map[string]interface{}{
				"history_id": h.Id.String(),
				"error":      err.Error(),
			})
		}
		res.History = append(res.History, item)
	}
	return res, nil
}

// truncateTitle caps the derived title on a rune boundary so a multi-byte
// character is never split.
func truncateTitle(question string) string {
	const maxLen = 120
	if len(question) <= maxLen {
		return question
	}
	runes := []rune(question)
	if len(runes) <= maxLen {
		return question
	}
	return string(runes[:maxLen])
}
