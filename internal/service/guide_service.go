package service

import (
	"context"
	"strings"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/pkg/ai/extract"
	"ai-tutor-be/pkg/ai/prompt"
	"ai-tutor-be/pkg/llm"
)

// IGuideService covers the stateless tutoring operations: everything that
// turns a question or topic into structured guidance without touching
// storage.
type IGuideService interface {
	Overview(ctx context.Context, req *dto.OverviewRequest) (*dto.OverviewResponse, error)
	Steps(ctx context.Context, req *dto.StepsRequest) (*dto.StepsResponse, error)
	ValidateStep(ctx context.Context, req *dto.ValidateStepRequest) (*dto.ValidateStepResponse, error)
	ConceptualGuide(ctx context.Context, req *dto.ConceptualGuideRequest) (*dto.ConceptualGuideResponse, error)
	SuggestExpansion(ctx context.Context, req *dto.SuggestExpansionRequest) (*dto.SuggestExpansionResponse, error)
}

type guideService struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewGuideService(llmProvider llm.LLMProvider, log logger.ILogger) IGuideService {
	return &guideService{
		llmProvider: llmProvider,
		log:         log,
	}
}

func parseModeOrErr(s string) (prompt.Mode, error) {
	mode, ok := prompt.ParseMode(s)
	if !ok {
		return "", apperr.ValidationInput("mode must be LEARN or SOLVE")
	}
	return mode, nil
}

func (s *guideService) Overview(ctx context.Context, req *dto.OverviewRequest) (*dto.OverviewResponse, error) {
	mode, err := parseModeOrErr(req.Mode)
	if err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.Overview(req.Topic, mode),
		llm.WithMaxTokens(prompt.BudgetOverview))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate overview", err)
	}

	var overview entity.Overview
	if err := extract.Object(raw, &overview); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate overview", err, raw)
	}

	return &dto.OverviewResponse{Overview: &overview}, nil
}

func (s *guideService) Steps(ctx context.Context, req *dto.StepsRequest) (*dto.StepsResponse, error) {
	mode, err := parseModeOrErr(req.Mode)
	if err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.Steps(req.Question, mode),
		llm.WithMaxTokens(prompt.BudgetSteps))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate steps", err)
	}

	// SOLVE completions answer under "steps", LEARN under "concepts"; both
	// carry the same union step shape.
	var payload struct {
		Steps    []entity.SessionStep `json:"steps"`
		Concepts []entity.SessionStep `json:"concepts"`
	}
	if err := extract.Object(raw, &payload); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate steps", err, raw)
	}

	data := payload.Steps
	if len(data) == 0 {
		data = payload.Concepts
	}
	if len(data) == 0 {
		return nil, apperr.MalformedCompletion("step generation returned an empty path", nil, raw)
	}

	return &dto.StepsResponse{
		Data: data,
		Mode: string(mode),
	}, nil
}

// ValidateStep judges a user's attempt at one step. LEARN-mode completions
// speak in clarification/nextStep; those are folded into the suggestion and
// conceptNote fields so callers see a single shape.
func (s *guideService) ValidateStep(ctx context.Context, req *dto.ValidateStepRequest) (*dto.ValidateStepResponse, error) {
	mode, err := parseModeOrErr(req.Mode)
	if err != nil {
		return nil, err
	}
	// The LEARN prompt only uses the question and answer, so stepTitle is
	// required for SOLVE validation alone.
	if mode == prompt.ModeSolve && strings.TrimSpace(req.StepTitle) == "" {
		return nil, apperr.ValidationInput("stepTitle is required for SOLVE validation")
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.ValidateStep(req.StepTitle, req.Instruction, req.UserAttempt, mode),
		llm.WithMaxTokens(prompt.BudgetValidateStep))
	if err != nil {
		return nil, apperr.CompletionCall("failed to validate step", err)
	}

	var payload struct {
		IsCorrect     bool   `json:"isCorrect"`
		Feedback      string `json:"feedback"`
		Suggestion    string `json:"suggestion"`
		ConceptNote   string `json:"conceptNote"`
		Clarification string `json:"clarification"`
		NextStep      string `json:"nextStep"`
	}
	if err := extract.Object(raw, &payload); err != nil {
		return nil, apperr.MalformedCompletion("failed to validate step", err, raw)
	}

	resp := &dto.ValidateStepResponse{
		IsCorrect:   payload.IsCorrect,
		Feedback:    payload.Feedback,
		Suggestion:  payload.Suggestion,
		ConceptNote: payload.ConceptNote,
	}
	if resp.Suggestion == "" {
		resp.Suggestion = payload.Clarification
	}
	if resp.ConceptNote == "" {
		resp.ConceptNote = payload.NextStep
	}
	return resp, nil
}

func (s *guideService) ConceptualGuide(ctx context.Context, req *dto.ConceptualGuideRequest) (*dto.ConceptualGuideResponse, error) {
	if _, err := parseModeOrErr(req.Mode); err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.ConceptualGuide(req.StepOrConcept, req.Explanation),
		llm.WithMaxTokens(prompt.BudgetConceptualGuide))
	if err != nil {
		return nil, apperr.CompletionCall("failed to generate conceptual guide", err)
	}

	var guide entity.ConceptGuide
	if err := extract.Object(raw, &guide); err != nil {
		return nil, apperr.MalformedCompletion("failed to generate conceptual guide", err, raw)
	}

	return &dto.ConceptualGuideResponse{Guide: &guide}, nil
}

func (s *guideService) SuggestExpansion(ctx context.Context, req *dto.SuggestExpansionRequest) (*dto.SuggestExpansionResponse, error) {
	mode, err := parseModeOrErr(req.Mode)
	if err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Generate(ctx, prompt.SuggestExpansion(req.Topic, mode),
		llm.WithMaxTokens(prompt.BudgetSuggestExpansion))
	if err != nil {
		return nil, apperr.CompletionCall("failed to suggest expansions", err)
	}

	var payload struct {
		Suggestions   []entity.ExpansionSuggestion `json:"suggestions"`
		Encouragement string                       `json:"encouragement"`
	}
	if err := extract.Object(raw, &payload); err != nil {
		return nil, apperr.MalformedCompletion("failed to suggest expansions", err, raw)
	}

	return &dto.SuggestExpansionResponse{
		Suggestions:   payload.Suggestions,
		Encouragement: payload.Encouragement,
	}, nil
}
