package service

import (
	"context"
	"strings"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/pkg/ai/extract"
	"ai-tutor-be/pkg/ai/prompt"
	"ai-tutor-be/pkg/llm"
)

type IDetectionService interface {
	DetectDomain(ctx context.Context, req *dto.DetectDomainRequest) (*dto.DetectDomainResponse, error)
	DetectMode(ctx context.Context, req *dto.DetectModeRequest) (*dto.DetectModeResponse, error)
}

type detectionService struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewDetectionService(llmProvider llm.LLMProvider, log logger.ILogger) IDetectionService {
	return &detectionService{
		llmProvider: llmProvider,
		log:         log,
	}
}

var validDomains = map[string]bool{
	"coding":          true,
	"writing":         true,
	"research":        true,
	"problem-solving": true,
}

// DetectDomain classifies a question into one of four domains. Anything the
// model returns outside that set is coerced to "problem-solving".
func (s *detectionService) DetectDomain(ctx context.Context, req *dto.DetectDomainRequest) (*dto.DetectDomainResponse, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt.DetectDomain(req.Question),
		llm.WithMaxTokens(prompt.BudgetDetectDomain))
	if err != nil {
		return nil, apperr.CompletionCall("failed to detect domain", err)
	}

	domain := strings.ToLower(strings.TrimSpace(raw))
	if !validDomains[domain] {
		s.log.Warn("detection", "unrecognized domain token, falling back", map[string]interface{}{
			"token": domain,
		})
		domain = "problem-solving"
	}

	return &dto.DetectDomainResponse{Domain: domain}, nil
}

func (s *detectionService) DetectMode(ctx context.Context, req *dto.DetectModeRequest) (*dto.DetectModeResponse, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt.DetectMode(req.Question),
		llm.WithMaxTokens(prompt.BudgetDetectMode))
	if err != nil {
		return nil, apperr.CompletionCall("failed to detect mode", err)
	}

	var payload struct {
		Mode        string  `json:"mode"`
		Confidence  float64 `json:"confidence"`
		Explanation string  `json:"explanation"`
	}
	if err := extract.Object(raw, &payload); err != nil {
		return nil, apperr.MalformedCompletion("failed to detect mode", err, raw)
	}

	mode, ok := prompt.ParseMode(payload.Mode)
	if !ok {
		return nil, apperr.MalformedCompletion("mode detection returned an unknown mode", nil, raw)
	}

	return &dto.DetectModeResponse{
		Mode:        string(mode),
		Confidence:  payload.Confidence,
		Explanation: payload.Explanation,
	}, nil
}
