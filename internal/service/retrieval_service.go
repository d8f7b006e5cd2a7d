package service

import (
	"context"
	"fmt"
	"strings"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/pkg/embedding"
)

const (
	// Cosine similarity floor and result cap for context retrieval.
	retrievalThreshold = 0.7
	retrievalCount     = 3
)

type IRetrievalService interface {
	RetrieveContext(ctx context.Context, req *dto.RetrieveContextRequest) (*dto.RetrieveContextResponse, error)
}

type retrievalService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewRetrievalService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IRetrievalService {
	return &retrievalService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

// RetrieveContext embeds the problem description and returns the closest
// stored solutions formatted as few-shot context for the solution prompt.
func (s *retrievalService) RetrieveContext(ctx context.Context, req *dto.RetrieveContextRequest) (*dto.RetrieveContextResponse, error) {
	res, err := s.embeddingProvider.Generate(req.Description, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, apperr.CompletionCall("failed to embed description", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	hits, err := uow.SolutionEmbeddingRepository().FindSimilar(ctx, res.Embedding.Values, retrievalThreshold, retrievalCount)
	if err != nil {
		return nil, apperr.Persistence("failed to search similar solutions", err)
	}

	if len(hits) == 0 {
		return &dto.RetrieveContextResponse{
			Context:      "No similar solutions found",
			SimilarCount: 0,
		}, nil
	}

	parts := make([]string, len(hits))
	for i, hit := range hits {
		parts[i] = fmt.Sprintf("Example %d:\nCode:\n%s\n\nExplanation:\n%s",
			i+1, hit.Solution.Code, hit.Solution.Explanation)
	}

	return &dto.RetrieveContextResponse{
		Context:      strings.Join(parts, "\n\n---\n\n"),
		SimilarCount: len(hits),
	}, nil
}
