package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
)

type SolutionEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.SolutionEmbedding) error
	DeleteBySolutionId(ctx context.Context, solutionId uuid.UUID) error
	// FindSimilar returns up to limit stored solutions whose embedding has a
	// cosine similarity of at least threshold with the query vector, closest
	// first.
	FindSimilar(ctx context.Context, queryEmbedding []float32, threshold float64, limit int) ([]*entity.SimilarSolution, error)
}
