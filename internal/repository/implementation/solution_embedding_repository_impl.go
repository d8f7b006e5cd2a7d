package implementation

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/mapper"
	"ai-tutor-be/internal/model"
	"ai-tutor-be/internal/repository/contract"
)

type SolutionEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewSolutionEmbeddingRepository(db *gorm.DB) contract.SolutionEmbeddingRepository {
	return &SolutionEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *SolutionEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.SolutionEmbedding) error {
	m := r.mapper.SolutionEmbeddingToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.SolutionEmbeddingToEntity(m)
	return nil
}

func (r *SolutionEmbeddingRepositoryImpl) DeleteBySolutionId(ctx context.Context, solutionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("solution_id = ?", solutionId).Delete(&model.SolutionEmbedding{}).Error
}

func (r *SolutionEmbeddingRepositoryImpl) FindSimilar(ctx context.Context, queryEmbedding []float32, threshold float64, limit int) ([]*entity.SimilarSolution, error) {
	if limit <= 0 {
		limit = 3
	}

	// pgvector's <=> operator is cosine distance, so similarity is
	// 1 - (embedding_value <=> query_vector).
	type result struct {
		model.Solution
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(queryEmbedding)

	err := r.db.WithContext(ctx).
		Table("solution_embeddings").
		Select("solutions.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN solutions ON solutions.id = solution_embeddings.solution_id").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	hits := make([]*entity.SimilarSolution, len(results))
	for i, res := range results {
		hits[i] = &entity.SimilarSolution{
			Solution:   *r.mapper.SolutionToEntity(&res.Solution),
			Similarity: res.Similarity,
		}
	}
	return hits, nil
}
