package unitofwork

import (
	"context"

	"ai-tutor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProblemRepository() contract.ProblemRepository
	SolutionRepository() contract.SolutionRepository
	ReflectionRepository() contract.ReflectionRepository
	LearningHistoryRepository() contract.LearningHistoryRepository
	SolutionEmbeddingRepository() contract.SolutionEmbeddingRepository
}
