package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type ProblemRepository interface {
	Create(ctx context.Context, problem *entity.Problem) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Problem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error)
}
