package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
)

type SolutionRepository interface {
	Create(ctx context.Context, solution *entity.Solution) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Solution, error)
	Update(ctx context.Context, solution *entity.Solution) error
}
