package contract

import (
	"context"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type ReflectionRepository interface {
	Create(ctx context.Context, reflection *entity.Reflection) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reflection, error)
}
