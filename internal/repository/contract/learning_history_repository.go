package contract

import (
	"context"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/specification"
)

type LearningHistoryRepository interface {
	Create(ctx context.Context, history *entity.LearningHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningHistory, error)
}
