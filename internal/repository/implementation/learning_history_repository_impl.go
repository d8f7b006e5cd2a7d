package implementation

import (
	"context"

	"gorm.io/gorm"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/mapper"
	"ai-tutor-be/internal/model"
	"ai-tutor-be/internal/repository/contract"
	"ai-tutor-be/internal/repository/specification"
)

type LearningHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewLearningHistoryRepository(db *gorm.DB) contract.LearningHistoryRepository {
	return &LearningHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *LearningHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningHistoryRepositoryImpl) Create(ctx context.Context, history *entity.LearningHistory) error {
	m := r.mapper.LearningHistoryToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.LearningHistoryToEntity(m)
	return nil
}

func (r *LearningHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningHistory, error) {
	var models []*model.LearningHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LearningHistory, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LearningHistoryToEntity(m)
	}
	return entities, nil
}
