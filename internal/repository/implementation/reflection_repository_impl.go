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

type ReflectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewReflectionRepository(db *gorm.DB) contract.ReflectionRepository {
	return &ReflectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *ReflectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReflectionRepositoryImpl) Create(ctx context.Context, reflection *entity.Reflection) error {
	m := r.mapper.ReflectionToModel(reflection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reflection = *r.mapper.ReflectionToEntity(m)
	return nil
}

func (r *ReflectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reflection, error) {
	var models []*model.Reflection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Reflection, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReflectionToEntity(m)
	}
	return entities, nil
}
