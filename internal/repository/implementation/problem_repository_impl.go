package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/mapper"
	"ai-tutor-be/internal/model"
	"ai-tutor-be/internal/repository/contract"
	"ai-tutor-be/internal/repository/specification"
)

type ProblemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewProblemRepository(db *gorm.DB) contract.ProblemRepository {
	return &ProblemRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *ProblemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProblemRepositoryImpl) Create(ctx context.Context, problem *entity.Problem) error {
	m := r.mapper.ProblemToModel(problem)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*problem = *r.mapper.ProblemToEntity(m)
	return nil
}

func (r *ProblemRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Problem, error) {
	var m model.Problem
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProblemToEntity(&m), nil
}

func (r *ProblemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error) {
	var models []*model.Problem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Problem, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProblemToEntity(m)
	}
	return entities, nil
}
