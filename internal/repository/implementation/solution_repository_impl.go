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
)

type SolutionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewSolutionRepository(db *gorm.DB) contract.SolutionRepository {
	return &SolutionRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *SolutionRepositoryImpl) Create(ctx context.Context, solution *entity.Solution) error {
	m := r.mapper.SolutionToModel(solution)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*solution = *r.mapper.SolutionToEntity(m)
	return nil
}

func (r *SolutionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Solution, error) {
	var m model.Solution
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SolutionToEntity(&m), nil
}

func (r *SolutionRepositoryImpl) Update(ctx context.Context, solution *entity.Solution) error {
	m := r.mapper.SolutionToModel(solution)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*solution = *r.mapper.SolutionToEntity(m)
	return nil
}
