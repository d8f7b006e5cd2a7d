package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ai-tutor-be/internal/repository/contract"
	"ai-tutor-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

// getDB returns the active transaction if one was started, otherwise the
// shared connection. Repositories built from it all see the same tx.
func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ProblemRepository() contract.ProblemRepository {
	return implementation.NewProblemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SolutionRepository() contract.SolutionRepository {
	return implementation.NewSolutionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReflectionRepository() contract.ReflectionRepository {
	return implementation.NewReflectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LearningHistoryRepository() contract.LearningHistoryRepository {
	return implementation.NewLearningHistoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SolutionEmbeddingRepository() contract.SolutionEmbeddingRepository {
	return implementation.NewSolutionEmbeddingRepository(u.getDB())
}
