package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProblemID struct {
	ProblemID uuid.UUID
}

func (s ByProblemID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("problem_id = ?", s.ProblemID)
}

type BySolutionID struct {
	SolutionID uuid.UUID
}

func (s BySolutionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("solution_id = ?", s.SolutionID)
}

type ByDomain struct {
	Domain string
}

func (s ByDomain) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("domain = ?", s.Domain)
}
