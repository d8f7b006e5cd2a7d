package mapper

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/model"
)

type LearningMapper struct{}

func NewLearningMapper() *LearningMapper {
	return &LearningMapper{}
}

func (m *LearningMapper) ProblemToModel(e *entity.Problem) *model.Problem {
	return &model.Problem{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Domain:      e.Domain,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *LearningMapper) ProblemToEntity(mo *model.Problem) *entity.Problem {
	return &entity.Problem{
		Id:          mo.Id,
		Title:       mo.Title,
		Description: mo.Description,
		Domain:      mo.Domain,
		CreatedAt:   mo.CreatedAt,
	}
}

func (m *LearningMapper) SolutionToModel(e *entity.Solution) *model.Solution {
	return &model.Solution{
		Id:               e.Id,
		ProblemId:        e.ProblemId,
		Code:             e.Code,
		Explanation:      e.Explanation,
		Assumptions:      e.Assumptions,
		TradeOffs:        e.TradeOffs,
		ChallengeAttempt: e.ChallengeAttempt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (m *LearningMapper) SolutionToEntity(mo *model.Solution) *entity.Solution {
	return &entity.Solution{
		Id:               mo.Id,
		ProblemId:        mo.ProblemId,
		Code:             mo.Code,
		Explanation:      mo.Explanation,
		Assumptions:      mo.Assumptions,
		TradeOffs:        mo.TradeOffs,
		ChallengeAttempt: mo.ChallengeAttempt,
		CreatedAt:        mo.CreatedAt,
		UpdatedAt:        mo.UpdatedAt,
	}
}

func (m *LearningMapper) ReflectionToModel(e *entity.Reflection) *model.Reflection {
	return &model.Reflection{
		Id:         e.Id,
		SolutionId: e.SolutionId,
		Prompt:     e.Prompt,
		UserAnswer: e.UserAnswer,
		AiFeedback: e.AiFeedback,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *LearningMapper) ReflectionToEntity(mo *model.Reflection) *entity.Reflection {
	return &entity.Reflection{
		Id:         mo.Id,
		SolutionId: mo.SolutionId,
		Prompt:     mo.Prompt,
		UserAnswer: mo.UserAnswer,
		AiFeedback: mo.AiFeedback,
		CreatedAt:  mo.CreatedAt,
	}
}

func (m *LearningMapper) LearningHistoryToModel(e *entity.LearningHistory) *model.LearningHistory {
	return &model.LearningHistory{
		Id:            e.Id,
		ProblemId:     e.ProblemId,
		Summary:       datatypes.JSON(e.Summary),
		ProgressScore: e.ProgressScore,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *LearningMapper) LearningHistoryToEntity(mo *model.LearningHistory) *entity.LearningHistory {
	return &entity.LearningHistory{
		Id:            mo.Id,
		ProblemId:     mo.ProblemId,
		Summary:       []byte(mo.Summary),
		ProgressScore: mo.ProgressScore,
		CreatedAt:     mo.CreatedAt,
	}
}

func (m *LearningMapper) SolutionEmbeddingToModel(e *entity.SolutionEmbedding) *model.SolutionEmbedding {
	return &model.SolutionEmbedding{
		Id:             e.Id,
		SolutionId:     e.SolutionId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *LearningMapper) SolutionEmbeddingToEntity(mo *model.SolutionEmbedding) *entity.SolutionEmbedding {
	return &entity.SolutionEmbedding{
		Id:             mo.Id,
		SolutionId:     mo.SolutionId,
		Document:       mo.Document,
		EmbeddingValue: mo.EmbeddingValue.Slice(),
		CreatedAt:      mo.CreatedAt,
	}
}
