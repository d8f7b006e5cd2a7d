package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Problem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Domain      string    `gorm:"type:varchar(32);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Problem) TableName() string {
	return "problems"
}

type Solution struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProblemId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Code             string    `gorm:"type:text"`
	Explanation      string    `gorm:"type:text"`
	Assumptions      string    `gorm:"type:text"`
	TradeOffs        string    `gorm:"type:text"`
	ChallengeAttempt string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        *time.Time
}

func (Solution) TableName() string {
	return "solutions"
}

type Reflection struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SolutionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Prompt     string    `gorm:"type:text"`
	UserAnswer string    `gorm:"type:text"`
	AiFeedback string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Reflection) TableName() string {
	return "reflections"
}

type LearningHistory struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProblemId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Summary       datatypes.JSON `gorm:"type:jsonb"`
	ProgressScore int
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (LearningHistory) TableName() string {
	return "learning_histories"
}

type SolutionEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolutionId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 uses 768 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (SolutionEmbedding) TableName() string {
	return "solution_embeddings"
}
