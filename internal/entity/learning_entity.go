package entity

import (
	"time"

	"github.com/google/uuid"
)

type Problem struct {
	Id          uuid.UUID
	Title       string
	Description string
	Domain      string
	CreatedAt   time.Time
}

type Solution struct {
	Id          uuid.UUID
	ProblemId   uuid.UUID
	Code        string
	Explanation string
	Assumptions string
	TradeOffs   string
	// ChallengeAttempt holds the user's latest independent retry of the
	// solution, recorded by challenge feedback.
	ChallengeAttempt string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type Reflection struct {
	Id         uuid.UUID
	SolutionId uuid.UUID
	Prompt     string
	UserAnswer string
	AiFeedback string
	CreatedAt  time.Time
}

type LearningHistory struct {
	Id            uuid.UUID
	ProblemId     uuid.UUID
	Summary       []byte // JSON blob of the generated summary
	ProgressScore int
	CreatedAt     time.Time
}

type SolutionEmbedding struct {
	Id             uuid.UUID
	SolutionId     uuid.UUID
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}

// SimilarSolution is a retrieval hit: a stored solution with its cosine
// similarity to the query.
type SimilarSolution struct {
	Solution   Solution
	Similarity float64
}
