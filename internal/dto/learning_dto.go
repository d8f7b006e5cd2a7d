package dto

import (
	"github.com/google/uuid"
)

type GenerateSolutionRequest struct {
	Question string `json:"question" validate:"required"`
	Domain   string `json:"domain" validate:"required"`
}

type SolutionDTO struct {
	Id                uuid.UUID `json:"id"`
	ProblemId         uuid.UUID `json:"problemId"`
	Code              string    `json:"code"`
	Explanation       string    `json:"explanation"`
	Assumptions       string    `json:"assumptions"`
	TradeOffs         string    `json:"tradeOffs"`
	ReflectionPrompts []string  `json:"reflectionPrompts"`
}

type GenerateSolutionResponse struct {
	Solution SolutionDTO `json:"solution"`
}

type ReflectionFeedbackRequest struct {
	SolutionId uuid.UUID `json:"solutionId" validate:"required"`
	Prompt     string    `json:"prompt" validate:"required"`
	UserAnswer string    `json:"userAnswer" validate:"required"`
}

type ReflectionFeedbackResponse struct {
	Feedback     string    `json:"feedback"`
	ReflectionId uuid.UUID `json:"reflectionId"`
}

type LearningSummaryRequest struct {
	ProblemId         uuid.UUID `json:"problemId" validate:"required"`
	Explanation       string    `json:"explanation" validate:"required"`
	ReflectionAnswers []string  `json:"reflectionAnswers" validate:"required"`
}

type SummaryDTO struct {
	KeyLessons      []string `json:"keyLessons"`
	ConceptsLearned []string `json:"conceptsLearned"`
	NextSteps       string   `json:"nextSteps"`
	ProgressScore   int      `json:"progressScore"`
}

type LearningSummaryResponse struct {
	Summary SummaryDTO `json:"summary"`
}

type ChallengeFeedbackRequest struct {
	SolutionId   uuid.UUID `json:"solutionId" validate:"required"`
	OriginalCode string    `json:"originalCode" validate:"required"`
	UserAttempt  string    `json:"userAttempt" validate:"required"`
}

type ChallengeFeedbackDTO struct {
	SuccessScore  int      `json:"successScore"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	Comparison    string   `json:"comparison"`
	Encouragement string   `json:"encouragement"`
}

type ChallengeFeedbackResponse struct {
	Feedback ChallengeFeedbackDTO `json:"feedback"`
}

type ProblemDTO struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Domain      string    `json:"domain"`
	CreatedAt   string    `json:"createdAt"`
}

type ListProblemsResponse struct {
	Problems []ProblemDTO `json:"problems"`
}

type ReflectionDTO struct {
	Id         uuid.UUID `json:"id"`
	SolutionId uuid.UUID `json:"solutionId"`
	Prompt     string    `json:"prompt"`
	UserAnswer string    `json:"userAnswer"`
	AiFeedback string    `json:"aiFeedback"`
	CreatedAt  string    `json:"createdAt"`
}

type ListReflectionsResponse struct {
	Reflections []ReflectionDTO `json:"reflections"`
}

type LearningHistoryDTO struct {
	Id            uuid.UUID  `json:"id"`
	ProblemId     uuid.UUID  `json:"problemId"`
	Summary       SummaryDTO `json:"summary"`
	ProgressScore int        `json:"progressScore"`
	CreatedAt     string     `json:"createdAt"`
}

type ListLearningHistoryResponse struct {
	History []LearningHistoryDTO `json:"history"`
}

type RetrieveContextRequest struct {
	Description string `json:"description" validate:"required"`
	Domain      string `json:"domain"`
}

type RetrieveContextResponse struct {
	Context      string `json:"context"`
	SimilarCount int    `json:"similarCount"`
}

// PublishEmbedSolutionMessage is the event payload consumed by the embedding
// indexer.
type PublishEmbedSolutionMessage struct {
	SolutionId uuid.UUID `json:"solution_id"`
}
