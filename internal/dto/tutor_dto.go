package dto

import (
	"ai-tutor-be/internal/entity"
)

type DetectDomainRequest struct {
	Question string `json:"question" validate:"required"`
}

type DetectDomainResponse struct {
	Domain string `json:"domain"`
}

type DetectModeRequest struct {
	Question string `json:"question" validate:"required"`
}

type DetectModeResponse struct {
	Mode        string  `json:"mode"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

type OverviewRequest struct {
	Topic string `json:"topic" validate:"required"`
	Mode  string `json:"mode" validate:"required"`
}

type OverviewResponse struct {
	Overview *entity.Overview `json:"overview"`
}

type StepsRequest struct {
	Question string `json:"question" validate:"required"`
	Mode     string `json:"mode" validate:"required"`
}

type StepsResponse struct {
	Data []entity.SessionStep `json:"data"`
	Mode string               `json:"mode"`
}

type ValidateStepRequest struct {
	StepTitle   string `json:"stepTitle"`
	Instruction string `json:"instruction" validate:"required"`
	UserAttempt string `json:"userAttempt" validate:"required"`
	Mode        string `json:"mode" validate:"required"`
}

type ValidateStepResponse struct {
	IsCorrect   bool   `json:"isCorrect"`
	Feedback    string `json:"feedback"`
	Suggestion  string `json:"suggestion"`
	ConceptNote string `json:"conceptNote"`
}

type ConceptualGuideRequest struct {
	StepOrConcept string `json:"stepOrConcept" validate:"required"`
	Explanation   string `json:"explanation"`
	Mode          string `json:"mode" validate:"required"`
}

type ConceptualGuideResponse struct {
	Guide *entity.ConceptGuide `json:"guide"`
}

type SuggestExpansionRequest struct {
	Topic string `json:"topic" validate:"required"`
	Mode  string `json:"mode" validate:"required"`
}

type SuggestExpansionResponse struct {
	Suggestions   []entity.ExpansionSuggestion `json:"suggestions"`
	Encouragement string                       `json:"encouragement"`
}
