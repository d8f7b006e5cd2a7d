package dto

import (
	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
)

type StartSessionRequest struct {
	Question string `json:"question" validate:"required"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// SessionSnapshot is the full client-facing view of a tutoring session.
type SessionSnapshot struct {
	Id               uuid.UUID                     `json:"id"`
	Topic            string                        `json:"topic"`
	Domain           string                        `json:"domain"`
	Mode             string                        `json:"mode"`
	State            string                        `json:"state"`
	Overview         *entity.Overview              `json:"overview,omitempty"`
	Steps            []entity.SessionStep          `json:"steps,omitempty"`
	CurrentStepIndex int                           `json:"currentStepIndex"`
	Answers          map[int]string                `json:"answers,omitempty"`
	Validations      map[int]entity.StepValidation `json:"validations,omitempty"`
	Guides           map[int]entity.ConceptGuide   `json:"guides,omitempty"`
	Suggestions      []entity.ExpansionSuggestion  `json:"suggestions,omitempty"`
	Encouragement    string                        `json:"encouragement,omitempty"`
}

func NewSessionSnapshot(s *entity.TutorSession) *SessionSnapshot {
	return &SessionSnapshot{
		Id:               s.Id,
		Topic:            s.Topic,
		Domain:           s.Domain,
		Mode:             string(s.Mode),
		State:            string(s.State),
		Overview:         s.Overview,
		Steps:            s.Steps,
		CurrentStepIndex: s.CurrentStepIndex,
		Answers:          s.Answers,
		Validations:      s.Validations,
		Guides:           s.Guides,
		Suggestions:      s.Suggestions,
		Encouragement:    s.Encouragement,
	}
}
