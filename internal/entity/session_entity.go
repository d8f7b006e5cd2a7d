package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-be/pkg/ai/prompt"
)

// SessionState is the screen-level phase of a tutoring session.
type SessionState string

const (
	StateModeDetecting   SessionState = "MODE_DETECTING"
	StateOverviewReady   SessionState = "OVERVIEW_READY"
	StateStepsReady      SessionState = "STEPS_READY"
	StateSessionComplete SessionState = "SESSION_COMPLETE"
)

// Overview is the mode-dependent session opener. LEARN fills the first three
// fields, SOLVE the next three; encouragement is always present.
type Overview struct {
	WhatItIs         string `json:"whatItIs,omitempty"`
	WhyItMatters     string `json:"whyItMatters,omitempty"`
	WhatYouWillLearn string `json:"whatYouWillLearn,omitempty"`
	WhatYouWillDo    string `json:"whatYouWillDo,omitempty"`
	WhyThisApproach  string `json:"whyThisApproach,omitempty"`
	WhatToExpect     string `json:"whatToExpect,omitempty"`
	Encouragement    string `json:"encouragement"`
}

// SessionStep is one unit of the generated learning path: a Step in SOLVE
// mode (title/instruction/example) or a Concept in LEARN mode
// (name/explanation/recallQuestion/difficulty/exercise). The session's mode
// is the discriminator.
type SessionStep struct {
	Id             int    `json:"id"`
	Title          string `json:"title,omitempty"`
	Instruction    string `json:"instruction,omitempty"`
	Example        string `json:"example,omitempty"`
	Name           string `json:"name,omitempty"`
	Explanation    string `json:"explanation,omitempty"`
	RecallQuestion string `json:"recallQuestion,omitempty"`
	Difficulty     string `json:"difficulty,omitempty"`
	Exercise       string `json:"exercise,omitempty"`
	Why            string `json:"why"`
}

// StepValidation is the normalized per-step judgment. LEARN-mode replies use
// clarification/nextStep upstream; those are folded into Suggestion and
// ConceptNote before anything leaves the service layer.
type StepValidation struct {
	IsCorrect   bool   `json:"isCorrect"`
	Feedback    string `json:"feedback"`
	Suggestion  string `json:"suggestion"`
	ConceptNote string `json:"conceptNote"`
}

type ConceptGuide struct {
	CoreIdea            string `json:"coreIdea"`
	WhyItMatters        string `json:"whyItMatters"`
	AlternativeApproach string `json:"alternativeApproach"`
	KeyTakeaway         string `json:"keyTakeaway"`
	ThinkAboutThis      string `json:"thinkAboutThis"`
}

// ExpansionSuggestion carries both SOLVE (topic/why) and LEARN
// (name/description/timeEstimate) vocabularies.
type ExpansionSuggestion struct {
	Topic        string `json:"topic,omitempty"`
	Why          string `json:"why,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Difficulty   string `json:"difficulty"`
	TimeEstimate string `json:"timeEstimate,omitempty"`
}

// TutorSession is the server-held state of one tutoring run. Mode and topic
// are fixed once detection succeeds; the step list is fixed once generated;
// CurrentStepIndex only moves forward, one step at a time.
type TutorSession struct {
	Id               uuid.UUID
	Topic            string
	Domain           string
	Mode             prompt.Mode
	ModeConfidence   float64
	ModeExplanation  string
	State            SessionState
	Overview         *Overview
	Steps            []SessionStep
	CurrentStepIndex int
	Answers          map[int]string
	Validations      map[int]StepValidation
	Guides           map[int]ConceptGuide
	Suggestions      []ExpansionSuggestion
	Encouragement    string
	// Busy guards against overlapping submissions for the same session
	// (double-clicks) causing duplicate completion calls.
	Busy      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTutorSession(topic string) *TutorSession {
	now := time.Now()
	return &TutorSession{
		Id:          uuid.New(),
		Topic:       topic,
		State:       StateModeDetecting,
		Answers:     make(map[int]string),
		Validations: make(map[int]StepValidation),
		Guides:      make(map[int]ConceptGuide),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
