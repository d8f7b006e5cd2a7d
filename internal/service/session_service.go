package service

import (
	"context"
	"strings"
	"sync"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/pkg/ai/prompt"
)

// ISessionService drives a tutoring session through its phases: mode
// detection, overview, step-by-step work, completion. Sessions live in
// memory only and expire with inactivity.
type ISessionService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionSnapshot, error)
	BeginSteps(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SessionSnapshot, error)
	RequestGuide(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error)
	Next(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error)
	Get(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionService struct {
	sessions         *memory.SessionRepository
	detectionService IDetectionService
	guideService     IGuideService
	log              logger.ILogger
	// mu serializes the busy-flag check so overlapping calls for the same
	// session cannot both pass it.
	mu sync.Mutex
}

func NewSessionService(
	sessions *memory.SessionRepository,
	detectionService IDetectionService,
	guideService IGuideService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessions:         sessions,
		detectionService: detectionService,
		guideService:     guideService,
		log:              log,
	}
}

// Start runs domain and mode detection plus the overview for a new question.
// The session is only saved once all three calls succeed, so a half-started
// session is never visible.
func (s *sessionService) Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.SessionSnapshot, error) {
	session := entity.NewTutorSession(req.Question)

	domainRes, err := s.detectionService.DetectDomain(ctx, &dto.DetectDomainRequest{Question: req.Question})
	if err != nil {
		return nil, err
	}
	session.Domain = domainRes.Domain

	modeRes, err := s.detectionService.DetectMode(ctx, &dto.DetectModeRequest{Question: req.Question})
	if err != nil {
		return nil, err
	}
	mode, _ := prompt.ParseMode(modeRes.Mode)
	session.Mode = mode
	session.ModeConfidence = modeRes.Confidence
	session.ModeExplanation = modeRes.Explanation

	overviewRes, err := s.guideService.Overview(ctx, &dto.OverviewRequest{
		Topic: req.Question,
		Mode:  string(mode),
	})
	if err != nil {
		return nil, err
	}
	session.Overview = overviewRes.Overview
	session.State = entity.StateOverviewReady

	s.sessions.Save(session)
	return dto.NewSessionSnapshot(session), nil
}

// BeginSteps generates the learning path and moves the session into
// step-by-step work. Once generated the step list never changes.
func (s *sessionService) BeginSteps(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != entity.StateOverviewReady {
		return nil, apperr.ValidationInput("session is not awaiting step generation")
	}
	if err := s.acquire(session); err != nil {
		return nil, err
	}
	defer s.release(session)

	stepsRes, err := s.guideService.Steps(ctx, &dto.StepsRequest{
		Question: session.Topic,
		Mode:     string(session.Mode),
	})
	if err != nil {
		return nil, err
	}

	session.Steps = stepsRes.Data
	session.CurrentStepIndex = 0
	session.State = entity.StateStepsReady

	s.sessions.Save(session)
	return dto.NewSessionSnapshot(session), nil
}

// SubmitAnswer validates the user's attempt at the current step. A blank
// answer is rejected before any completion call is made. Resubmitting the
// same step overwrites the previous judgment.
func (s *sessionService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SessionSnapshot, error) {
	if strings.TrimSpace(req.Answer) == "" {
		return nil, apperr.ValidationInput("answer must not be empty")
	}

	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != entity.StateStepsReady {
		return nil, apperr.ValidationInput("session has no active step")
	}

	if err := s.acquire(session); err != nil {
		return nil, err
	}
	defer s.release(session)

	step := session.Steps[session.CurrentStepIndex]
	validateRes, err := s.guideService.ValidateStep(ctx, &dto.ValidateStepRequest{
		StepTitle:   stepTitle(step),
		Instruction: stepInstruction(step),
		UserAttempt: req.Answer,
		Mode:        string(session.Mode),
	})
	if err != nil {
		return nil, err
	}

	session.Answers[session.CurrentStepIndex] = req.Answer
	session.Validations[session.CurrentStepIndex] = entity.StepValidation{
		IsCorrect:   validateRes.IsCorrect,
		Feedback:    validateRes.Feedback,
		Suggestion:  validateRes.Suggestion,
		ConceptNote: validateRes.ConceptNote,
	}

	s.sessions.Save(session)
	return dto.NewSessionSnapshot(session), nil
}

// RequestGuide fetches the deeper conceptual guide for the current step.
// Guides are cached per step, so asking twice costs one completion.
func (s *sessionService) RequestGuide(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != entity.StateStepsReady {
		return nil, apperr.ValidationInput("session has no active step")
	}
	if err := s.acquire(session); err != nil {
		return nil, err
	}
	defer s.release(session)

	idx := session.CurrentStepIndex
	if _, ok := session.Guides[idx]; !ok {
		step := session.Steps[idx]
		guideRes, err := s.guideService.ConceptualGuide(ctx, &dto.ConceptualGuideRequest{
			StepOrConcept: stepTitle(step),
			Explanation:   stepInstruction(step),
			Mode:          string(session.Mode),
		})
		if err != nil {
			return nil, err
		}
		session.Guides[idx] = *guideRes.Guide
		s.sessions.Save(session)
	}

	return dto.NewSessionSnapshot(session), nil
}

// Next advances to the following step. The current step must have been
// validated first; the index only ever moves forward by one. Leaving the
// last step completes the session and fetches expansion suggestions, whose
// failure is not fatal.
func (s *sessionService) Next(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != entity.StateStepsReady {
		return nil, apperr.ValidationInput("session has no active step")
	}
	if err := s.acquire(session); err != nil {
		return nil, err
	}
	defer s.release(session)
	if _, ok := session.Validations[session.CurrentStepIndex]; !ok {
		return nil, apperr.ValidationInput("current step has not been validated")
	}

	if session.CurrentStepIndex < len(session.Steps)-1 {
		session.CurrentStepIndex++
		s.sessions.Save(session)
		return dto.NewSessionSnapshot(session), nil
	}

	// Last step done. Suggestions are a bonus, not a gate.
	suggestRes, err := s.guideService.SuggestExpansion(ctx, &dto.SuggestExpansionRequest{
		Topic: session.Topic,
		Mode:  string(session.Mode),
	})
	if err != nil {
		s.log.Warn("session", "expansion suggestions failed, completing without them", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		session.Suggestions = []entity.ExpansionSuggestion{}
	} else {
		session.Suggestions = suggestRes.Suggestions
		session.Encouragement = suggestRes.Encouragement
	}
	session.State = entity.StateSessionComplete

	s.sessions.Save(session)
	return dto.NewSessionSnapshot(session), nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*dto.SessionSnapshot, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	return dto.NewSessionSnapshot(session), nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.load(sessionID); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	return nil
}

func (s *sessionService) load(sessionID string) (*entity.TutorSession, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, apperr.ValidationInput("session not found or expired")
	}
	return session, nil
}

// acquire claims the session's busy flag. Every mutating operation holds it
// for its duration, so overlapping calls (double-clicks, concurrent tabs)
// cannot fire duplicate completions or skip the per-step validation gate.
func (s *sessionService) acquire(session *entity.TutorSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.Busy {
		return apperr.ValidationInput("another operation for this session is in progress")
	}
	session.Busy = true
	return nil
}

func (s *sessionService) release(session *entity.TutorSession) {
	s.mu.Lock()
	session.Busy = false
	s.mu.Unlock()
}

// stepTitle and stepInstruction bridge the two step vocabularies: SOLVE
// steps carry title/instruction, LEARN concepts carry name and exercise or
// recall question.
func stepTitle(step entity.SessionStep) string {
	if step.Title != "" {
		return step.Title
	}
	return step.Name
}

func stepInstruction(step entity.SessionStep) string {
	if step.Instruction != "" {
		return step.Instruction
	}
	if step.Exercise != "" {
		return step.Exercise
	}
	return step.RecallQuestion
}
