package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/apperr"
	"ai-tutor-be/internal/repository/memory"
	"ai-tutor-be/pkg/llm"
)

const (
	domainCompletion   = "coding"
	modeCompletion     = `{"mode":"SOLVE","confidence":0.9,"explanation":"a concrete task"}`
	overviewCompletion = `{"whatYouWillDo":"push code","whyThisApproach":"standard flow","whatToExpect":"four commands","encouragement":"Go"}`
	stepsCompletion    = `{"steps":[` +
		`{"id":1,"title":"Init","instruction":"git init","why":"start tracking","example":"git init"},` +
		`{"id":2,"title":"Commit","instruction":"git commit","why":"record work","example":"git commit -m"},` +
		`{"id":3,"title":"Push","instruction":"git push","why":"publish","example":"git push origin main"}]}`
	validationCompletion = `{"isCorrect":true,"feedback":"correct","suggestion":"","conceptNote":""}`
	guideCompletion      = `{"coreIdea":"a","whyItMatters":"b","alternativeApproach":"c","keyTakeaway":"d","thinkAboutThis":"e"}`
	expansionCompletion  = `{"suggestions":[{"topic":"branching","why":"next skill","difficulty":"medium"}],"encouragement":"Onward"}`
)

func newSessionFixture(mock *stubLLM) ISessionService {
	return newSessionFixtureWithProvider(mock)
}

func newSessionFixtureWithProvider(provider llm.LLMProvider) ISessionService {
	sessions := memory.NewSessionRepository(time.Hour, time.Hour)
	detection := NewDetectionService(provider, nopLogger{})
	guide := NewGuideService(provider, nopLogger{})
	return NewSessionService(sessions, detection, guide, nopLogger{})
}

// startSession drives a fixture session to STEPS_READY with three steps.
func startSession(t *testing.T, mock *stubLLM, svc ISessionService) *dto.SessionSnapshot {
	t.Helper()
	mock.responses = append(mock.responses, domainCompletion, modeCompletion, overviewCompletion)
	snap, err := svc.Start(context.Background(), &dto.StartSessionRequest{Question: "How to push code?"})
	require.NoError(t, err)

	mock.responses = append(mock.responses, stepsCompletion)
	snap, err = svc.BeginSteps(context.Background(), snap.Id.String())
	require.NoError(t, err)
	return snap
}

func TestSessionStart(t *testing.T) {
	mock := &stubLLM{responses: []string{domainCompletion, modeCompletion, overviewCompletion}}
	svc := newSessionFixture(mock)

	snap, err := svc.Start(context.Background(), &dto.StartSessionRequest{Question: "How to push code?"})
	require.NoError(t, err)

	assert.Equal(t, "coding", snap.Domain)
	assert.Equal(t, "SOLVE", snap.Mode)
	assert.Equal(t, string(entity.StateOverviewReady), snap.State)
	require.NotNil(t, snap.Overview)
	assert.Equal(t, "push code", snap.Overview.WhatYouWillDo)

	got, err := svc.Get(context.Background(), snap.Id.String())
	require.NoError(t, err)
	assert.Equal(t, snap.Id, got.Id)
}

func TestSessionStart_FailureLeavesNoSession(t *testing.T) {
	mock := &stubLLM{
		responses: []string{domainCompletion, modeCompletion},
		errs:      []error{nil, nil, fmt.Errorf("overview call failed")},
	}
	svc := newSessionFixture(mock)

	_, err := svc.Start(context.Background(), &dto.StartSessionRequest{Question: "q"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindCompletionCall, apperr.KindOf(err))
}

func TestSessionBeginSteps(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)

	snap := startSession(t, mock, svc)
	assert.Equal(t, string(entity.StateStepsReady), snap.State)
	assert.Equal(t, 0, snap.CurrentStepIndex)
	require.Len(t, snap.Steps, 3)

	// Steps are generated once; asking again in this state is rejected.
	_, err := svc.BeginSteps(context.Background(), snap.Id.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationInput, apperr.KindOf(err))
}

func TestSessionSubmitAnswer_EmptyAnswerSkipsCompletion(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	callsBefore := len(mock.calls)
	for _, answer := range []string{"", "   ", "\n\t"} {
		_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: answer})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidationInput, apperr.KindOf(err))
	}
	assert.Equal(t, callsBefore, len(mock.calls), "blank answers must not reach the model")
}

func TestSessionSubmitAnswer_RecordsValidation(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	mock.responses = append(mock.responses, validationCompletion)
	snap, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "git init"})
	require.NoError(t, err)

	require.Contains(t, snap.Validations, 0)
	assert.True(t, snap.Validations[0].IsCorrect)
	assert.Equal(t, "git init", snap.Answers[0])
	assert.Equal(t, 0, snap.CurrentStepIndex)
}

func TestSessionSubmitAnswer_ResubmitOverwrites(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	mock.responses = append(mock.responses,
		`{"isCorrect":false,"feedback":"not quite","suggestion":"check the command","conceptNote":""}`,
		validationCompletion,
	)

	snap, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "git start"})
	require.NoError(t, err)
	assert.False(t, snap.Validations[0].IsCorrect)

	snap, err = svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "git init"})
	require.NoError(t, err)
	assert.True(t, snap.Validations[0].IsCorrect)
	assert.Equal(t, "git init", snap.Answers[0])
}

func TestSessionNext_RequiresValidation(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	_, err := svc.Next(context.Background(), snap.Id.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationInput, apperr.KindOf(err))
}

func TestSessionNext_MonotonicProgress(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	mock.responses = append(mock.responses, validationCompletion)
	_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
	require.NoError(t, err)

	snap, err = svc.Next(context.Background(), snap.Id.String())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CurrentStepIndex)
	assert.Equal(t, string(entity.StateStepsReady), snap.State)

	// Advancing again without validating step 1 is rejected; the index
	// never moves backwards or jumps.
	_, err = svc.Next(context.Background(), snap.Id.String())
	require.Error(t, err)

	got, err := svc.Get(context.Background(), snap.Id.String())
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStepIndex)
}

func TestSessionCompletion(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	for i := 0; i < 2; i++ {
		mock.responses = append(mock.responses, validationCompletion)
		_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
		require.NoError(t, err)

		var err2 error
		snap, err2 = svc.Next(context.Background(), snap.Id.String())
		require.NoError(t, err2)
	}

	mock.responses = append(mock.responses, validationCompletion, expansionCompletion)
	_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
	require.NoError(t, err)

	snap, err = svc.Next(context.Background(), snap.Id.String())
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateSessionComplete), snap.State)
	require.Len(t, snap.Suggestions, 1)
	assert.Equal(t, "branching", snap.Suggestions[0].Topic)
	assert.Equal(t, "Onward", snap.Encouragement)
}

func TestSessionCompletion_SuggestionFailureIsSwallowed(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	for i := 0; i < 2; i++ {
		mock.responses = append(mock.responses, validationCompletion)
		_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
		require.NoError(t, err)

		var err2 error
		snap, err2 = svc.Next(context.Background(), snap.Id.String())
		require.NoError(t, err2)
	}

	mock.responses = append(mock.responses, validationCompletion)
	_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
	require.NoError(t, err)

	// Expansion call returns garbage; completion still happens.
	mock.responses = append(mock.responses, "not json")
	snap, err = svc.Next(context.Background(), snap.Id.String())
	require.NoError(t, err)

	assert.Equal(t, string(entity.StateSessionComplete), snap.State)
	assert.Empty(t, snap.Suggestions)
}

// gatedExpansionLLM blocks the expansion completion on a channel so a test
// can hold one Next call in flight while issuing another.
type gatedExpansionLLM struct {
	inner          *stubLLM
	gate           chan struct{}
	expansionCalls int32
}

func (g *gatedExpansionLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return g.inner.Chat(ctx, history, opts...)
}

func (g *gatedExpansionLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	if strings.Contains(prompt, "Suggest 2-3") {
		atomic.AddInt32(&g.expansionCalls, 1)
		<-g.gate
	}
	return g.inner.Generate(ctx, prompt, opts...)
}

func TestSessionNext_RejectsOverlappingCalls(t *testing.T) {
	mock := &stubLLM{}
	gated := &gatedExpansionLLM{inner: mock, gate: make(chan struct{})}
	svc := newSessionFixtureWithProvider(gated)
	snap := startSession(t, mock, svc)

	for i := 0; i < 2; i++ {
		mock.responses = append(mock.responses, validationCompletion)
		_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
		require.NoError(t, err)
		_, err = svc.Next(context.Background(), snap.Id.String())
		require.NoError(t, err)
	}

	mock.responses = append(mock.responses, validationCompletion, expansionCompletion)
	_, err := svc.SubmitAnswer(context.Background(), snap.Id.String(), &dto.SubmitAnswerRequest{Answer: "done"})
	require.NoError(t, err)

	// First Next reaches the expansion call and parks on the gate.
	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Next(context.Background(), snap.Id.String())
		firstDone <- err
	}()
	waitFor(t, func() bool { return atomic.LoadInt32(&gated.expansionCalls) == 1 })

	// A second Next for the same session must be turned away, not fire a
	// second expansion completion.
	_, err = svc.Next(context.Background(), snap.Id.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationInput, apperr.KindOf(err))

	close(gated.gate)
	require.NoError(t, <-firstDone)

	assert.Equal(t, int32(1), atomic.LoadInt32(&gated.expansionCalls))
	got, err := svc.Get(context.Background(), snap.Id.String())
	require.NoError(t, err)
	assert.Equal(t, string(entity.StateSessionComplete), got.State)
}

func TestSessionRequestGuide_CachesPerStep(t *testing.T) {
	mock := &stubLLM{}
	svc := newSessionFixture(mock)
	snap := startSession(t, mock, svc)

	mock.responses = append(mock.responses, guideCompletion)
	snap, err := svc.RequestGuide(context.Background(), snap.Id.String())
	require.NoError(t, err)
	require.Contains(t, snap.Guides, 0)
	assert.Equal(t, "a", snap.Guides[0].CoreIdea)

	callsAfterFirst := len(mock.calls)
	_, err = svc.RequestGuide(context.Background(), snap.Id.String())
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, len(mock.calls), "second guide request must hit the cache")
}

func TestSessionDelete(t *testing.T) {
	mock := &stubLLM{responses: []string{domainCompletion, modeCompletion, overviewCompletion}}
	svc := newSessionFixture(mock)

	snap, err := svc.Start(context.Background(), &dto.StartSessionRequest{Question: "q"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), snap.Id.String()))

	_, err = svc.Get(context.Background(), snap.Id.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidationInput, apperr.KindOf(err))
}

func TestSessionGet_UnknownSession(t *testing.T) {
	svc := newSessionFixture(&stubLLM{})
	_, err := svc.Get(context.Background(), "not-a-session")
	require.Error(t, err)
}
