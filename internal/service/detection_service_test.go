package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/apperr"
)

func TestDetectDomain(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       string
	}{
		{name: "clean token", completion: "coding", want: "coding"},
		{name: "uppercase with whitespace", completion: "  Writing\n", want: "writing"},
		{name: "research", completion: "research", want: "research"},
		{name: "unknown token falls back", completion: "philosophy", want: "problem-solving"},
		{name: "chatty reply falls back", completion: "The domain is coding.", want: "problem-solving"},
		{name: "empty reply falls back", completion: "", want: "problem-solving"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &stubLLM{responses: []string{tt.completion}}
			svc := NewDetectionService(mock, nopLogger{})

			res, err := svc.DetectDomain(context.Background(), &dto.DetectDomainRequest{Question: "How do I merge two branches?"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Domain)
		})
	}
}

func TestDetectDomain_CompletionFailure(t *testing.T) {
	mock := &stubLLM{errs: []error{fmt.Errorf("upstream timeout")}}
	svc := NewDetectionService(mock, nopLogger{})

	_, err := svc.DetectDomain(context.Background(), &dto.DetectDomainRequest{Question: "anything"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindCompletionCall, apperr.KindOf(err))
}

func TestDetectMode(t *testing.T) {
	mock := &stubLLM{responses: []string{
		"Here you go:\n{\"mode\": \"LEARN\", \"confidence\": 0.92, \"explanation\": \"wants to learn from scratch\"}",
	}}
	svc := NewDetectionService(mock, nopLogger{})

	res, err := svc.DetectMode(context.Background(), &dto.DetectModeRequest{Question: "Teach me JavaScript"})
	require.NoError(t, err)
	assert.Equal(t, "LEARN", res.Mode)
	assert.InDelta(t, 0.92, res.Confidence, 1e-9)
	assert.Equal(t, "wants to learn from scratch", res.Explanation)
}

func TestDetectMode_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		completion string
	}{
		{name: "no json at all", completion: "I think they want to learn."},
		{name: "unknown mode value", completion: `{"mode":"BROWSE","confidence":0.5,"explanation":"?"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &stubLLM{responses: []string{tt.completion}}
			svc := NewDetectionService(mock, nopLogger{})

			_, err := svc.DetectMode(context.Background(), &dto.DetectModeRequest{Question: "x"})
			require.Error(t, err)
			assert.Equal(t, apperr.KindMalformedCompletion, apperr.KindOf(err))

			appErr, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.completion, appErr.Raw)
		})
	}
}
