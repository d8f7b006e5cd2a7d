package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/pkg/apperr"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		apiKey       string
		wantErr      bool
	}{
		{name: "anthropic with key", providerType: "anthropic", apiKey: "sk-test"},
		{name: "anthropic without key", providerType: "anthropic", wantErr: true},
		{name: "ollama defaults base url", providerType: "ollama"},
		{name: "unknown provider", providerType: "openai", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewLLMProvider(tt.providerType, "test-model", tt.apiKey, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindConfiguration, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}
