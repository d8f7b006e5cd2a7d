package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"mode":"SOLVE"}`,
			want: `{"mode":"SOLVE"}`,
		},
		{
			name: "object wrapped in prose",
			raw:  "Sure! Here is the result:\n{\"mode\":\"LEARN\",\"confidence\":0.9}\nHope that helps.",
			want: `{"mode":"LEARN","confidence":0.9}`,
		},
		{
			name: "markdown fenced object",
			raw:  "```json\n{\"isCorrect\":true}\n```",
			want: `{"isCorrect":true}`,
		},
		{
			name: "stray brace in prose before payload",
			raw:  "Note: use {braces} carefully. {\"feedback\":\"ok\"}",
			want: `{"feedback":"ok"}`,
		},
		{
			name: "two fragments takes first valid only",
			raw:  `{"a":1} and also {"b":2}`,
			want: `{"a":1}`,
		},
		{
			name: "nested object stays balanced",
			raw:  `prefix {"guide":{"coreIdea":"x"},"extra":[1,2]} suffix`,
			want: `{"guide":{"coreIdea":"x"},"extra":[1,2]}`,
		},
		{
			name:    "no braces at all",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "braces but never valid",
			raw:     "{this is not json",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstObject(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var noJSON *ErrNoJSON
				require.ErrorAs(t, err, &noJSON)
				assert.Equal(t, tt.raw, noJSON.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectDecodes(t *testing.T) {
	var out struct {
		Mode       string  `json:"mode"`
		Confidence float64 `json:"confidence"`
	}
	err := Object("Model says:\n```json\n{\"mode\":\"SOLVE\",\"confidence\":0.8}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "SOLVE", out.Mode)
	assert.InDelta(t, 0.8, out.Confidence, 1e-9)
}

func TestObjectIdempotent(t *testing.T) {
	// Extracting from an already-extracted payload yields the same value.
	raw := "Answer below.\n{\"domain\":\"coding\",\"nested\":{\"k\":\"v\"}}\nDone."

	first, err := FirstObject(raw)
	require.NoError(t, err)

	second, err := FirstObject(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestObjectRejectsPartialDecode(t *testing.T) {
	var out map[string]interface{}
	err := Object("nothing structured here", &out)
	require.Error(t, err)
}
