package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ErrNoJSON reports that a completion contained no extractable JSON object.
type ErrNoJSON struct {
	Raw string
}

func (e *ErrNoJSON) Error() string {
	return "no JSON object found in completion"
}

// Object recovers the first balanced, syntactically valid JSON object embedded
// in free-form completion text and decodes it into out. Prose and code-fence
// markers around the object are tolerated. The scan starts at each `{` in turn
// and takes the first span the decoder accepts, so stray braces in surrounding
// prose or a second JSON fragment later in the text do not over-capture.
func Object(raw string, out interface{}) error {
	candidate, err := firstObject(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return fmt.Errorf("decode extracted object: %w", err)
	}
	return nil
}

// FirstObject returns the raw text of the first balanced JSON object in raw.
func FirstObject(raw string) (string, error) {
	return firstObject(raw)
}

func firstObject(raw string) (string, error) {
	text := stripFences(raw)

	for start := strings.IndexByte(text, '{'); start >= 0; {
		span, ok := decodeFrom(text[start:])
		if ok {
			return span, nil
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start = start + 1 + next
	}

	return "", &ErrNoJSON{Raw: raw}
}

// decodeFrom attempts to read one JSON value beginning at the start of s and
// reports the exact span the decoder consumed.
func decodeFrom(s string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	var v map[string]interface{}
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	return s[:dec.InputOffset()], true
}

func stripFences(raw string) string {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return string(bytes.TrimSpace(b))
}
