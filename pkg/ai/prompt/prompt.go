package prompt

import (
	"strings"
)

// Mode is the session-level classification, fixed for a session's duration.
type Mode string

const (
	ModeLearn Mode = "LEARN"
	ModeSolve Mode = "SOLVE"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeLearn:
		return ModeLearn, true
	case ModeSolve:
		return ModeSolve, true
	}
	return "", false
}

// Per-operation completion token budgets.
const (
	BudgetDetectDomain       = 10
	BudgetDetectMode         = 200
	BudgetOverview           = 800
	BudgetSteps              = 2000
	BudgetValidateStep       = 500
	BudgetConceptualGuide    = 600
	BudgetSuggestExpansion   = 600
	BudgetSolution           = 2000
	BudgetReflectionFeedback = 500
	BudgetLearningSummary    = 1000
	BudgetChallengeFeedback  = 1000
)

// writeUserField interpolates caller-supplied text inside a named delimiter
// tag so that braces or template-like sequences in user input cannot corrupt
// the prompt structure around it.
func writeUserField(b *strings.Builder, tag, value string) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">\n")
	b.WriteString(value)
	b.WriteString("\n</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

func writeJSONOnly(b *strings.Builder) {
	b.WriteString("Respond with ONLY valid JSON (no markdown, no preamble, no text outside the JSON).\n")
}
