package prompt

import (
	"fmt"
	"strings"
)

// Solution generates a full worked solution. When retrievedContext is
// non-empty it carries previously stored solutions to similar problems.
func Solution(question, domain, retrievedContext string) string {
	var b strings.Builder
	b.WriteString("You are an expert teacher helping a beginner learn.\n\n")
	writeUserField(&b, "problem", question)
	writeUserField(&b, "domain", domain)
	if retrievedContext != "" {
		b.WriteString("\nThese earlier solutions to similar problems may be useful reference:\n")
		writeUserField(&b, "similar_solutions", retrievedContext)
	}
	b.WriteString("\n")
	writeJSONOnly(&b)
	b.WriteString("{\n")
	b.WriteString("  \"code\": \"provide working code/solution here\",\n")
	b.WriteString("  \"explanation\": \"step-by-step explanation of what each part does\",\n")
	b.WriteString("  \"assumptions\": \"what you assume the user already knows\",\n")
	b.WriteString("  \"tradeOffs\": \"alternatives and trade-offs to consider\",\n")
	b.WriteString("  \"reflectionPrompts\": [\"question 1\", \"question 2\", \"question 3\"]\n")
	b.WriteString("}")
	return b.String()
}

// ReflectionFeedback is a free-text reply, not JSON.
func ReflectionFeedback(reflectionPrompt, userAnswer string) string {
	var b strings.Builder
	b.WriteString("You are a teacher providing constructive feedback to a student learning to code.\n\n")
	writeUserField(&b, "reflection_prompt", reflectionPrompt)
	writeUserField(&b, "student_answer", userAnswer)
	b.WriteString("\nProvide brief, encouraging feedback (2-3 sentences) that:\n")
	b.WriteString("1. Validates what they got right\n")
	b.WriteString("2. Suggests one improvement or clarification\n")
	b.WriteString("3. Encourages them to think deeper\n\n")
	b.WriteString("Be supportive and specific.")
	return b.String()
}

func LearningSummary(explanation string, reflectionAnswers []string) string {
	var b strings.Builder
	b.WriteString("You are an educational summarizer. Based on what the student learned, create a concise learning summary.\n\n")
	writeUserField(&b, "solution_explanation", explanation)

	var answers strings.Builder
	for i, ans := range reflectionAnswers {
		answers.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, ans))
	}
	writeUserField(&b, "reflection_answers", strings.TrimRight(answers.String(), "\n"))

	b.WriteString("\n")
	writeJSONOnly(&b)
	b.WriteString("{\n")
	b.WriteString("  \"keyLessons\": [\"lesson 1\", \"lesson 2\", \"lesson 3\"],\n")
	b.WriteString("  \"conceptsLearned\": [\"concept 1\", \"concept 2\"],\n")
	b.WriteString("  \"nextSteps\": \"What the student should practice next\",\n")
	b.WriteString("  \"progressScore\": 75\n")
	b.WriteString("}")
	return b.String()
}

func ChallengeFeedback(originalCode, userAttempt string) string {
	var b strings.Builder
	b.WriteString("You are a code reviewer comparing a student's independent attempt with the original solution.\n\n")
	writeUserField(&b, "original_solution", originalCode)
	writeUserField(&b, "student_attempt", userAttempt)
	b.WriteString("\n")
	writeJSONOnly(&b)
	b.WriteString("{\n")
	b.WriteString("  \"successScore\": 75,\n")
	b.WriteString("  \"strengths\": [\"what they did well\"],\n")
	b.WriteString("  \"improvements\": [\"what could be better\"],\n")
	b.WriteString("  \"comparison\": \"brief comparison to original\",\n")
	b.WriteString("  \"encouragement\": \"motivational message\"\n")
	b.WriteString("}")
	return b.String()
}
