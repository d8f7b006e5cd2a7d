package prompt

import (
	"strings"
)

// DetectDomain asks for a single bare token, not JSON. The caller validates
// the token against the known domain set.
func DetectDomain(question string) string {
	var b strings.Builder
	b.WriteString("Analyze this question and determine which domain it belongs to.\n\n")
	writeUserField(&b, "question", question)
	b.WriteString("\nDomain options: coding, writing, research, problem-solving\n\n")
	b.WriteString("Respond ONLY with the domain name, nothing else. Just one word.")
	return b.String()
}

func DetectMode(question string) string {
	var b strings.Builder
	b.WriteString("Analyze this user question and determine if they want to:\n")
	b.WriteString("1. LEARN - Learn a new concept/skill from scratch (e.g., \"Teach me JavaScript\", \"How does machine learning work?\")\n")
	b.WriteString("2. SOLVE - Solve a specific problem/task (e.g., \"How to push code to GitHub?\", \"Write a thesis\")\n\n")
	writeUserField(&b, "question", question)
	b.WriteString("\n")
	writeJSONOnly(&b)
	b.WriteString("{\n")
	b.WriteString("  \"mode\": \"LEARN\" or \"SOLVE\",\n")
	b.WriteString("  \"confidence\": 0.9,\n")
	b.WriteString("  \"explanation\": \"brief reason why\"\n")
	b.WriteString("}")
	return b.String()
}

func Overview(topic string, mode Mode) string {
	var b strings.Builder
	if mode == ModeLearn {
		b.WriteString("Create a simple, comprehensive overview that EVERYONE can understand about the topic below.\n\n")
		writeUserField(&b, "topic", topic)
		b.WriteString("\nWrite it for a complete beginner with NO prior knowledge. Avoid jargon. Use everyday analogies.\n\n")
		b.WriteString("Structure it as:\n")
		b.WriteString("1. What it is (1 paragraph - simple explanation using everyday words)\n")
		b.WriteString("2. Why it matters (1 paragraph - real-world relevance)\n")
		b.WriteString("3. What you'll learn (1 paragraph - brief outline of key concepts)\n\n")
		b.WriteString("Make it inspiring, not intimidating. The person should feel \"I can learn this!\"\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"whatItIs\": \"Paragraph explaining what it is\",\n")
		b.WriteString("  \"whyItMatters\": \"Paragraph explaining why it matters\",\n")
		b.WriteString("  \"whatYouWillLearn\": \"Paragraph outlining key concepts\",\n")
		b.WriteString("  \"encouragement\": \"One inspiring sentence\"\n")
		b.WriteString("}")
	} else {
		b.WriteString("Create a simple overview of how to solve the problem below.\n\n")
		writeUserField(&b, "problem", topic)
		b.WriteString("\nWrite for someone who is learning to do this for the first time. Keep it encouraging and non-technical.\n\n")
		b.WriteString("Structure it as:\n")
		b.WriteString("1. What you'll do (1 paragraph - simple explanation of the task)\n")
		b.WriteString("2. Why this approach works (1 paragraph - the logic/reasoning)\n")
		b.WriteString("3. What to expect (1 paragraph - rough steps/timeline)\n\n")
		b.WriteString("Make it feel achievable and empowering.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"whatYouWillDo\": \"Paragraph explaining the task\",\n")
		b.WriteString("  \"whyThisApproach\": \"Paragraph explaining the approach\",\n")
		b.WriteString("  \"whatToExpect\": \"Paragraph about the process\",\n")
		b.WriteString("  \"encouragement\": \"One empowering sentence\"\n")
		b.WriteString("}")
	}
	return b.String()
}

func Steps(question string, mode Mode) string {
	var b strings.Builder
	if mode == ModeSolve {
		b.WriteString("Break down this problem into 4-6 clear, actionable steps that a beginner can follow.\n\n")
		writeUserField(&b, "problem", question)
		b.WriteString("\nFor each step, provide:\n")
		b.WriteString("1. Step number and title\n")
		b.WriteString("2. What to do (clear instruction)\n")
		b.WriteString("3. Why we're doing this (conceptual explanation)\n")
		b.WriteString("4. Example of what output should look like\n\n")
		b.WriteString("Make it practical - user will actually DO these steps.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"steps\": [\n")
		b.WriteString("    {\n")
		b.WriteString("      \"id\": 1,\n")
		b.WriteString("      \"title\": \"Step title\",\n")
		b.WriteString("      \"instruction\": \"What to do\",\n")
		b.WriteString("      \"why\": \"Why this matters\",\n")
		b.WriteString("      \"example\": \"What success looks like\"\n")
		b.WriteString("    }\n")
		b.WriteString("  ]\n")
		b.WriteString("}")
	} else {
		b.WriteString("Create a structured learning path for someone learning the topic below from scratch.\n\n")
		writeUserField(&b, "topic", question)
		b.WriteString("\nBreak it into 4-5 key concepts they need to understand in order.\n\n")
		b.WriteString("IMPORTANT: Start with the EASIEST concept and progress to harder ones. Build confidence first!\n\n")
		b.WriteString("For each concept, provide:\n")
		b.WriteString("1. Concept name\n")
		b.WriteString("2. Simple explanation (2-3 sentences, beginner-friendly, use everyday analogies)\n")
		b.WriteString("3. Why it matters (real-world relevance)\n")
		b.WriteString("4. A recall question that is APPROPRIATE FOR THE DIFFICULTY LEVEL:\n")
		b.WriteString("   - Concept 1-2: VERY EASY (just checking they remember what you said, not deep thinking)\n")
		b.WriteString("   - Concept 3: MEDIUM (requires some thinking)\n")
		b.WriteString("   - Concept 4-5: HARDER (requires understanding and application)\n")
		b.WriteString("5. An easy micro-exercise to practice (appropriate difficulty)\n\n")
		b.WriteString("RECALL QUESTION EXAMPLES:\n")
		b.WriteString("- Easy: In your own words, what did we just learn about variables?\n")
		b.WriteString("- Medium: Can you think of why we need variables in programming?\n")
		b.WriteString("- Hard: How would you explain the difference between 'let' and 'const'?\n\n")
		b.WriteString("Write questions conversationally - NO QUOTES AROUND QUESTIONS, just natural language.\n\n")
		b.WriteString("Start with the EASIEST concept first to build confidence.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"concepts\": [\n")
		b.WriteString("    {\n")
		b.WriteString("      \"id\": 1,\n")
		b.WriteString("      \"name\": \"Concept name\",\n")
		b.WriteString("      \"explanation\": \"Simple explanation\",\n")
		b.WriteString("      \"why\": \"Why it matters\",\n")
		b.WriteString("      \"recallQuestion\": \"Natural question without quotes\",\n")
		b.WriteString("      \"difficulty\": \"EASY\",\n")
		b.WriteString("      \"exercise\": \"Easy practice task\"\n")
		b.WriteString("    }\n")
		b.WriteString("  ]\n")
		b.WriteString("}")
	}
	return b.String()
}

func ValidateStep(stepTitle, instruction, userAttempt string, mode Mode) string {
	var b strings.Builder
	if mode == ModeSolve {
		b.WriteString("A user is following steps to solve a problem. Validate their attempt.\n\n")
		writeUserField(&b, "step", stepTitle)
		writeUserField(&b, "instruction", instruction)
		writeUserField(&b, "user_attempt", userAttempt)
		b.WriteString("\nCheck if their attempt is correct/on the right track. Provide:\n")
		b.WriteString("1. isCorrect: true/false (are they on the right track?)\n")
		b.WriteString("2. feedback: Encouraging feedback (2-3 sentences)\n")
		b.WriteString("3. suggestion: What to do next (if wrong) or next step (if correct)\n")
		b.WriteString("4. conceptNote: A brief note about WHY this works (to build understanding)\n\n")
		b.WriteString("Be supportive! Even if wrong, encourage them.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"isCorrect\": true,\n")
		b.WriteString("  \"feedback\": \"Great! You did X correctly because...\",\n")
		b.WriteString("  \"suggestion\": \"Next, try...\",\n")
		b.WriteString("  \"conceptNote\": \"This works because...\"\n")
		b.WriteString("}")
	} else {
		b.WriteString("A user is learning and answered a recall question. Check their understanding.\n\n")
		writeUserField(&b, "question", instruction)
		writeUserField(&b, "user_answer", userAttempt)
		b.WriteString("\nEvaluate their answer. Provide:\n")
		b.WriteString("1. isCorrect: true/false (did they understand?)\n")
		b.WriteString("2. feedback: Encouraging feedback (2-3 sentences)\n")
		b.WriteString("3. clarification: What they understood well and what to clarify\n")
		b.WriteString("4. nextStep: What to practice next\n\n")
		b.WriteString("Be supportive! Learning is a process.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"isCorrect\": true,\n")
		b.WriteString("  \"feedback\": \"Good thinking! You understood...\",\n")
		b.WriteString("  \"clarification\": \"You got X right. For Y, think about...\",\n")
		b.WriteString("  \"nextStep\": \"Now try this exercise...\"\n")
		b.WriteString("}")
	}
	return b.String()
}

func ConceptualGuide(stepOrConcept, explanation string) string {
	var b strings.Builder
	b.WriteString("Explain the \"WHY\" and core concept behind this step/topic in a way that helps users think independently.\n\n")
	writeUserField(&b, "step_or_topic", stepOrConcept)
	writeUserField(&b, "current_explanation", explanation)
	b.WriteString("\nProvide:\n")
	b.WriteString("1. coreIdea: The fundamental principle (1 sentence)\n")
	b.WriteString("2. whyItMatters: Why this approach is used (2 sentences)\n")
	b.WriteString("3. alternativeApproach: \"You could also do it this way...\" (show flexibility)\n")
	b.WriteString("4. keyTakeaway: What to remember for future problems (1-2 sentences)\n")
	b.WriteString("5. thinkAboutThis: A thought-provoking question to deepen understanding\n\n")
	b.WriteString("Make it empowering - show that they can adapt and create their own approach once they understand the concept.\n\n")
	writeJSONOnly(&b)
	b.WriteString("{\n")
	b.WriteString("  \"coreIdea\": \"The fundamental principle\",\n")
	b.WriteString("  \"whyItMatters\": \"Why this matters\",\n")
	b.WriteString("  \"alternativeApproach\": \"Another way to think about it\",\n")
	b.WriteString("  \"keyTakeaway\": \"What to remember\",\n")
	b.WriteString("  \"thinkAboutThis\": \"A thought-provoking question\"\n")
	b.WriteString("}")
	return b.String()
}

func SuggestExpansion(topic string, mode Mode) string {
	var b strings.Builder
	if mode == ModeSolve {
		b.WriteString("The user just completed the task below.\n\n")
		writeUserField(&b, "completed_task", topic)
		b.WriteString("\nSuggest 2-3 related topics they might want to learn to deepen their understanding.\n\n")
		b.WriteString("For each suggestion, provide:\n")
		b.WriteString("1. Topic name\n")
		b.WriteString("2. Why it's useful (1 sentence)\n")
		b.WriteString("3. difficulty: \"EASY\" or \"INTERMEDIATE\"\n\n")
		b.WriteString("Start with EASY topics first to build confidence.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"suggestions\": [\n")
		b.WriteString("    {\n")
		b.WriteString("      \"topic\": \"Topic name\",\n")
		b.WriteString("      \"why\": \"Why learn this\",\n")
		b.WriteString("      \"difficulty\": \"EASY\"\n")
		b.WriteString("    }\n")
		b.WriteString("  ],\n")
		b.WriteString("  \"encouragement\": \"Brief encouraging message\"\n")
		b.WriteString("}")
	} else {
		b.WriteString("The user just learned the topic below.\n\n")
		writeUserField(&b, "learned_topic", topic)
		b.WriteString("\nSuggest 2-3 ways they can deepen their learning:\n")
		b.WriteString("1. A micro-project to apply what they learned\n")
		b.WriteString("2. A related advanced topic\n")
		b.WriteString("3. A real-world use case to practice with\n\n")
		b.WriteString("Provide:\n")
		b.WriteString("1. suggestion name\n")
		b.WriteString("2. Description (1 sentence)\n")
		b.WriteString("3. difficulty: \"EASY\", \"INTERMEDIATE\", or \"HARD\"\n")
		b.WriteString("4. timeEstimate: \"5 mins\", \"15 mins\", etc.\n\n")
		b.WriteString("Start with EASY options.\n\n")
		writeJSONOnly(&b)
		b.WriteString("{\n")
		b.WriteString("  \"suggestions\": [\n")
		b.WriteString("    {\n")
		b.WriteString("      \"name\": \"Suggestion name\",\n")
		b.WriteString("      \"description\": \"What they'll do\",\n")
		b.WriteString("      \"difficulty\": \"EASY\",\n")
		b.WriteString("      \"timeEstimate\": \"5 mins\"\n")
		b.WriteString("    }\n")
		b.WriteString("  ],\n")
		b.WriteString("  \"encouragement\": \"Brief encouraging message\"\n")
		b.WriteString("}")
	}
	return b.String()
}
