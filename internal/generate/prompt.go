package generate

import (
	"fmt"
	"log"
	"strings"

	"eduassist-backend/internal/classify"
)

// Message is a single chat message submitted to the generation backend.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are an expert teacher. Respond in Markdown only, with `##` section headings and bullet points where appropriate. Write in an engaging, easy-to-understand educational style."

// Prompt templates are a versionable constant set; the structure requested
// here is fixed and not user-configurable.
var promptTemplates = map[string]string{
	"v1": `A student asked: '{{QUERY}}'{{SUBJECT_CLAUSE}}.

Generate a comprehensive educational resource on this topic{{FORMAT_CLAUSE}}. The resource must include the following sections, each introduced by a "##" heading:

## Introduction
- A concise yet thorough explanation of the key concepts, background, and context.
- Explain any specialized terminology in simple language.

## Practice Problems
- At least 5 well-designed practice problems related to the topic.
- For each problem include the statement, a step-by-step solution, and explanatory notes.

## Tips & Tricks
- At least 3 actionable, practical strategies to master the topic.

## Additional Resources
- 2-3 free, high-quality online resources for further learning, with links where possible.

Use bullet points or numbered lists where appropriate.`,
}

var formatClauses = map[classify.FormatLabel]string{
	classify.FormatDocument:    " formatted as a printable study document",
	classify.FormatQuiz:        " with the practice problems section expanded into a full quiz, including an answer key",
	classify.FormatAudioLesson: " written as a narration script suitable for reading aloud as an audio lesson",
}

// BuildPrompt creates the chat messages for a resource generation request.
func BuildPrompt(input Input) []Message {
	version := strings.TrimSpace(input.PromptVersion)
	template, ok := promptTemplates[version]
	if !ok {
		log.Printf("unknown prompt version %q, defaulting to v1", version)
		template = promptTemplates["v1"]
	}

	subjectClause := ""
	if strings.TrimSpace(input.Subject) != "" {
		subjectClause = fmt.Sprintf(" in the subject of %s", strings.TrimSpace(input.Subject))
	}
	formatClause := formatClauses[input.Format]

	replacer := strings.NewReplacer(
		"{{QUERY}}", input.Query,
		"{{SUBJECT_CLAUSE}}", subjectClause,
		"{{FORMAT_CLAUSE}}", formatClause,
	)

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: replacer.Replace(template)},
	}
}
