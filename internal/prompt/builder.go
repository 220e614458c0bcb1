// Package prompt composes language model instructions for a study session.
package prompt

import (
	"fmt"
	"strings"

	"studyio.com/narrator/models"
)

const (
	// charsPerToken approximates English text; extra headroom covers markup.
	charsPerToken = 4
	tokenHeadroom = 500
)

const tutorInstructions = `You are an expert academic tutor. Generate accurate, engaging, and pedagogically effective study content based on the user's topic and requirements.

Follow these rules:
- Match the academic level and depth requested
- Use clear structure (headings, bullet points, steps)
- Explain concepts logically and succinctly
- Prioritize conceptual understanding over rote facts
- Use examples or analogies when they improve clarity
- Maintain a neutral, supportive, and professional tone

When appropriate:
- Define key terms before using them
- Break down complex ideas step by step
- Provide summaries, study tips, or practice questions

Avoid unnecessary verbosity. Ensure factual accuracy and educational value at all times.`

const examInstructions = "EXAM MODE ENABLED: Focus on high-yield information, concise revision-focused summaries, bullet points for key facts, and clear definitions."

// Prompt is the complete model input for one generation.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
	// CharacterLimit is the hard budget enforced on the model output.
	CharacterLimit int
}

// Build resolves the topic template and character budget and renders both prompts.
func Build(req *models.GenerationRequest, cfg *models.PolicyConfig) *Prompt {
	limit := cfg.CharacterLimit(req.DurationMinutes)

	system := tutorInstructions
	if cfg.SystemPromptOverride != "" {
		system = cfg.SystemPromptOverride
	}

	var sb strings.Builder
	sb.WriteString(system)
	fmt.Fprintf(&sb, "\n\nTOPIC: %s\n", req.Topic)
	fmt.Fprintf(&sb, "CONTENT TYPE: Study Guide for a %d-minute audio presentation.\n", req.DurationMinutes)
	fmt.Fprintf(&sb, "STRICT LIMIT: Do not exceed %d characters.\n", limit)
	sb.WriteString("STRUCTURE: Use clear headings, logical flow, and engaging language suitable for listening.")
	if req.ExamMode {
		sb.WriteString("\n\n")
		sb.WriteString(examInstructions)
	}

	user := fmt.Sprintf("Topic Template Context: %s\n\nSpecific Study Requirements/Instructions: %s",
		renderTemplate(TopicTemplate(req.Topic, cfg.Topics), req.Topic), req.Prompt)

	return &Prompt{
		System:         sb.String(),
		User:           user,
		MaxTokens:      MaxTokens(limit),
		CharacterLimit: limit,
	}
}

// TopicTemplate finds the preset whose name matches topic case-insensitively.
func TopicTemplate(topic string, presets []models.TopicPreset) string {
	for _, preset := range presets {
		if strings.EqualFold(strings.TrimSpace(preset.Name), strings.TrimSpace(topic)) && preset.PromptTemplate != "" {
			return preset.PromptTemplate
		}
	}
	return models.DefaultTopicTemplate
}

func renderTemplate(template string, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}

// MaxTokens converts a character budget into a completion cap.
func MaxTokens(characterLimit int) int {
	return characterLimit/charsPerToken + tokenHeadroom
}
