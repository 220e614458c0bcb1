package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"studyio.com/narrator/models"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("Should embed topic, budget and structure guidance", func(t *testing.T) {
		t.Parallel()

		cfg := models.DefaultPolicyConfig()
		p := Build(&models.GenerationRequest{Topic: "Photosynthesis", Prompt: "focus on light reactions", DurationMinutes: 5}, cfg)

		assert.Contains(t, p.System, "TOPIC: Photosynthesis")
		assert.Contains(t, p.System, "5-minute audio presentation")
		assert.Contains(t, p.System, "Do not exceed 4500 characters")
		assert.NotContains(t, p.System, "EXAM MODE")
		assert.Contains(t, p.User, "Generate a comprehensive study guide about Photosynthesis.")
		assert.Contains(t, p.User, "focus on light reactions")
		assert.Equal(t, 4500, p.CharacterLimit)
		assert.Equal(t, 4500/4+500, p.MaxTokens)
	})

	t.Run("Should add exam guidance in exam mode", func(t *testing.T) {
		t.Parallel()

		p := Build(&models.GenerationRequest{Topic: "Cells", Prompt: "p", DurationMinutes: 3, ExamMode: true}, models.DefaultPolicyConfig())
		assert.Contains(t, p.System, "EXAM MODE ENABLED")
		assert.Contains(t, p.System, "bullet points")
	})

	t.Run("Should use the matching topic preset regardless of case", func(t *testing.T) {
		t.Parallel()

		cfg := models.DefaultPolicyConfig()
		cfg.Topics = []models.TopicPreset{
			{Name: "Biology", PromptTemplate: "Teach {topic} like a lab walkthrough."},
		}

		p := Build(&models.GenerationRequest{Topic: "biology", Prompt: "p", DurationMinutes: 3}, cfg)
		assert.Contains(t, p.User, "Teach biology like a lab walkthrough.")
	})

	t.Run("Should fall back to the default budget for unknown durations", func(t *testing.T) {
		t.Parallel()

		p := Build(&models.GenerationRequest{Topic: "x", Prompt: "p", DurationMinutes: 7}, models.DefaultPolicyConfig())
		assert.Equal(t, models.DefaultCharacterLimit, p.CharacterLimit)
	})

	t.Run("Should honour a system prompt override", func(t *testing.T) {
		t.Parallel()

		cfg := models.DefaultPolicyConfig()
		cfg.SystemPromptOverride = "You are a pirate tutor."

		p := Build(&models.GenerationRequest{Topic: "Tides", Prompt: "p", DurationMinutes: 3}, cfg)
		assert.Contains(t, p.System, "You are a pirate tutor.")
		assert.NotContains(t, p.System, "expert academic tutor")
		assert.Contains(t, p.System, "STRICT LIMIT")
	})
}
