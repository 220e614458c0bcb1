package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyio.com/narrator/models"
)

type stubProvider struct {
	text      string
	tokens    int
	err       error
	calls     int
	system    string
	user      string
	maxTokens int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, system string, user string, maxTokens int) (*Completion, error) {
	s.calls++
	s.system, s.user, s.maxTokens = system, user, maxTokens
	if s.err != nil {
		return nil, s.err
	}
	return &Completion{Text: s.text, TotalTokens: s.tokens}, nil
}

func TestEnforceLimit(t *testing.T) {
	t.Parallel()

	t.Run("Should leave text within the budget untouched", func(t *testing.T) {
		t.Parallel()

		out, truncated := EnforceLimit("Short text. No cut", 100)
		assert.False(t, truncated)
		assert.Equal(t, "Short text. No cut", out)
	})

	t.Run("Should cut at the last sentence boundary inside the budget", func(t *testing.T) {
		t.Parallel()

		text := "First sentence. Second one! Third sentence runs long"
		out, truncated := EnforceLimit(text, 35)
		assert.True(t, truncated)
		assert.Equal(t, "First sentence. Second one!", out)
	})

	t.Run("Should close a hard cut with a period", func(t *testing.T) {
		t.Parallel()

		out, truncated := EnforceLimit("no terminators anywhere in this text", 10)
		assert.True(t, truncated)
		assert.True(t, strings.HasSuffix(out, "."))
		assert.LessOrEqual(t, utf8.RuneCountInString(out), 10)
	})

	t.Run("Should respect the budget for any input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			strings.Repeat("Lorem ipsum dolor sit amet. ", 400),
			strings.Repeat("é", 5000),
			strings.Repeat("Why? ", 1000),
			"A.",
		}
		for _, limit := range []int{1, 2, 50, 2500, 4500} {
			for _, in := range inputs {
				out, truncated := EnforceLimit(in, limit)
				assert.LessOrEqual(t, utf8.RuneCountInString(out), limit)
				if truncated {
					last, _ := utf8.DecodeLastRuneInString(out)
					assert.True(t, isTerminator(last), "truncated output %q must end with a terminator", out)
				}
			}
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	logrus.SetLevel(logrus.PanicLevel)

	cfg := models.DefaultPolicyConfig()
	req := &models.GenerationRequest{Topic: "Cells", Prompt: "mitosis phases", DurationMinutes: 3}

	t.Run("Should return text and tokens from the provider", func(t *testing.T) {
		t.Parallel()

		provider := &stubProvider{text: "Cells divide. Mitosis has phases.", tokens: 321}
		content, err := NewGenerator(provider).Generate(context.Background(), req, cfg)
		require.NoError(t, err)

		assert.Equal(t, "Cells divide. Mitosis has phases.", content.Text)
		assert.Equal(t, 321, content.Tokens)
		assert.False(t, content.Truncated)
		assert.Equal(t, 2500/4+500, provider.maxTokens)
		assert.Contains(t, provider.user, "mitosis phases")
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("Should truncate oversized output", func(t *testing.T) {
		t.Parallel()

		provider := &stubProvider{text: strings.Repeat("Mitosis is a phase of the cell cycle. ", 200), tokens: 900}
		content, err := NewGenerator(provider).Generate(context.Background(), req, cfg)
		require.NoError(t, err)

		assert.True(t, content.Truncated)
		assert.LessOrEqual(t, utf8.RuneCountInString(content.Text), 2500)
		assert.True(t, strings.HasSuffix(content.Text, "."))
	})

	t.Run("Should report provider failures as generation failures without retrying", func(t *testing.T) {
		t.Parallel()

		provider := &stubProvider{err: errors.New("upstream 500")}
		_, err := NewGenerator(provider).Generate(context.Background(), req, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrGenerationFailed))
		assert.Contains(t, err.Error(), "upstream 500")
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("Should reject empty completions", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(&stubProvider{text: "   "}).Generate(context.Background(), req, cfg)
		assert.True(t, errors.Is(err, models.ErrGenerationFailed))
	})

	t.Run("Should work offline", func(t *testing.T) {
		t.Parallel()

		content, err := NewGenerator(NewOfflineProvider()).Generate(context.Background(), req, cfg)
		require.NoError(t, err)
		assert.Contains(t, content.Text, "Offline study content.")
		assert.Equal(t, 0, content.Tokens)
	})
}

func TestNewProvider(t *testing.T) {
	t.Parallel()
	logger := logrus.NewEntry(logrus.New())

	t.Run("Should select offline generation without a key", func(t *testing.T) {
		t.Parallel()

		p := NewProvider(&models.Settings{Credentials: map[string]string{}}, logger)
		assert.Equal(t, "offline", p.Name())
	})

	t.Run("Should refuse keys that look like JWTs", func(t *testing.T) {
		t.Parallel()

		p := NewProvider(&models.Settings{Credentials: map[string]string{"openai_api_key": "eyJhbGciOi"}}, logger)
		assert.Equal(t, "offline", p.Name())
	})

	t.Run("Should select the live client for real keys", func(t *testing.T) {
		t.Parallel()

		p := NewProvider(&models.Settings{Credentials: map[string]string{"openai_api_key": "sk-test"}}, logger)
		assert.Equal(t, "openai", p.Name())
	})
}
