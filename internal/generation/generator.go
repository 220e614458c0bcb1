// Package generation produces study guide text from a language model and keeps it
// inside the session's character budget.
package generation

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"studyio.com/narrator/internal/prompt"
	"studyio.com/narrator/models"
)

// Content is finalized study text.
type Content struct {
	Text      string
	Tokens    int
	Truncated bool
}

type Generator struct {
	provider Provider
	logger   *logrus.Entry
}

func NewGenerator(provider Provider) *Generator {
	return &Generator{
		provider: provider,
		logger:   logrus.WithField("component", "generator"),
	}
}

func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// Generate builds the prompt, calls the provider once and enforces the budget.
// Provider failures are reported as ErrGenerationFailed.
func (g *Generator) Generate(ctx context.Context, req *models.GenerationRequest, cfg *models.PolicyConfig) (*Content, error) {
	p := prompt.Build(req, cfg)

	completion, err := g.provider.Complete(ctx, p.System, p.User, p.MaxTokens)
	if err != nil {
		g.logger.WithError(err).WithField("provider", g.provider.Name()).Error("error generating content")
		return nil, fmt.Errorf("%w: %w", models.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(completion.Text) == "" {
		return nil, fmt.Errorf("%w: provider returned empty content", models.ErrGenerationFailed)
	}

	text, truncated := EnforceLimit(completion.Text, p.CharacterLimit)
	if truncated {
		g.logger.WithFields(logrus.Fields{
			"limit":    p.CharacterLimit,
			"returned": len([]rune(completion.Text)),
		}).Info("trimmed generated content to character limit")
	}

	return &Content{
		Text:      text,
		Tokens:    completion.TotalTokens,
		Truncated: truncated,
	}, nil
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// EnforceLimit cuts text to at most limit runes, ending at the last sentence
// terminator inside the limit. Without one, the text is hard cut and closed with a period.
func EnforceLimit(text string, limit int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	if limit <= 0 {
		return "", true
	}

	cut := runes[:limit]
	for i := len(cut) - 1; i >= 0; i-- {
		if isTerminator(cut[i]) {
			return string(cut[:i+1]), true
		}
	}

	trimmed := strings.TrimRightFunc(string(cut[:limit-1]), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return trimmed + ".", true
}
