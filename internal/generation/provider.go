package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/models"
)

// Completion is a model response and the tokens it was billed for.
type Completion struct {
	Text        string
	TotalTokens int
}

// Provider is a language model endpoint.
type Provider interface {
	Complete(ctx context.Context, system string, user string, maxTokens int) (*Completion, error)
	Name() string
}

// NewProvider picks the live OpenAI client when a usable key is configured and the
// offline provider otherwise.
func NewProvider(settings *models.Settings, logger *logrus.Entry) Provider {
	key := settings.GetOpenAIKey()
	switch {
	case key == "":
		logger.Warn("OPENAI_API_KEY not set, using offline generation")
		return NewOfflineProvider()
	case strings.HasPrefix(key, "ey"):
		logger.Error("OPENAI_API_KEY looks like a JWT rather than an API key, using offline generation")
		return NewOfflineProvider()
	}
	return NewOpenAIProvider(openai.NewClient(key), settings.GetOpenAIModel())
}

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(client *openai.Client, model string) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: model}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Complete(ctx context.Context, system string, user string, maxTokens int) (*Completion, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}
	return &Completion{
		Text:        resp.Choices[0].Message.Content,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// OfflineProvider returns deterministic text so the pipeline runs without credentials.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (p *OfflineProvider) Name() string {
	return "offline"
}

func (p *OfflineProvider) Complete(_ context.Context, _ string, user string, _ int) (*Completion, error) {
	return &Completion{
		Text:        "Offline study content. " + strings.TrimSpace(user),
		TotalTokens: 0,
	}, nil
}
