package speech

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyio.com/narrator/models"
)

// wordProvider emits one word mark per 100ms and audio sized to the chunk.
type wordProvider struct {
	calls    int
	failOn   int
	failMark bool
}

func (p *wordProvider) SynthesizeAudio(_ context.Context, text string) ([]byte, error) {
	p.calls++
	if p.failOn > 0 && p.calls == p.failOn {
		return nil, errors.New("throttled")
	}
	return []byte(strings.Repeat("x", len(text)/10+1)), nil
}

func (p *wordProvider) SynthesizeMarks(_ context.Context, text string) ([]models.SpeechMark, error) {
	if p.failMark {
		return nil, errors.New("marks unavailable")
	}
	var marks []models.SpeechMark
	start := -1
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == ' ' {
			if start >= 0 {
				marks = append(marks, models.SpeechMark{
					Type:   models.MarkTypeWord,
					TimeMs: int64(len(marks)) * 100,
					Start:  start,
					End:    i,
					Value:  text[start:i],
				})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return marks, nil
}

func TestChunkedSynthesizer(t *testing.T) {
	t.Parallel()

	t.Run("Should stitch three chunks into one timeline", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("This is a sentence. ", 300)
		provider := &wordProvider{}
		synth := NewChunkedSynthesizer(provider, 2500, DefaultChunkPause)

		result, err := synth.Synthesize(context.Background(), text)
		require.NoError(t, err)

		assert.Equal(t, 3, result.Chunks)
		assert.Equal(t, 3, provider.calls)
		assert.Equal(t, utf8.RuneCountInString(text), result.Characters)
		assert.Equal(t, len(text), result.Length)

		expectedAudio := 0
		for _, chunk := range SplitText(text, 2500) {
			expectedAudio += len(chunk)/10 + 1
		}
		assert.Len(t, result.Audio, expectedAudio)

		require.NotEmpty(t, result.Marks)
		for i := 1; i < len(result.Marks); i++ {
			assert.GreaterOrEqual(t, result.Marks[i].TimeMs, result.Marks[i-1].TimeMs)
			assert.Greater(t, result.Marks[i].Start, result.Marks[i-1].Start)
		}
		for _, mark := range result.Marks {
			assert.Equal(t, mark.Value, text[mark.Start:mark.End])
		}
		assert.Greater(t, result.Marks[len(result.Marks)-1].TimeMs, int64(0))
	})

	t.Run("Should offset the second chunk past the first chunk and pause", func(t *testing.T) {
		t.Parallel()

		text := "One two. Three four."
		synth := NewChunkedSynthesizer(&wordProvider{}, 12, DefaultChunkPause)

		result, err := synth.Synthesize(context.Background(), text)
		require.NoError(t, err)
		require.Equal(t, 2, result.Chunks)
		require.Len(t, result.Marks, 4)

		// first chunk "One two." ends at 100ms
		assert.Equal(t, int64(100+300), result.Marks[2].TimeMs)
		assert.Equal(t, "Three", result.Marks[2].Value)
		assert.Equal(t, strings.Index(text, "Three"), result.Marks[2].Start)
	})

	t.Run("Should fail the whole text when one chunk fails", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("This is a sentence. ", 300)
		synth := NewChunkedSynthesizer(&wordProvider{failOn: 2}, 2500, DefaultChunkPause)

		result, err := synth.Synthesize(context.Background(), text)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, models.ErrSynthesisFailed)
	})

	t.Run("Should fail when marks cannot be produced", func(t *testing.T) {
		t.Parallel()

		synth := NewChunkedSynthesizer(&wordProvider{failMark: true}, 2500, DefaultChunkPause)

		_, err := synth.Synthesize(context.Background(), "Hello there.")
		assert.ErrorIs(t, err, models.ErrSynthesisFailed)
	})
}

func TestOfflineSynthesizer(t *testing.T) {
	t.Parallel()

	result, err := NewOfflineSynthesizer().Synthesize(context.Background(), "Héllo.")
	require.NoError(t, err)

	assert.Equal(t, PlaceholderAudio, result.Audio)
	assert.Empty(t, result.Marks)
	assert.Equal(t, 6, result.Characters)
}

func TestNewFromSettings(t *testing.T) {
	t.Parallel()

	t.Run("Should use placeholder audio without credentials", func(t *testing.T) {
		t.Parallel()

		synth := NewFromSettings(&models.Settings{Credentials: map[string]string{}}, nil)
		_, ok := synth.(*OfflineSynthesizer)
		assert.True(t, ok)
	})

	t.Run("Should chunk through Polly when a session is given", func(t *testing.T) {
		t.Parallel()

		settings := &models.Settings{Credentials: map[string]string{
			"aws_access_key_id":     "AKIATEST",
			"aws_secret_access_key": "secret",
		}}
		sess := session.Must(session.NewSession(&aws.Config{Region: aws.String("us-east-1")}))
		synth := NewFromSettings(settings, sess)
		_, ok := synth.(*ChunkedSynthesizer)
		assert.True(t, ok)
	})
}
