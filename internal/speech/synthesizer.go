// Package speech turns study text into one continuous audio stream with word timings.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/models"
)

// DefaultChunkPause is added between chunks on top of the last mark time. It estimates
// the tail of the final word, so stitched timestamps can drift from measured audio.
const DefaultChunkPause = 300 * time.Millisecond

// PlaceholderAudio is returned when no speech credentials are configured.
var PlaceholderAudio = []byte("Mock audio data")

// Provider synthesizes a single request-sized piece of text.
type Provider interface {
	SynthesizeAudio(ctx context.Context, text string) ([]byte, error)
	// SynthesizeMarks returns marks with times and byte offsets local to text.
	SynthesizeMarks(ctx context.Context, text string) ([]models.SpeechMark, error)
}

// Result is the stitched output for a whole text.
type Result struct {
	Audio      []byte
	Marks      []models.SpeechMark
	Characters int
	Chunks     int
	// Length is the final character offset, in bytes of the input text.
	Length int
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Result, error)
}

// NewFromSettings returns a Polly-backed synthesizer when AWS credentials exist and the
// offline placeholder otherwise.
func NewFromSettings(settings *models.Settings, sess client.ConfigProvider) Synthesizer {
	if !settings.HasAWSCredentials() || sess == nil {
		logrus.WithField("component", "speech").Warn("AWS credentials not set, using placeholder audio")
		return NewOfflineSynthesizer()
	}
	return NewChunkedSynthesizer(NewPollyProvider(sess, settings.GetPollyVoice()), settings.GetChunkSize(), DefaultChunkPause)
}

type ChunkedSynthesizer struct {
	provider  Provider
	chunkSize int
	pause     time.Duration
	logger    *logrus.Entry
}

func NewChunkedSynthesizer(provider Provider, chunkSize int, pause time.Duration) *ChunkedSynthesizer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkedSynthesizer{
		provider:  provider,
		chunkSize: chunkSize,
		pause:     pause,
		logger:    logrus.WithField("component", "speech"),
	}
}

// Synthesize processes chunks sequentially because each chunk's marks are offset by
// the accumulated timing of the chunks before it. Any provider error discards the
// partial output.
func (s *ChunkedSynthesizer) Synthesize(ctx context.Context, text string) (*Result, error) {
	chunks := SplitText(text, s.chunkSize)

	var audio bytes.Buffer
	marks := make([]models.SpeechMark, 0)
	var timeOffset int64
	charOffset := 0
	characters := 0
	pauseMs := s.pause.Milliseconds()

	for i, chunk := range chunks {
		data, err := s.provider.SynthesizeAudio(ctx, chunk)
		if err != nil {
			s.logger.WithError(err).WithField("chunk", i).Error("error synthesizing audio")
			return nil, fmt.Errorf("%w: audio for chunk %d of %d: %w", models.ErrSynthesisFailed, i+1, len(chunks), err)
		}

		chunkMarks, err := s.provider.SynthesizeMarks(ctx, chunk)
		if err != nil {
			s.logger.WithError(err).WithField("chunk", i).Error("error synthesizing speech marks")
			return nil, fmt.Errorf("%w: marks for chunk %d of %d: %w", models.ErrSynthesisFailed, i+1, len(chunks), err)
		}

		audio.Write(data)

		sort.SliceStable(chunkMarks, func(a, b int) bool {
			if chunkMarks[a].TimeMs != chunkMarks[b].TimeMs {
				return chunkMarks[a].TimeMs < chunkMarks[b].TimeMs
			}
			return chunkMarks[a].Start < chunkMarks[b].Start
		})

		var lastTime int64
		for _, mark := range chunkMarks {
			if mark.TimeMs > lastTime {
				lastTime = mark.TimeMs
			}
			mark.TimeMs += timeOffset
			mark.Start = clamp(mark.Start, len(chunk)) + charOffset
			mark.End = clamp(mark.End, len(chunk)) + charOffset
			marks = append(marks, mark)
		}

		timeOffset += lastTime + pauseMs
		charOffset += len(chunk)
		characters += utf8.RuneCountInString(chunk)
	}

	s.logger.WithFields(logrus.Fields{
		"chunks":     len(chunks),
		"characters": characters,
		"marks":      len(marks),
	}).Debug("synthesized text")

	return &Result{
		Audio:      audio.Bytes(),
		Marks:      marks,
		Characters: characters,
		Chunks:     len(chunks),
		Length:     charOffset,
	}, nil
}

func clamp(v int, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// OfflineSynthesizer keeps the pipeline usable without speech credentials.
type OfflineSynthesizer struct{}

func NewOfflineSynthesizer() *OfflineSynthesizer {
	return &OfflineSynthesizer{}
}

func (s *OfflineSynthesizer) Synthesize(_ context.Context, text string) (*Result, error) {
	audio := make([]byte, len(PlaceholderAudio))
	copy(audio, PlaceholderAudio)
	return &Result{
		Audio:      audio,
		Marks:      []models.SpeechMark{},
		Characters: utf8.RuneCountInString(text),
		Chunks:     0,
		Length:     len(text),
	}, nil
}
