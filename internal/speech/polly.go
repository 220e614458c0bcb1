package speech

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"studyio.com/narrator/models"
)

// PollyProvider synthesizes neural mp3 audio and word speech marks with Amazon Polly.
type PollyProvider struct {
	client    pollyiface.PollyAPI
	voice     string
	engine    string
	markTypes []string
}

func NewPollyProvider(sess client.ConfigProvider, voice string) *PollyProvider {
	return NewPollyProviderWithClient(polly.New(sess), voice)
}

func NewPollyProviderWithClient(api pollyiface.PollyAPI, voice string) *PollyProvider {
	return &PollyProvider{
		client:    api,
		voice:     voice,
		engine:    polly.EngineNeural,
		markTypes: []string{polly.SpeechMarkTypeWord},
	}
}

func (p *PollyProvider) synthesize(ctx context.Context, input *polly.SynthesizeSpeechInput) ([]byte, error) {
	output, err := p.client.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		return nil, err
	}
	if output.AudioStream == nil {
		return nil, fmt.Errorf("polly returned no stream")
	}
	defer output.AudioStream.Close()

	return io.ReadAll(output.AudioStream)
}

func (p *PollyProvider) SynthesizeAudio(ctx context.Context, text string) ([]byte, error) {
	return p.synthesize(ctx, &polly.SynthesizeSpeechInput{
		Engine:       aws.String(p.engine),
		OutputFormat: aws.String(polly.OutputFormatMp3),
		Text:         aws.String(text),
		VoiceId:      aws.String(p.voice),
	})
}

// SynthesizeMarks requests the JSON speech mark stream, one mark object per line.
func (p *PollyProvider) SynthesizeMarks(ctx context.Context, text string) ([]models.SpeechMark, error) {
	data, err := p.synthesize(ctx, &polly.SynthesizeSpeechInput{
		Engine:          aws.String(p.engine),
		OutputFormat:    aws.String(polly.OutputFormatJson),
		SpeechMarkTypes: aws.StringSlice(p.markTypes),
		Text:            aws.String(text),
		VoiceId:         aws.String(p.voice),
	})
	if err != nil {
		return nil, err
	}
	return ParseMarks(data)
}

// ParseMarks decodes Polly's newline-delimited speech mark output.
func ParseMarks(data []byte) ([]models.SpeechMark, error) {
	marks := make([]models.SpeechMark, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var mark models.SpeechMark
		if err := json.Unmarshal(line, &mark); err != nil {
			return nil, fmt.Errorf("decode speech mark %q: %w", line, err)
		}
		marks = append(marks, mark)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read speech marks: %w", err)
	}
	return marks, nil
}
