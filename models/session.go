package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MarkTypeWord     = "word"
	MarkTypeSentence = "sentence"

	AudioContentType = "audio/mpeg"
)

// GenerationRequest is what a client submits to create a study session.
type GenerationRequest struct {
	Topic           string `json:"topic"`
	Prompt          string `json:"prompt"`
	DurationMinutes int    `json:"duration_minutes"`
	ExamMode        bool   `json:"exam_mode"`
}

// Validate rejects malformed requests. Durations outside the advertised set are
// left to the policy, which gates unlisted durations to paid plans.
func (r *GenerationRequest) Validate(cfg *PolicyConfig) error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Prompt) == "" {
		return fmt.Errorf("%w: prompt is required", ErrInvalidRequest)
	}
	if r.DurationMinutes <= 0 || r.DurationMinutes > cfg.MaxDurationMinutes() {
		return fmt.Errorf("%w: duration %d is out of range", ErrInvalidRequest, r.DurationMinutes)
	}
	return nil
}

// Fingerprint hashes the (account, topic, duration, mode, prompt) tuple.
func (r *GenerationRequest) Fingerprint(accountId string) string {
	h := sha256.New()
	for _, part := range []string{
		accountId,
		r.Topic,
		strconv.Itoa(r.DurationMinutes),
		strconv.FormatBool(r.ExamMode),
		r.Prompt,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SpeechMark aligns a fragment of the text to a point in the audio.
// TimeMs and Start are offsets into the whole session, not a single chunk.
type SpeechMark struct {
	Type   string `json:"type"`
	TimeMs int64  `json:"time"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Value  string `json:"value"`
}

// StudySession is a generated and synthesized study guide.
type StudySession struct {
	Id              string       `json:"id"`
	AccountId       string       `json:"account_id"`
	Topic           string       `json:"topic"`
	Prompt          string       `json:"prompt"`
	Content         string       `json:"content"`
	Audio           []byte       `json:"-"`
	Marks           []SpeechMark `json:"marks"`
	DurationMinutes int          `json:"duration_minutes"`
	ExamMode        bool         `json:"exam_mode"`
	Fingerprint     string       `json:"fingerprint"`
	ListenCount     int          `json:"listen_count"`
	AudioURL        string       `json:"audio_url,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Playback is the payload handed to the streaming surface.
type Playback struct {
	SessionId   string
	ContentType string
	Audio       []byte
	Marks       []SpeechMark
	ListenCount int
}
