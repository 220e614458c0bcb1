package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Settings holds provider credentials and billing rates keyed by their env names.
type Settings struct {
	Credentials map[string]string `json:"credentials"`
}

func (s *Settings) get(key, fallback string) string {
	if v := s.Credentials[key]; v != "" {
		return v
	}
	return fallback
}

func (s *Settings) GetOpenAIKey() string {
	return s.Credentials["openai_api_key"]
}

func (s *Settings) GetOpenAIModel() string {
	return s.get("openai_model", "gpt-4")
}

// HasAWSCredentials reports whether Polly and S3 can be reached.
func (s *Settings) HasAWSCredentials() bool {
	return s.Credentials["aws_access_key_id"] != "" && s.Credentials["aws_secret_access_key"] != ""
}

func (s *Settings) GetAWSRegion() string {
	return s.get("aws_region", "us-east-1")
}

func (s *Settings) GetS3Bucket() string {
	return s.Credentials["s3_bucket"]
}

func (s *Settings) GetPollyVoice() string {
	return s.get("polly_voice", "Joanna")
}

func (s *Settings) GetChunkSize() int {
	n, err := strconv.Atoi(s.Credentials["speech_chunk_size"])
	if err != nil || n <= 0 {
		return 2500
	}
	return n
}

func (s *Settings) GetUpgradePriceCents() int {
	n, err := strconv.Atoi(s.Credentials["upgrade_price_cents"])
	if err != nil || n <= 0 {
		return 999
	}
	return n
}

// GetUsageRates parses the configured prices, falling back to list prices.
func (s *Settings) GetUsageRates() UsageRates {
	gen, err := decimal.NewFromString(s.get("generation_rate_per_1k_tokens", "0.03"))
	if err != nil {
		gen = decimal.RequireFromString("0.03")
	}
	speech, err := decimal.NewFromString(s.get("speech_rate_per_character", "0.000016"))
	if err != nil {
		speech = decimal.RequireFromString("0.000016")
	}
	return UsageRates{GenerationPer1KTokens: gen, SpeechPerCharacter: speech}
}
