package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageRecord is the append-only cost line written for every generated session.
type UsageRecord struct {
	SessionId        string
	AccountId        string
	GenerationTokens int
	SpeechCharacters int
	GenerationCost   decimal.Decimal
	SpeechCost       decimal.Decimal
	TotalCost        decimal.Decimal
	CreatedAt        time.Time
}

// UsageRates are the provider prices used for cost accounting.
type UsageRates struct {
	GenerationPer1KTokens decimal.Decimal
	SpeechPerCharacter    decimal.Decimal
}

type UsageTotals struct {
	GenerationTokens int             `json:"generation_tokens"`
	SpeechCharacters int             `json:"speech_characters"`
	GenerationCost   decimal.Decimal `json:"generation_cost"`
	SpeechCost       decimal.Decimal `json:"speech_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Sessions         int             `json:"sessions"`
}

type AccountUsage struct {
	AccountId string `json:"account_id"`
	Email     string `json:"email"`
	UsageTotals
}

// UsageReport summarises the usage table over a period.
type UsageReport struct {
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Summary     UsageTotals    `json:"summary"`
	Accounts    []AccountUsage `json:"accounts"`
}
