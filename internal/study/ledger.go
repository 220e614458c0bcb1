package study

import (
	"time"

	"github.com/shopspring/decimal"
	"studyio.com/narrator/models"
)

const costPlaces = 6

var thousand = decimal.NewFromInt(1000)

// Ledger prices a generated session. The record it builds is written in the same
// transaction as the session itself.
type Ledger struct {
	rates models.UsageRates
}

func NewLedger(rates models.UsageRates) *Ledger {
	return &Ledger{rates: rates}
}

func (l *Ledger) GenerationCost(tokens int) decimal.Decimal {
	return decimal.NewFromInt(int64(tokens)).Div(thousand).Mul(l.rates.GenerationPer1KTokens).Round(costPlaces)
}

func (l *Ledger) SpeechCost(characters int) decimal.Decimal {
	return decimal.NewFromInt(int64(characters)).Mul(l.rates.SpeechPerCharacter).Round(costPlaces)
}

func (l *Ledger) Record(session *models.StudySession, tokens int, characters int, now time.Time) *models.UsageRecord {
	generationCost := l.GenerationCost(tokens)
	speechCost := l.SpeechCost(characters)
	return &models.UsageRecord{
		SessionId:        session.Id,
		AccountId:        session.AccountId,
		GenerationTokens: tokens,
		SpeechCharacters: characters,
		GenerationCost:   generationCost,
		SpeechCost:       speechCost,
		TotalCost:        generationCost.Add(speechCost),
		CreatedAt:        now,
	}
}
