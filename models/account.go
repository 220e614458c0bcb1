package models

import "time"

const (
	PlanTrial = "trial"
	PlanPaid  = "paid"
)

// Account is the quota-bearing owner of study sessions.
type Account struct {
	Id                 string
	Email              string
	FullName           string
	Plan               string
	StripeId           string
	DailyGenerations   int
	LastGenerationDate *time.Time
	CreatedAt          time.Time
}

func (a *Account) IsPaid() bool {
	return a.Plan == PlanPaid
}

// GenerationsOn returns the daily counter as seen on the day containing now.
// A counter stamped on an earlier UTC day is stale and reads as zero.
func (a *Account) GenerationsOn(now time.Time) int {
	if a.LastGenerationDate == nil {
		return 0
	}
	if a.LastGenerationDate.UTC().Before(StartOfDay(now)) {
		return 0
	}
	return a.DailyGenerations
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
