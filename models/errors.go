package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrPlanRestricted means the account plan does not include the requested duration or feature.
	ErrPlanRestricted = errors.New("plan restricted")
	// ErrQuotaExceeded means a daily generation or listen limit has been reached.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrRateLimited means the caller is sending requests too quickly.
	ErrRateLimited = errors.New("rate limited")
	// ErrGenerationFailed wraps language model failures.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrSynthesisFailed wraps speech provider failures.
	ErrSynthesisFailed = errors.New("synthesis failed")
	// ErrNotFound means the session does not exist or belongs to someone else.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest means the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")
)

const (
	QuotaDailyGenerations = "daily_generations"
	QuotaListens          = "listens"
)

// QuotaError describes which limit was hit. It matches ErrQuotaExceeded.
type QuotaError struct {
	Reason  string
	Limit   int
	Used    int
	ResetAt time.Time
}

func (e *QuotaError) Error() string {
	if e.ResetAt.IsZero() {
		return fmt.Sprintf("%s: %s limit %d reached", ErrQuotaExceeded, e.Reason, e.Limit)
	}
	return fmt.Sprintf("%s: %s limit %d reached, resets at %s", ErrQuotaExceeded, e.Reason, e.Limit, e.ResetAt.UTC().Format(time.RFC3339))
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// RateLimitError names the throttling rule that rejected a request. It matches
// ErrRateLimited and never ErrQuotaExceeded.
type RateLimitError struct {
	Rule    string
	Limit   int
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: %s allows %d requests per window, retry after %s", ErrRateLimited, e.Rule, e.Limit, e.ResetAt.UTC().Format(time.RFC3339))
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// ErrorKind maps an error onto the name clients see in replies.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPlanRestricted):
		return "PlanRestricted"
	case errors.Is(err, ErrQuotaExceeded):
		return "QuotaExceeded"
	case errors.Is(err, ErrRateLimited):
		return "RateLimited"
	case errors.Is(err, ErrGenerationFailed):
		return "GenerationFailed"
	case errors.Is(err, ErrSynthesisFailed):
		return "SynthesisFailed"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrInvalidRequest):
		return "InvalidRequest"
	}
	return ""
}
