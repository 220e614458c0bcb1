// Package policy decides whether an account may generate or play a study session.
// Evaluation is pure: counters are committed by the caller once work has succeeded.
package policy

import (
	"fmt"
	"strconv"
	"time"

	"studyio.com/narrator/models"
)

// Decision describes an allowed generation.
type Decision struct {
	// UsedToday is the daily counter after resetting a stale day.
	UsedToday int
	Limit     int
	// NextCount is the counter value the caller commits on success.
	NextCount int
}

func contains(plans []string, plan string) bool {
	for _, p := range plans {
		if p == plan {
			return true
		}
	}
	return false
}

// EvaluateGeneration runs the duration, feature and daily-limit checks in that order.
func EvaluateGeneration(account *models.Account, req *models.GenerationRequest, cfg *models.PolicyConfig, now time.Time) (*Decision, error) {
	if !contains(cfg.PlansForDuration(req.DurationMinutes), account.Plan) {
		return nil, fmt.Errorf("%w: %d-minute sessions are not available on the %s plan", models.ErrPlanRestricted, req.DurationMinutes, account.Plan)
	}

	if req.ExamMode && !contains(cfg.PlansForFeature(models.FeatureExamMode), account.Plan) {
		return nil, fmt.Errorf("%w: exam mode is not available on the %s plan", models.ErrPlanRestricted, account.Plan)
	}

	used := account.GenerationsOn(now)
	if used >= cfg.DailyGenerationLimit {
		return nil, &models.QuotaError{
			Reason:  models.QuotaDailyGenerations,
			Limit:   cfg.DailyGenerationLimit,
			Used:    used,
			ResetAt: models.StartOfDay(now).AddDate(0, 0, 1),
		}
	}

	return &Decision{
		UsedToday: used,
		Limit:     cfg.DailyGenerationLimit,
		NextCount: used + 1,
	}, nil
}

// ListenLimit returns the per-session play cap for the plan; zero means unlimited.
func ListenLimit(account *models.Account, cfg *models.PolicyConfig) int {
	if account.IsPaid() {
		return 0
	}
	return cfg.TrialListenLimit
}

// EvaluateListen checks whether one more playback of a session is allowed.
func EvaluateListen(account *models.Account, listenCount int, cfg *models.PolicyConfig) error {
	limit := ListenLimit(account, cfg)
	if limit > 0 && listenCount >= limit {
		return &models.QuotaError{
			Reason: models.QuotaListens,
			Limit:  limit,
			Used:   listenCount,
		}
	}
	return nil
}

// DescribeLimit renders a short human message for a quota rejection.
func DescribeLimit(err *models.QuotaError) string {
	switch err.Reason {
	case models.QuotaDailyGenerations:
		return "Daily limit of " + strconv.Itoa(err.Limit) + " study sessions reached. Try again tomorrow or upgrade your plan."
	case models.QuotaListens:
		return "Trial accounts can play a session " + strconv.Itoa(err.Limit) + " times. Upgrade to listen without limits."
	}
	return "Too many requests. Please try again later."
}
