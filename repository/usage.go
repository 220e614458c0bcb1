package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"studyio.com/narrator/models"
)

type UsageRepository interface {
	UsageTotals(ctx context.Context, start time.Time, end time.Time) (*models.UsageTotals, error)
	UsageByAccount(ctx context.Context, start time.Time, end time.Time) ([]models.AccountUsage, error)
	SaveReport(ctx context.Context, report *models.UsageReport) error
}

type UsageService struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) UsageRepository {
	return &UsageService{db: db}
}

func (us *UsageService) UsageTotals(ctx context.Context, start time.Time, end time.Time) (*models.UsageTotals, error) {
	var totals models.UsageTotals
	row := us.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(generation_tokens), 0), COALESCE(SUM(speech_characters), 0), COALESCE(SUM(generation_cost), 0), COALESCE(SUM(speech_cost), 0), COALESCE(SUM(total_cost), 0) FROM usage_records WHERE created_at BETWEEN ? AND ?", start, end)
	err := row.Scan(&totals.Sessions, &totals.GenerationTokens, &totals.SpeechCharacters, &totals.GenerationCost, &totals.SpeechCost, &totals.TotalCost)
	if err != nil {
		return nil, errors.Wrap(err, "error summing usage")
	}
	return &totals, nil
}

func (us *UsageService) UsageByAccount(ctx context.Context, start time.Time, end time.Time) ([]models.AccountUsage, error) {
	rows, err := us.db.QueryContext(ctx, "SELECT usage_records.account_id, accounts.email, COUNT(*), SUM(usage_records.generation_tokens), SUM(usage_records.speech_characters), SUM(usage_records.generation_cost), SUM(usage_records.speech_cost), SUM(usage_records.total_cost) FROM usage_records INNER JOIN accounts ON accounts.id = usage_records.account_id WHERE usage_records.created_at BETWEEN ? AND ? GROUP BY usage_records.account_id, accounts.email ORDER BY SUM(usage_records.total_cost) DESC", start, end)
	if err != nil {
		return nil, errors.Wrap(err, "error grouping usage by account")
	}
	defer rows.Close()

	var usage []models.AccountUsage
	for rows.Next() {
		var u models.AccountUsage
		if err := rows.Scan(&u.AccountId, &u.Email, &u.Sessions, &u.GenerationTokens, &u.SpeechCharacters, &u.GenerationCost, &u.SpeechCost, &u.TotalCost); err != nil {
			return nil, errors.Wrap(err, "error scanning account usage")
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (us *UsageService) SaveReport(ctx context.Context, report *models.UsageReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "error encoding usage report")
	}
	_, err = us.db.ExecContext(ctx, "INSERT INTO usage_reports (`period_start`, `period_end`, `total_cost`, `report`, `created_at`) VALUES (?, ?, ?, ?, ?)",
		report.PeriodStart, report.PeriodEnd, report.Summary.TotalCost, body, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "error saving usage report")
	}
	return nil
}
