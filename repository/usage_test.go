package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyio.com/narrator/models"
)

func TestUsageRepository(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)

	t.Run("Should sum usage for the period", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("FROM usage_records WHERE created_at BETWEEN ? AND ?")).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"count", "tokens", "chars", "gen", "speech", "total"}).
				AddRow(2, 3000, 5000, "0.09", "0.08", "0.17"))

		totals, err := NewUsageRepository(db).UsageTotals(context.Background(), start, end)
		require.NoError(t, err)
		assert.Equal(t, 2, totals.Sessions)
		assert.Equal(t, 3000, totals.GenerationTokens)
		assert.True(t, decimal.RequireFromString("0.17").Equal(totals.TotalCost))
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should group usage by account", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("GROUP BY usage_records.account_id, accounts.email")).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"account_id", "email", "count", "tokens", "chars", "gen", "speech", "total"}).
				AddRow("acct-1", "a@example.com", 1, 2000, 3000, "0.06", "0.048", "0.108").
				AddRow("acct-2", "b@example.com", 1, 1000, 2000, "0.03", "0.032", "0.062"))

		usage, err := NewUsageRepository(db).UsageByAccount(context.Background(), start, end)
		require.NoError(t, err)
		require.Len(t, usage, 2)
		assert.Equal(t, "acct-1", usage[0].AccountId)
		assert.True(t, decimal.RequireFromString("0.062").Equal(usage[1].TotalCost))
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should store the rendered report", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		report := &models.UsageReport{PeriodStart: start, PeriodEnd: end, Summary: models.UsageTotals{TotalCost: decimal.RequireFromString("0.17")}}
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO usage_reports")).
			WithArgs(start, end, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, NewUsageRepository(db).SaveReport(context.Background(), report))
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}
