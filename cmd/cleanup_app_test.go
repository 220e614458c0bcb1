package cmd

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	helpers "github.com/Lineblocs/go-helpers"
	"github.com/stretchr/testify/assert"
)

func TestCleanupApp(t *testing.T) {
	t.Parallel()
	helpers.InitLogrus("file")

	now := time.Date(2026, 5, 4, 3, 0, 0, 0, time.UTC)
	sessionsQuery := "DELETE study_sessions FROM study_sessions INNER JOIN accounts ON accounts.id = study_sessions.account_id WHERE accounts.plan = ? AND study_sessions.created_at <= ?"
	reportsQuery := "DELETE FROM usage_reports WHERE created_at <= ?"

	t.Run("Should remove expired trial sessions and old reports", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(regexp.QuoteMeta(sessionsQuery)).
			WithArgs("trial", now.AddDate(0, 0, -30)).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mockSql.ExpectExec(regexp.QuoteMeta(reportsQuery)).
			WithArgs(now.AddDate(0, 0, -365)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		job := NewCleanupJob(db)
		job.now = func() time.Time { return now }
		assert.NoError(t, job.CleanupApp())

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should stop when sessions cannot be removed", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		failure := errors.New("lock wait timeout")
		mockSql.ExpectExec(regexp.QuoteMeta(sessionsQuery)).WillReturnError(failure)

		job := NewCleanupJob(db)
		job.now = func() time.Time { return now }
		assert.Equal(t, failure, job.CleanupApp())

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}
