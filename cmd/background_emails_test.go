package cmd

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	helpers "github.com/Lineblocs/go-helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"studyio.com/narrator/mocks"
	models "studyio.com/narrator/models"
)

func TestSendBackgroundEmails(t *testing.T) {
	t.Parallel()
	helpers.InitLogrus("file")

	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	today := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	selectQuery := "SELECT id, email FROM accounts WHERE plan = ? AND daily_generations >= ? AND last_generation_date >= ? AND last_generation_date < ? AND (limit_reminder_sent IS NULL OR limit_reminder_sent < ?)"
	updateQuery := "UPDATE accounts SET limit_reminder_sent = ? WHERE id = ?"

	t.Run("Should email trial accounts that hit the limit and mark them", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockNotifier := mocks.NewNotifier(t)
		mockNotifier.EXPECT().Send(mock.Anything, mock.MatchedBy(func(e *models.Email) bool {
			return e.To == "trial@example.com" && e.EmailType == "trial_limit_reached" && e.Args["daily_limit"] == "5"
		})).Return(nil)

		mockSql.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WithArgs("trial", 5, yesterday, today, yesterday).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow("acc-1", "trial@example.com"))
		mockSql.ExpectExec(regexp.QuoteMeta(updateQuery)).
			WithArgs(today, "acc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		job := NewBackgroundEmailsJob(db, mockNotifier, 5)
		job.now = func() time.Time { return now }
		assert.NoError(t, job.SendBackgroundEmails())

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should not mark accounts whose email failed", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockNotifier := mocks.NewNotifier(t)
		mockNotifier.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("mailgun unavailable"))

		mockSql.ExpectQuery(regexp.QuoteMeta(selectQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow("acc-1", "trial@example.com"))

		job := NewBackgroundEmailsJob(db, mockNotifier, 5)
		job.now = func() time.Time { return now }
		assert.NoError(t, job.SendBackgroundEmails())

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should fail when accounts cannot be queried", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		failure := errors.New("failed to get accounts")
		mockSql.ExpectQuery(regexp.QuoteMeta(selectQuery)).WillReturnError(failure)

		job := NewBackgroundEmailsJob(db, mocks.NewNotifier(t), 5)
		job.now = func() time.Time { return now }
		assert.Equal(t, failure, job.SendBackgroundEmails())
	})
}
