package cmd

import (
	"database/sql"
	"fmt"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	models "studyio.com/narrator/models"
)

const (
	TrialSessionRetentionDays = 30
	UsageReportRetentionDays  = 365
)

type CleanupJob struct {
	db  *sql.DB
	now func() time.Time
}

func NewCleanupJob(db *sql.DB) *CleanupJob {
	return &CleanupJob{db: db, now: time.Now}
}

// cron tab to remove expired trial sessions and old usage reports. Usage records
// keep their session id after the session row is gone.
func (job *CleanupJob) CleanupApp() error {
	now := job.now().UTC()

	cutoff := now.AddDate(0, 0, -TrialSessionRetentionDays)
	res, err := job.db.Exec("DELETE study_sessions FROM study_sessions INNER JOIN accounts ON accounts.id = study_sessions.account_id WHERE accounts.plan = ? AND study_sessions.created_at <= ?", models.PlanTrial, cutoff)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error removing trial sessions..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	removed, _ := res.RowsAffected()
	helpers.Log(logrus.InfoLevel, fmt.Sprintf("Removed %d trial sessions older than %d days\r\n", removed, TrialSessionRetentionDays))

	cutoff = now.AddDate(0, 0, -UsageReportRetentionDays)
	res, err = job.db.Exec("DELETE FROM usage_reports WHERE created_at <= ?", cutoff)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error removing usage reports..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	removed, _ = res.RowsAffected()
	helpers.Log(logrus.InfoLevel, fmt.Sprintf("Removed %d usage reports\r\n", removed))
	return nil
}
