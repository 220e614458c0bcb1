package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	models "studyio.com/narrator/models"
	utils "studyio.com/narrator/utils"
)

type BackgroundEmailsJob struct {
	db         *sql.DB
	notifier   utils.Notifier
	dailyLimit int
	now        func() time.Time
}

func NewBackgroundEmailsJob(db *sql.DB, notifier utils.Notifier, dailyLimit int) *BackgroundEmailsJob {
	return &BackgroundEmailsJob{
		db:         db,
		notifier:   notifier,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

// cron tab to nudge trial accounts that used up their daily sessions yesterday
func (job *BackgroundEmailsJob) SendBackgroundEmails() error {
	ctx := context.Background()
	today := models.StartOfDay(job.now())
	yesterday := today.AddDate(0, 0, -1)

	results, err := job.db.Query("SELECT id, email FROM accounts WHERE plan = ? AND daily_generations >= ? AND last_generation_date >= ? AND last_generation_date < ? AND (limit_reminder_sent IS NULL OR limit_reminder_sent < ?)",
		models.PlanTrial, job.dailyLimit, yesterday, today, yesterday)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error getting accounts..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	defer results.Close()

	type recipient struct {
		id    string
		email string
	}
	var recipients []recipient
	for results.Next() {
		var r recipient
		if err := results.Scan(&r.id, &r.email); err != nil {
			helpers.Log(logrus.ErrorLevel, "error scanning for db result "+err.Error())
			continue
		}
		recipients = append(recipients, r)
	}
	if err := results.Err(); err != nil {
		return err
	}

	for _, r := range recipients {
		helpers.Log(logrus.InfoLevel, fmt.Sprintf("Reminding account %s to upgrade\r\n", r.id))
		args := map[string]string{"daily_limit": strconv.Itoa(job.dailyLimit)}
		err := utils.DispatchEmail(ctx, job.notifier, "You reached today's study limit", "trial_limit_reached", r.email, args)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, "could not send email\r\n")
			helpers.Log(logrus.ErrorLevel, err.Error())
			continue
		}

		_, err = job.db.Exec("UPDATE accounts SET limit_reminder_sent = ? WHERE id = ?", today, r.id)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, "error updating accounts table..\r\n")
			helpers.Log(logrus.ErrorLevel, err.Error())
			continue
		}
	}

	return nil
}
