package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	models "studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	utils "studyio.com/narrator/utils"
)

const reportTopAccounts = 10

type UsageReportJob struct {
	usageRepository repository.UsageRepository
	notifier        utils.Notifier
	adminEmail      string
	logger          *logrus.Entry
	now             func() time.Time
}

func NewUsageReportJob(usageRepository repository.UsageRepository, notifier utils.Notifier, adminEmail string) *UsageReportJob {
	return &UsageReportJob{
		usageRepository: usageRepository,
		notifier:        notifier,
		adminEmail:      adminEmail,
		logger:          logrus.WithField("component", "usage_report"),
		now:             time.Now,
	}
}

// ReportPeriod returns the previous UTC day.
func ReportPeriod(now time.Time) (time.Time, time.Time) {
	end := models.StartOfDay(now)
	start := end.AddDate(0, 0, -1)
	return start, end.Add(-time.Second)
}

// cron tab to summarise yesterday's generation and speech costs
func (job *UsageReportJob) UsageReport() error {
	ctx := context.Background()
	start, end := ReportPeriod(job.now())

	totals, err := job.usageRepository.UsageTotals(ctx, start, end)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error summing usage..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}

	accounts, err := job.usageRepository.UsageByAccount(ctx, start, end)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error grouping usage by account..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}

	report := &models.UsageReport{
		PeriodStart: start,
		PeriodEnd:   end,
		Summary:     *totals,
		Accounts:    accounts,
	}
	if err := job.usageRepository.SaveReport(ctx, report); err != nil {
		helpers.Log(logrus.ErrorLevel, "error saving usage report..\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}

	job.logger.WithFields(logrus.Fields{
		"period_start": start.Format(time.DateOnly),
		"sessions":     totals.Sessions,
		"total_cost":   totals.TotalCost.String(),
	}).Info("usage report saved")

	if job.adminEmail == "" {
		helpers.Log(logrus.InfoLevel, "ADMIN_EMAIL not set, skipping usage report email")
		return nil
	}

	email := &models.Email{
		Subject:   fmt.Sprintf("Usage report for %s", start.Format(time.DateOnly)),
		To:        job.adminEmail,
		EmailType: "usage_report",
		Body:      RenderAccountLines(accounts, reportTopAccounts),
		Args: map[string]string{
			"sessions":          strconv.Itoa(totals.Sessions),
			"generation_tokens": strconv.Itoa(totals.GenerationTokens),
			"speech_characters": strconv.Itoa(totals.SpeechCharacters),
			"generation_cost":   totals.GenerationCost.StringFixed(4),
			"speech_cost":       totals.SpeechCost.StringFixed(4),
			"total_cost":        totals.TotalCost.StringFixed(4),
		},
	}
	if err := job.notifier.Send(ctx, email); err != nil {
		helpers.Log(logrus.ErrorLevel, "could not send email\r\n")
		helpers.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	return nil
}

// RenderAccountLines lists the most expensive accounts first, one per line.
func RenderAccountLines(accounts []models.AccountUsage, limit int) string {
	if len(accounts) == 0 {
		return "No sessions were generated."
	}
	var b strings.Builder
	b.WriteString("Top accounts by cost:")
	for i, a := range accounts {
		if i == limit {
			b.WriteString(fmt.Sprintf("\n...and %d more", len(accounts)-limit))
			break
		}
		b.WriteString(fmt.Sprintf("\n%s: %d sessions, %s", a.Email, a.Sessions, a.TotalCost.StringFixed(4)))
	}
	return b.String()
}
