package main

import (
	"context"
	"os"
	"strconv"

	helpers "github.com/Lineblocs/go-helpers"
	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	cmd "studyio.com/narrator/cmd"
	"studyio.com/narrator/internal/billing"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"
)

func dailyGenerationLimit() int {
	limit, err := strconv.Atoi(utils.Config("DAILY_GENERATION_LIMIT"))
	if err != nil || limit <= 0 {
		return models.DefaultDailyGenerationLimit
	}
	return limit
}

func main() {
	var err error

	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	args := os.Args[1:]
	if len(args) == 0 {
		helpers.Log(logrus.InfoLevel, "Please provide command")
		return
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		helpers.Log(logrus.FatalLevel, err.Error())
		return
	}

	command := args[0]
	switch command {
	case "migrate":
		helpers.Log(logrus.InfoLevel, "applying schema")
		err = repository.Migrate(context.Background(), db)
	case "cleanup":
		helpers.Log(logrus.InfoLevel, "App cleanup started...")
		err = cmd.NewCleanupJob(db).CleanupApp()
	case "background_emails":
		helpers.Log(logrus.InfoLevel, "sending background emails")
		job := cmd.NewBackgroundEmailsJob(db, utils.NewMailgunNotifierFromEnv(), dailyGenerationLimit())
		err = job.SendBackgroundEmails()
	case "usage_report":
		helpers.Log(logrus.InfoLevel, "running usage report")
		job := cmd.NewUsageReportJob(repository.NewUsageRepository(db), utils.NewMailgunNotifierFromEnv(), utils.Config("ADMIN_EMAIL"))
		err = job.UsageReport()
	case "retry_failed_upgrade_charges":
		helpers.Log(logrus.InfoLevel, "reattempting declined upgrade charges")
		aRepo := repository.NewAccountRepository(db)
		pRepo := repository.NewPaymentRepository(db)
		upgrader := billing.NewUpgradeService(aRepo, pRepo, utils.GetBillingParams(), utils.LoadSettings().GetUpgradePriceCents())
		err = cmd.NewRetryFailedUpgradeChargesJob(aRepo, pRepo, upgrader).RetryFailedUpgradeCharges()
	default:
		helpers.Log(logrus.InfoLevel, "Unknown command "+command)
	}

	if err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
	}
}
