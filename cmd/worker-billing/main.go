package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/internal/billing"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)
	logger := logrus.WithField("component", "worker-billing")

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Fatal("could not connect to database")
	}
	aRepo := repository.NewAccountRepository(db)
	pRepo := repository.NewPaymentRepository(db)
	upgradeSvc := billing.NewUpgradeService(aRepo, pRepo, utils.GetBillingParams(), utils.LoadSettings().GetUpgradePriceCents())

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}

	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)
	q, _ := ch.QueueDeclare("upgrade_tasks", true, false, false, false, nil)
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	logger.Info("Worker ready. Waiting for tasks...")

	for d := range msgs {
		var task models.UpgradeTask
		if err := json.Unmarshal(d.Body, &task); err != nil {
			logger.WithError(err).Error("error decoding task")
			d.Ack(false) // Drop malformed messages
			continue
		}

		err := upgradeSvc.ProcessTask(context.Background(), task)
		switch {
		case err == nil:
			d.Ack(false)
		case errors.Is(err, billing.ErrAlreadyPaid), errors.Is(err, models.ErrNotFound):
			logger.WithError(err).WithField("account_id", task.AccountId).Info("dropping upgrade task")
			d.Ack(false)
		default:
			logger.WithError(err).WithField("account_id", task.AccountId).Error("error processing upgrade")
			d.Nack(false, true) // Requeue for retry
		}
	}
}
