package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/internal/storage"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)
	logger := logrus.WithField("component", "worker-archive")

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Fatal("could not connect to database")
	}
	settings := utils.LoadSettings()
	sess, err := utils.NewAWSSession(settings)
	if err != nil {
		logger.WithError(err).Fatal("could not create AWS session")
	}

	archiveSvc := storage.NewArchiveService(repository.NewAccountRepository(db), sess, settings.GetS3Bucket())

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	ch, _ := conn.Channel()
	defer ch.Close()

	// Ensure queue exists
	q, _ := ch.QueueDeclare("archive_tasks", true, false, false, false, nil)

	msgs, _ := ch.Consume(q.Name, "", false, false, false, false, nil)

	logger.Info("S3 Archive Worker Started...")

	for d := range msgs {
		var task models.ArchiveTask
		if err := json.Unmarshal(d.Body, &task); err != nil {
			logger.WithError(err).Error("error decoding task")
			d.Ack(false) // Drop malformed messages
			continue
		}

		err := archiveSvc.ArchiveSession(context.Background(), task)
		switch {
		case err == nil:
			d.Ack(false)
		case errors.Is(err, models.ErrNotFound):
			logger.WithField("session_id", task.SessionId).Info("session no longer exists")
			d.Ack(false)
		default:
			logger.WithError(err).WithField("session_id", task.SessionId).Error("worker failed to archive session")
			d.Nack(false, true) // Requeue for retry
		}
	}
}
