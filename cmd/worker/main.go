package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/internal/generation"
	"studyio.com/narrator/internal/metrics"
	"studyio.com/narrator/internal/ratelimit"
	"studyio.com/narrator/internal/speech"
	"studyio.com/narrator/internal/study"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

const studyQueue = "study_tasks"

func newLimiter(logger *logrus.Entry) ratelimit.Limiter {
	redisURL := utils.Config("REDIS_URL")
	if redisURL == "" {
		logger.Warn("REDIS_URL not set, rate limits are local to this process")
		return ratelimit.NewMemoryLimiter()
	}
	rdb, err := utils.NewRedisClient(redisURL)
	if err != nil {
		logger.WithError(err).Fatal("could not create redis client")
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.WithError(err).Fatal("could not connect to redis")
	}
	return ratelimit.NewRedisLimiter(rdb, "narrator_ratelimit")
}

func serveMetrics(reg *prometheus.Registry, logger *logrus.Entry) {
	addr := utils.Config("METRICS_ADDR")
	if addr == "" {
		addr = ":9102"
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()
}

func reply(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, body *models.StudyTaskReply) error {
	if d.ReplyTo == "" {
		return nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", d.ReplyTo, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: d.CorrelationId,
		Body:          payload,
	})
}

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)
	logger := logrus.WithField("component", "worker")

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Fatal("could not connect to database")
	}

	settings := utils.LoadSettings()
	sess, err := utils.NewSpeechSession(settings)
	if err != nil {
		logger.WithError(err).Fatal("could not create AWS session")
	}
	synthesizer := speech.NewFromSettings(settings, sess)

	reg := prometheus.NewRegistry()
	recorder := metrics.NewMetrics(reg)
	serveMetrics(reg, logger)

	accounts := repository.NewAccountRepository(db)
	generator := generation.NewGenerator(generation.NewProvider(settings, logger))
	studySvc := study.NewService(accounts, repository.NewConfigRepository(db), generator, synthesizer, newLimiter(logger), recorder, settings.GetUsageRates())

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
	q, _ := ch.QueueDeclare(studyQueue, true, false, false, false, nil)
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	logger.WithField("provider", generator.ProviderName()).Info("Worker ready. Waiting for tasks...")

	for d := range msgs {
		ctx := context.Background()
		var task models.StudyTask
		if err := json.Unmarshal(d.Body, &task); err != nil {
			logger.WithError(err).Error("error decoding task")
			_ = reply(ctx, ch, d, study.ErrorReply(models.ErrInvalidRequest))
			d.Ack(false) // Drop malformed messages
			continue
		}

		result, err := studySvc.HandleTask(ctx, task)
		if err != nil {
			logger.WithError(err).WithField("account_id", task.AccountId).Error("error processing study task")
			d.Nack(false, true) // Requeue for retry
			continue
		}

		if err := reply(ctx, ch, d, result); err != nil {
			logger.WithError(err).WithField("account_id", task.AccountId).Error("could not publish reply")
		}
		d.Ack(false)
	}
}
