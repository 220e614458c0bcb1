package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	cmd "studyio.com/narrator/cmd"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
	"studyio.com/narrator/utils"

	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var rdb *redis.Client

var logger = logrus.WithField("component", "distributor")

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	// 1. INITIALIZE REDIS
	var err error
	rdb, err = utils.NewRedisClient(os.Getenv("REDIS_URL"))
	if err != nil {
		logger.WithError(err).Fatal("Critical: Failed to parse REDIS_URL")
	}

	// Test Redis Connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.WithError(err).Fatal("Critical: Could not connect to Redis")
	}

	// 2. SETUP SCHEDULER
	c := cron.New()

	// PRODUCTION: Usage report (01:00 UTC daily)
	_, _ = c.AddFunc("CRON_TZ=UTC 0 1 * * *", func() {
		logger.Info("[PROD] Triggering usage report...")
		runUsageReport()
	})

	// PRODUCTION: Archive distribution (02:00 UTC daily)
	_, _ = c.AddFunc("CRON_TZ=UTC 0 2 * * *", func() {
		logger.Info("[PROD] Triggering archive distribution...")
		runArchiveDistributor("daily")
	})

	// DEBUG: Every Minute (only if DISTRIBUTOR_DEBUG is set to 1)
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			logger.Info("[DEBUG] Running per-minute test trigger...")
			runArchiveDistributor("daily-debug")
		})
	}

	logger.Info("Task Distributor started.")
	c.Start()

	// Keep the app running
	select {}
}

// acquireLock ensures only one replica runs a schedule per period.
func acquireLock(ctx context.Context, scheduleType string) (string, string, bool) {
	var lockKeySuffix string
	var lockTTL time.Duration

	if scheduleType == "daily-debug" {
		lockKeySuffix = time.Now().UTC().Format("2006-01-02-15:04") // Unique per minute
		lockTTL = 50 * time.Second                                  // Expire just before next minute
	} else {
		lockKeySuffix = time.Now().UTC().Format("2006-01-02")
		lockTTL = 23 * time.Hour
	}

	globalLockKey := fmt.Sprintf("narrator_run_lock:%s:%s", scheduleType, lockKeySuffix)

	// SET NX: Only one instance/replica will succeed here
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		logger.Infof("[%s] Skip: Lock %s held by another instance.", scheduleType, globalLockKey)
		return "", "", false
	}
	return globalLockKey, lockKeySuffix, true
}

func runUsageReport() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	if _, _, ok := acquireLock(ctx, "usage-report"); !ok {
		return
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Error("[usage-report] DB connection failed")
		return
	}

	job := cmd.NewUsageReportJob(repository.NewUsageRepository(db), utils.NewMailgunNotifierFromEnv(), utils.Config("ADMIN_EMAIL"))
	if err := job.UsageReport(); err != nil {
		logger.WithError(err).Error("[usage-report] failed")
	}
}

func runArchiveDistributor(scheduleType string) {
	// 2-hour safety timeout for the entire process
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	globalLockKey, lockKeySuffix, ok := acquireLock(ctx, scheduleType)
	if !ok {
		return
	}

	logger.Infof("[%s] Lock Acquired. Processing distribution...", scheduleType)

	// --- CONNECTIONS ---
	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Errorf("[%s] DB connection failed", scheduleType)
		return
	}

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		logger.WithError(err).Errorf("[%s] RabbitMQ connection failed", scheduleType)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Errorf("[%s] RabbitMQ channel failed", scheduleType)
		return
	}
	defer ch.Close()

	// Put channel in Confirm Mode
	if err := ch.Confirm(false); err != nil {
		logger.WithError(err).Errorf("[%s] Could not enable RabbitMQ confirms", scheduleType)
		return
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, _ := ch.QueueDeclare("archive_tasks", true, false, false, false, nil)

	// --- DATABASE QUERY ---
	rows, err := db.QueryContext(ctx, "SELECT id, account_id FROM study_sessions WHERE audio_url IS NULL")
	if err != nil {
		logger.WithError(err).Errorf("[%s] DB Query Error", scheduleType)
		return
	}
	defer rows.Close()

	// --- DISTRIBUTION LOOP ---
	count := 0
	for rows.Next() {
		var task models.ArchiveTask
		if err := rows.Scan(&task.SessionId, &task.AccountId); err != nil {
			logger.WithError(err).Error("error scanning session row")
			continue
		}

		// DEDUPLICATION: Ensures no session is queued twice in the same cycle
		dedupeKey := fmt.Sprintf("queued:%s:%s:%s", scheduleType, task.SessionId, lockKeySuffix)
		isNew, _ := rdb.SetNX(ctx, dedupeKey, "true", 48*time.Hour).Result()
		if !isNew {
			continue
		}

		task.RunID = globalLockKey
		body, _ := json.Marshal(task)

		err = ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})

		if err != nil {
			rdb.Del(ctx, dedupeKey) // Failed to publish, allow retry
			logger.WithError(err).Errorf("Publish error for session %s", task.SessionId)
			continue
		}

		// Confirm receipt by RabbitMQ
		select {
		case confirmed := <-confirms:
			if !confirmed.Ack {
				rdb.Del(ctx, dedupeKey)
				logger.Errorf("RabbitMQ NACK for %s", task.SessionId)
			} else {
				count++
			}
		case <-time.After(5 * time.Second):
			rdb.Del(ctx, dedupeKey)
			logger.Errorf("Timeout waiting for RabbitMQ ACK for %s", task.SessionId)
		}
	}

	logger.Infof("[%s] Distribution Finished. Total Queued: %d", scheduleType, count)
}
