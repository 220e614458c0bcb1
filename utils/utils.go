package utils

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/mailgun/mailgun-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	models "studyio.com/narrator/models"
)

var db *sql.DB

type BillingParams struct {
	Data     map[string]string
	Provider string
}

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = helpers.CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

var settingKeys = []string{
	"openai_api_key",
	"openai_model",
	"aws_access_key_id",
	"aws_secret_access_key",
	"aws_region",
	"s3_bucket",
	"polly_voice",
	"speech_chunk_size",
	"upgrade_price_cents",
	"generation_rate_per_1k_tokens",
	"speech_rate_per_character",
}

// LoadSettings gathers provider credentials and prices from the environment.
func LoadSettings() *models.Settings {
	settings := &models.Settings{Credentials: make(map[string]string)}
	for _, key := range settingKeys {
		if value := Config(strings.ToUpper(key)); value != "" {
			settings.Credentials[key] = value
		}
	}
	return settings
}

// GetBillingParams returns the upgrade payment gateway configuration.
func GetBillingParams() *BillingParams {
	data := make(map[string]string)
	data["stripe_key"] = Config("STRIPE_KEY")
	data["retry_attempts"] = Config("BILLING_RETRY_ATTEMPTS")
	if data["retry_attempts"] == "" {
		data["retry_attempts"] = "0"
	}
	return &BillingParams{Provider: "stripe", Data: data}
}

// NewAWSSession uses static credentials when they are configured and the default
// provider chain otherwise.
func NewAWSSession(settings *models.Settings) (*session.Session, error) {
	cfg := &aws.Config{
		Region: aws.String(settings.GetAWSRegion()),
	}
	if settings.HasAWSCredentials() {
		cfg.Credentials = credentials.NewStaticCredentials(
			settings.Credentials["aws_access_key_id"],
			settings.Credentials["aws_secret_access_key"], "")
	}
	return session.NewSession(cfg)
}

// NewSpeechSession returns a session for the speech provider, or nil when no
// credentials are configured so callers fall back to placeholder audio.
func NewSpeechSession(settings *models.Settings) (client.ConfigProvider, error) {
	if !settings.HasAWSCredentials() {
		return nil, nil
	}
	sess, err := NewAWSSession(settings)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opt), nil
}

type Notifier interface {
	Send(ctx context.Context, email *models.Email) error
}

type MailgunNotifier struct {
	mg   mailgun.Mailgun
	from string
}

func NewMailgunNotifier(domain string, apiKey string, from string) *MailgunNotifier {
	return &MailgunNotifier{
		mg:   mailgun.NewMailgun(domain, apiKey),
		from: from,
	}
}

// NewMailgunNotifierFromEnv reads MAILGUN_DOMAIN, MAILGUN_API_KEY and MAIL_FROM.
func NewMailgunNotifierFromEnv() *MailgunNotifier {
	from := Config("MAIL_FROM")
	if from == "" {
		from = "Study Narrator <no-reply@" + Config("MAILGUN_DOMAIN") + ">"
	}
	return NewMailgunNotifier(Config("MAILGUN_DOMAIN"), Config("MAILGUN_API_KEY"), from)
}

func (n *MailgunNotifier) Send(ctx context.Context, email *models.Email) error {
	message := n.mg.NewMessage(n.from, email.Subject, RenderEmailBody(email), email.To)
	if email.EmailType != "" {
		if err := message.AddTag(email.EmailType); err != nil {
			return err
		}
	}
	_, id, err := n.mg.Send(ctx, message)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"component":  "mailer",
		"email_type": email.EmailType,
		"message_id": id,
	}).Debug("email sent")
	return nil
}

// RenderEmailBody appends the email args, sorted by key, to its body.
func RenderEmailBody(email *models.Email) string {
	var b strings.Builder
	b.WriteString(email.Body)

	keys := make([]string, 0, len(email.Args))
	for k := range email.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(k + ": " + email.Args[k])
	}
	return b.String()
}

func DispatchEmail(ctx context.Context, notifier Notifier, subject string, emailType string, to string, emailArgs map[string]string) error {
	email := models.Email{Subject: subject, To: to, EmailType: emailType, Args: emailArgs}
	return notifier.Send(ctx, &email)
}

func CreateConfirmationNumber() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("UPG-%08X", b), nil
}
