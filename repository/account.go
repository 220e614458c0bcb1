package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"studyio.com/narrator/models"
)

const mysqlDuplicateEntry = 1062

// ErrDuplicateSession is returned by CommitGeneration when another request already
// stored a session with the same fingerprint.
var ErrDuplicateSession = errors.New("session with identical fingerprint already exists")

type AccountRepository interface {
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	FindSession(ctx context.Context, accountId string, req *models.GenerationRequest) (*models.StudySession, error)
	GetSession(ctx context.Context, accountId string, sessionId string) (*models.StudySession, error)
	ListSessions(ctx context.Context, accountId string, limit int) ([]models.StudySession, error)
	CommitGeneration(ctx context.Context, session *models.StudySession, usage *models.UsageRecord, dailyLimit int, now time.Time) error
	IncrementListenCount(ctx context.Context, sessionId string, limit int) error
	SetPlan(ctx context.Context, accountId string, plan string) error
	SetAudioURL(ctx context.Context, sessionId string, url string) error
}

type AccountService struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return NewAccountService(db)
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{
		db: db,
	}
}

func (as *AccountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	var fullName, stripeId sql.NullString
	var lastGeneration sql.NullTime
	row := as.db.QueryRowContext(ctx, "SELECT id, email, full_name, plan, stripe_id, daily_generations, last_generation_date, created_at FROM accounts WHERE id = ?", id)
	err := row.Scan(&account.Id, &account.Email, &fullName, &account.Plan, &stripeId, &account.DailyGenerations, &lastGeneration, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(models.ErrNotFound, "account %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error loading account %s", id)
	}
	account.FullName = fullName.String
	account.StripeId = stripeId.String
	if lastGeneration.Valid {
		t := lastGeneration.Time
		account.LastGenerationDate = &t
	}
	return &account, nil
}

const sessionColumns = "id, account_id, topic, prompt, content, audio_data, speech_marks, duration_minutes, exam_mode, fingerprint, listen_count, audio_url, created_at"

func scanSession(row interface{ Scan(...any) error }) (*models.StudySession, error) {
	var session models.StudySession
	var marks []byte
	var audioURL sql.NullString
	err := row.Scan(&session.Id, &session.AccountId, &session.Topic, &session.Prompt, &session.Content, &session.Audio, &marks,
		&session.DurationMinutes, &session.ExamMode, &session.Fingerprint, &session.ListenCount, &audioURL, &session.CreatedAt)
	if err != nil {
		return nil, err
	}
	session.AudioURL = audioURL.String
	if len(marks) > 0 {
		if err := json.Unmarshal(marks, &session.Marks); err != nil {
			return nil, errors.Wrapf(err, "error decoding speech marks of session %s", session.Id)
		}
	}
	return &session, nil
}

// FindSession returns nil when no stored session matches the request exactly.
func (as *AccountService) FindSession(ctx context.Context, accountId string, req *models.GenerationRequest) (*models.StudySession, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM study_sessions WHERE account_id = ? AND topic = ? AND duration_minutes = ? AND exam_mode = ? AND prompt = ? LIMIT 1",
		accountId, req.Topic, req.DurationMinutes, req.ExamMode, req.Prompt)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error looking up cached session")
	}
	return session, nil
}

func (as *AccountService) GetSession(ctx context.Context, accountId string, sessionId string) (*models.StudySession, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM study_sessions WHERE id = ? AND account_id = ?", sessionId, accountId)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(models.ErrNotFound, "session %s", sessionId)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error loading session %s", sessionId)
	}
	return session, nil
}

// ListSessions returns the newest sessions first, without audio.
func (as *AccountService) ListSessions(ctx context.Context, accountId string, limit int) ([]models.StudySession, error) {
	rows, err := as.db.QueryContext(ctx, "SELECT id, topic, prompt, content, duration_minutes, exam_mode, listen_count, audio_url, created_at FROM study_sessions WHERE account_id = ? ORDER BY created_at DESC LIMIT ?", accountId, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error listing sessions")
	}
	defer rows.Close()

	sessions := make([]models.StudySession, 0)
	for rows.Next() {
		session := models.StudySession{AccountId: accountId}
		var audioURL sql.NullString
		if err := rows.Scan(&session.Id, &session.Topic, &session.Prompt, &session.Content, &session.DurationMinutes, &session.ExamMode, &session.ListenCount, &audioURL, &session.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "error scanning session row")
		}
		session.AudioURL = audioURL.String
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// CommitGeneration stores the session, bumps the daily counter and appends the usage
// record in one transaction. The counter update is conditional so concurrent requests
// cannot push an account past dailyLimit.
func (as *AccountService) CommitGeneration(ctx context.Context, session *models.StudySession, usage *models.UsageRecord, dailyLimit int, now time.Time) error {
	marks, err := json.Marshal(session.Marks)
	if err != nil {
		return errors.Wrap(err, "error encoding speech marks")
	}

	tx, err := as.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "error starting transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "INSERT INTO study_sessions (`id`, `account_id`, `topic`, `prompt`, `content`, `audio_data`, `speech_marks`, `duration_minutes`, `exam_mode`, `fingerprint`, `listen_count`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		session.Id, session.AccountId, session.Topic, session.Prompt, session.Content, session.Audio, marks,
		session.DurationMinutes, session.ExamMode, session.Fingerprint, 0, session.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			err = ErrDuplicateSession
			return err
		}
		err = errors.Wrap(err, "error inserting session")
		return err
	}

	dayStart := models.StartOfDay(now)
	res, err := tx.ExecContext(ctx, "UPDATE accounts SET daily_generations = CASE WHEN last_generation_date IS NULL OR last_generation_date < ? THEN 1 ELSE daily_generations + 1 END, last_generation_date = ? WHERE id = ? AND (last_generation_date IS NULL OR last_generation_date < ? OR daily_generations < ?)",
		dayStart, now, session.AccountId, dayStart, dailyLimit)
	if err != nil {
		err = errors.Wrap(err, "error updating account quota")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		err = errors.Wrap(err, "error reading quota update result")
		return err
	}
	if affected == 0 {
		err = &models.QuotaError{Reason: models.QuotaDailyGenerations, Limit: dailyLimit, Used: dailyLimit, ResetAt: dayStart.AddDate(0, 0, 1)}
		return err
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO usage_records (`session_id`, `account_id`, `generation_tokens`, `speech_characters`, `generation_cost`, `speech_cost`, `total_cost`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		usage.SessionId, usage.AccountId, usage.GenerationTokens, usage.SpeechCharacters, usage.GenerationCost, usage.SpeechCost, usage.TotalCost, usage.CreatedAt)
	if err != nil {
		err = errors.Wrap(err, "error inserting usage record")
		return err
	}

	if err = tx.Commit(); err != nil {
		err = errors.Wrap(err, "error committing generation")
		return err
	}
	return nil
}

// IncrementListenCount bumps the listen counter unless limit (when positive) has been reached.
func (as *AccountService) IncrementListenCount(ctx context.Context, sessionId string, limit int) error {
	res, err := as.db.ExecContext(ctx, "UPDATE study_sessions SET listen_count = listen_count + 1 WHERE id = ? AND (? <= 0 OR listen_count < ?)", sessionId, limit, limit)
	if err != nil {
		return errors.Wrapf(err, "error incrementing listen count of %s", sessionId)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error reading listen update result")
	}
	if affected == 0 {
		return &models.QuotaError{Reason: models.QuotaListens, Limit: limit, Used: limit}
	}
	return nil
}

func (as *AccountService) SetPlan(ctx context.Context, accountId string, plan string) error {
	res, err := as.db.ExecContext(ctx, "UPDATE accounts SET plan = ? WHERE id = ?", plan, accountId)
	if err != nil {
		return errors.Wrapf(err, "error setting plan of %s", accountId)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.Wrapf(models.ErrNotFound, "account %s", accountId)
	}
	return nil
}

func (as *AccountService) SetAudioURL(ctx context.Context, sessionId string, url string) error {
	_, err := as.db.ExecContext(ctx, "UPDATE study_sessions SET audio_url = ? WHERE id = ?", url, sessionId)
	if err != nil {
		return errors.Wrapf(err, "error recording audio url of %s", sessionId)
	}
	return nil
}
