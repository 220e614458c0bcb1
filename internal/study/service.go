// Package study coordinates policy, caching, generation, synthesis and persistence of
// study sessions.
package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/internal/generation"
	"studyio.com/narrator/internal/metrics"
	"studyio.com/narrator/internal/policy"
	"studyio.com/narrator/internal/ratelimit"
	"studyio.com/narrator/internal/speech"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
)

const HistoryLimit = 100

type State string

const (
	StateReceived      State = "Received"
	StatePolicyChecked State = "PolicyChecked"
	StateCacheChecked  State = "CacheChecked"
	StateGenerating    State = "Generating"
	StateSynthesizing  State = "Synthesizing"
	StatePersisting    State = "Persisting"
	StateCompleted     State = "Completed"
	StateError         State = "Error"
)

type ContentGenerator interface {
	Generate(ctx context.Context, req *models.GenerationRequest, cfg *models.PolicyConfig) (*generation.Content, error)
	ProviderName() string
}

// Result is a completed generation. Cached results cost nothing.
type Result struct {
	Session *models.StudySession
	Cached  bool
}

type Service struct {
	accounts    repository.AccountRepository
	config      repository.ConfigRepository
	cache       *SessionCache
	generator   ContentGenerator
	synthesizer speech.Synthesizer
	ledger      *Ledger
	limiter     ratelimit.Limiter
	metrics     metrics.Recorder
	logger      *logrus.Entry
	now         func() time.Time
	newId       func() string
}

func NewService(accounts repository.AccountRepository, config repository.ConfigRepository, generator ContentGenerator, synthesizer speech.Synthesizer, limiter ratelimit.Limiter, recorder metrics.Recorder, rates models.UsageRates) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Service{
		accounts:    accounts,
		config:      config,
		cache:       NewSessionCache(accounts),
		generator:   generator,
		synthesizer: synthesizer,
		ledger:      NewLedger(rates),
		limiter:     limiter,
		metrics:     recorder,
		logger:      logrus.WithField("component", "study"),
		now:         time.Now,
		newId:       uuid.NewString,
	}
}

// WithClock replaces the service's time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) transition(log *logrus.Entry, state State) {
	log.WithField("state", state).Debug("study request transition")
}

func (s *Service) fail(log *logrus.Entry, err error) error {
	kind := models.ErrorKind(err)
	entry := log.WithField("state", StateError).WithError(err)
	switch kind {
	case "PlanRestricted", "QuotaExceeded", "RateLimited":
		s.metrics.PolicyRejected(kind)
		entry.Info("study request rejected")
	case "InvalidRequest", "NotFound":
		entry.Info("study request refused")
	default:
		entry.Error("study request failed")
	}
	return err
}

func (s *Service) allow(ctx context.Context, accountId string, rule ratelimit.Rule) error {
	if s.limiter == nil {
		return nil
	}
	decision, err := s.limiter.Allow(ctx, accountId, rule)
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if !decision.Allowed {
		return &models.RateLimitError{
			Rule:    rule.Name,
			Limit:   rule.Limit,
			ResetAt: decision.ResetAt,
		}
	}
	return nil
}

// Generate returns the stored session for an identical request, or generates,
// synthesizes and persists a new one. A new session, its quota increment and its usage
// record are committed together or not at all.
func (s *Service) Generate(ctx context.Context, accountId string, req *models.GenerationRequest) (*Result, error) {
	fingerprint := req.Fingerprint(accountId)
	log := s.logger.WithFields(logrus.Fields{
		"account_id":  accountId,
		"fingerprint": fingerprint,
	})
	s.transition(log, StateReceived)

	cfg, err := s.config.GetPolicyConfig(ctx)
	if err != nil {
		return nil, s.fail(log, fmt.Errorf("load policy config: %w", err))
	}
	if err := req.Validate(cfg); err != nil {
		return nil, s.fail(log, err)
	}

	account, err := s.accounts.GetAccount(ctx, accountId)
	if err != nil {
		return nil, s.fail(log, err)
	}

	now := s.now()
	decision, err := policy.EvaluateGeneration(account, req, cfg, now)
	if err != nil {
		return nil, s.fail(log, err)
	}
	s.transition(log.WithField("used_today", decision.UsedToday), StatePolicyChecked)

	cached, err := s.cache.Lookup(ctx, accountId, req)
	if err != nil {
		return nil, s.fail(log, err)
	}
	if cached != nil {
		s.metrics.CacheHit()
		s.transition(log.WithField("session_id", cached.Id), StateCompleted)
		return &Result{Session: cached, Cached: true}, nil
	}
	s.transition(log, StateCacheChecked)

	if err := s.allow(ctx, accountId, ratelimit.GenerationRule); err != nil {
		return nil, s.fail(log, err)
	}

	s.transition(log, StateGenerating)
	content, err := s.generator.Generate(ctx, req, cfg)
	if err != nil {
		s.metrics.ProviderFailed(s.generator.ProviderName())
		return nil, s.fail(log, err)
	}

	s.transition(log.WithField("tokens", content.Tokens), StateSynthesizing)
	audio, err := s.synthesizer.Synthesize(ctx, content.Text)
	if err != nil {
		s.metrics.ProviderFailed("speech")
		return nil, s.fail(log, err)
	}

	session := &models.StudySession{
		Id:              s.newId(),
		AccountId:       accountId,
		Topic:           req.Topic,
		Prompt:          req.Prompt,
		Content:         content.Text,
		Audio:           audio.Audio,
		Marks:           audio.Marks,
		DurationMinutes: req.DurationMinutes,
		ExamMode:        req.ExamMode,
		Fingerprint:     fingerprint,
		CreatedAt:       now,
	}
	usage := s.ledger.Record(session, content.Tokens, audio.Characters, now)

	log = log.WithField("session_id", session.Id)
	s.transition(log, StatePersisting)
	err = s.accounts.CommitGeneration(ctx, session, usage, cfg.DailyGenerationLimit, now)
	if errors.Is(err, repository.ErrDuplicateSession) {
		existing, lookupErr := s.cache.Lookup(ctx, accountId, req)
		if lookupErr != nil {
			return nil, s.fail(log, lookupErr)
		}
		if existing != nil {
			s.metrics.CacheHit()
			s.transition(log.WithField("session_id", existing.Id), StateCompleted)
			return &Result{Session: existing, Cached: true}, nil
		}
	}
	if err != nil {
		return nil, s.fail(log, err)
	}

	s.metrics.SessionGenerated()
	s.metrics.TokensGenerated(content.Tokens)
	s.metrics.CharactersSynthesized(audio.Characters)
	log.WithFields(logrus.Fields{
		"state":      StateCompleted,
		"truncated":  content.Truncated,
		"chunks":     audio.Chunks,
		"total_cost": usage.TotalCost.String(),
	}).Info("study session generated")

	return &Result{Session: session, Cached: false}, nil
}

// Play authorizes one more listen of a session and returns its audio.
func (s *Service) Play(ctx context.Context, accountId string, sessionId string) (*models.Playback, error) {
	log := s.logger.WithFields(logrus.Fields{
		"account_id": accountId,
		"session_id": sessionId,
	})

	session, err := s.accounts.GetSession(ctx, accountId, sessionId)
	if err != nil {
		return nil, s.fail(log, err)
	}

	account, err := s.accounts.GetAccount(ctx, accountId)
	if err != nil {
		return nil, s.fail(log, err)
	}

	cfg, err := s.config.GetPolicyConfig(ctx)
	if err != nil {
		return nil, s.fail(log, fmt.Errorf("load policy config: %w", err))
	}

	if err := policy.EvaluateListen(account, session.ListenCount, cfg); err != nil {
		return nil, s.fail(log, err)
	}

	if err := s.allow(ctx, accountId, ratelimit.PlaybackRule); err != nil {
		return nil, s.fail(log, err)
	}

	if err := s.accounts.IncrementListenCount(ctx, session.Id, policy.ListenLimit(account, cfg)); err != nil {
		return nil, s.fail(log, err)
	}

	log.WithField("listen_count", session.ListenCount+1).Debug("playback authorized")
	return &models.Playback{
		SessionId:   session.Id,
		ContentType: models.AudioContentType,
		Audio:       session.Audio,
		Marks:       session.Marks,
		ListenCount: session.ListenCount + 1,
	}, nil
}

// History lists the account's most recent sessions without their audio.
func (s *Service) History(ctx context.Context, accountId string) ([]models.StudySession, error) {
	sessions, err := s.accounts.ListSessions(ctx, accountId, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history of %s: %w", accountId, err)
	}
	return sessions, nil
}
