package study

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"studyio.com/narrator/internal/generation"
	"studyio.com/narrator/internal/speech"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
)

// memoryStore mirrors the semantics of repository.AccountService in memory.
type memoryStore struct {
	mu         sync.Mutex
	accounts   map[string]*models.Account
	sessions   map[string]*models.StudySession
	usage      []models.UsageRecord
	cfg        *models.PolicyConfig
	commitHook func(session *models.StudySession)
	accountErr error
}

var _ repository.AccountRepository = (*memoryStore)(nil)
var _ repository.ConfigRepository = (*memoryStore)(nil)

func newMemoryStore(accounts ...*models.Account) *memoryStore {
	store := &memoryStore{
		accounts: make(map[string]*models.Account),
		sessions: make(map[string]*models.StudySession),
		cfg:      models.DefaultPolicyConfig(),
	}
	for _, a := range accounts {
		store.accounts[a.Id] = a
	}
	return store
}

func (m *memoryStore) GetPolicyConfig(_ context.Context) (*models.PolicyConfig, error) {
	return m.cfg, nil
}

func (m *memoryStore) GetAccount(_ context.Context, id string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.accountErr != nil {
		return nil, m.accountErr
	}
	a, ok := m.accounts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *memoryStore) FindSession(_ context.Context, accountId string, req *models.GenerationRequest) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.AccountId == accountId && s.Topic == req.Topic && s.DurationMinutes == req.DurationMinutes &&
			s.ExamMode == req.ExamMode && s.Prompt == req.Prompt {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) GetSession(_ context.Context, accountId string, sessionId string) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionId]
	if !ok || s.AccountId != accountId {
		return nil, models.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memoryStore) ListSessions(_ context.Context, accountId string, limit int) ([]models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StudySession, 0)
	for _, s := range m.sessions {
		if s.AccountId == accountId {
			copied := *s
			copied.Audio = nil
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) CommitGeneration(_ context.Context, session *models.StudySession, usage *models.UsageRecord, dailyLimit int, now time.Time) error {
	if m.commitHook != nil {
		m.commitHook(session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.Fingerprint == session.Fingerprint {
			return repository.ErrDuplicateSession
		}
	}
	a := m.accounts[session.AccountId]
	used := a.GenerationsOn(now)
	if used >= dailyLimit {
		return &models.QuotaError{Reason: models.QuotaDailyGenerations, Limit: dailyLimit, Used: used}
	}
	a.DailyGenerations = used + 1
	stamp := now
	a.LastGenerationDate = &stamp

	stored := *session
	m.sessions[session.Id] = &stored
	m.usage = append(m.usage, *usage)
	return nil
}

func (m *memoryStore) IncrementListenCount(_ context.Context, sessionId string, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionId]
	if !ok {
		return models.ErrNotFound
	}
	if limit > 0 && s.ListenCount >= limit {
		return &models.QuotaError{Reason: models.QuotaListens, Limit: limit, Used: s.ListenCount}
	}
	s.ListenCount++
	return nil
}

func (m *memoryStore) SetPlan(_ context.Context, accountId string, plan string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[accountId].Plan = plan
	return nil
}

func (m *memoryStore) SetAudioURL(_ context.Context, sessionId string, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionId].AudioURL = url
	return nil
}

type fakeGenerator struct {
	calls      int
	lastBudget int
	text       string
	err        error
}

func (g *fakeGenerator) ProviderName() string { return "fake" }

func (g *fakeGenerator) Generate(_ context.Context, req *models.GenerationRequest, cfg *models.PolicyConfig) (*generation.Content, error) {
	g.calls++
	g.lastBudget = cfg.CharacterLimit(req.DurationMinutes)
	if g.err != nil {
		return nil, g.err
	}
	text := g.text
	if text == "" {
		text = "Study notes about " + req.Topic + "."
	}
	return &generation.Content{Text: text, Tokens: 1500}, nil
}

type fakeSynthesizer struct {
	calls int
	err   error
}

func (s *fakeSynthesizer) Synthesize(_ context.Context, text string) (*speech.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &speech.Result{
		Audio:      []byte("audio:" + text),
		Marks:      []models.SpeechMark{{Type: models.MarkTypeWord, TimeMs: 6, Start: 0, End: 5, Value: "Study"}},
		Characters: 1000,
		Chunks:     1,
		Length:     len(text),
	}, nil
}

var errProviderDown = errors.New("provider down")
