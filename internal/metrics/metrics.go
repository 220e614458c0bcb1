// Package metrics exposes pipeline counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "narrator"

// Recorder is what the pipeline reports into.
type Recorder interface {
	SessionGenerated()
	CacheHit()
	PolicyRejected(reason string)
	ProviderFailed(provider string)
	CharactersSynthesized(n int)
	TokensGenerated(n int)
}

type Metrics struct {
	sessionsGenerated     prometheus.Counter
	cacheHits             prometheus.Counter
	policyRejections      *prometheus.CounterVec
	providerFailures      *prometheus.CounterVec
	synthesizedCharacters prometheus.Counter
	generationTokens      prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		sessionsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "sessions_generated_total",
			Help:      "Total number of study sessions generated and persisted.",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "session_cache_hits_total",
			Help:      "Total number of requests served from an existing session.",
		}),
		policyRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "policy_rejections_total",
			Help:      "Total number of requests rejected by plan or quota policy.",
		}, []string{"reason"}),
		providerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "provider_failures_total",
			Help:      "Total number of failed calls to generation or speech providers.",
		}, []string{"provider"}),
		synthesizedCharacters: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "synthesized_characters_total",
			Help:      "Total number of characters sent to speech synthesis.",
		}),
		generationTokens: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "generation_tokens_total",
			Help:      "Total number of tokens reported by the generation provider.",
		}),
	}
}

func (m *Metrics) SessionGenerated() {
	m.sessionsGenerated.Inc()
}

func (m *Metrics) CacheHit() {
	m.cacheHits.Inc()
}

func (m *Metrics) PolicyRejected(reason string) {
	m.policyRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) ProviderFailed(provider string) {
	m.providerFailures.WithLabelValues(provider).Inc()
}

func (m *Metrics) CharactersSynthesized(n int) {
	m.synthesizedCharacters.Add(float64(n))
}

func (m *Metrics) TokensGenerated(n int) {
	m.generationTokens.Add(float64(n))
}

// Nop discards everything.
type Nop struct{}

func (Nop) SessionGenerated()         {}
func (Nop) CacheHit()                 {}
func (Nop) PolicyRejected(string)     {}
func (Nop) ProviderFailed(string)     {}
func (Nop) CharactersSynthesized(int) {}
func (Nop) TokensGenerated(int)       {}
