package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SessionGenerated()
	m.CacheHit()
	m.CacheHit()
	m.PolicyRejected("QuotaExceeded")
	m.ProviderFailed("openai")
	m.CharactersSynthesized(2500)
	m.TokensGenerated(1200)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessionsGenerated))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.policyRejections.WithLabelValues("QuotaExceeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.providerFailures.WithLabelValues("openai")))
	assert.Equal(t, float64(2500), testutil.ToFloat64(m.synthesizedCharacters))
	assert.Equal(t, float64(1200), testutil.ToFloat64(m.generationTokens))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 6)
}
