package breaker

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts search work. A nil *Metrics records nothing.
type Metrics struct {
	SingleByteTrials prometheus.Counter
	KeySizeTrials    prometheus.Counter
	CacheHits        prometheus.Counter
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SingleByteTrials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xorcrack_single_byte_trials_total",
			Help: "Single-byte XOR keys tried.",
		}),
		KeySizeTrials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xorcrack_keysize_trials_total",
			Help: "Repeating-key sizes scored.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "xorcrack_detect_cache_hits_total",
			Help: "Detect lines answered from the cache.",
		}),
	}
	reg.MustRegister(m.SingleByteTrials, m.KeySizeTrials, m.CacheHits)
	return m
}

func (m *Metrics) addTrials(n int) {
	if m == nil {
		return
	}
	m.SingleByteTrials.Add(float64(n))
}

func (m *Metrics) addKeySizeTrial() {
	if m == nil {
		return
	}
	m.KeySizeTrials.Inc()
}

func (m *Metrics) addCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}
