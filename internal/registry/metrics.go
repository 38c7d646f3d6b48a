package registry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/agility/internal/logging"
	"github.com/mesh-intelligence/agility/pkg/types"
)

// Query modes recorded in the mode label.
const (
	modeStrict  = "strict"
	modeLenient = "lenient"
	modeCheck   = "check"
)

type metrics struct {
	typesDefined *prometheus.CounterVec
	queries      *prometheus.CounterVec
}

// Metric names.
const (
	metricTypesDefined = "agility_types_defined_total"
	metricQueries      = "agility_capability_queries_total"
)

// WithRegisterer enables Prometheus counters registered on reg. Collectors
// already registered on reg are reused; any other registration failure is
// logged and leaves that counter unexported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.registerer = reg
	}
}

func newMetrics(reg prometheus.Registerer, logger logging.Logger) *metrics {
	m := &metrics{
		typesDefined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricTypesDefined,
			Help: "Number of types defined, by trait.",
		}, []string{"trait"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricQueries,
			Help: "Number of marker capability queries, by mode and result.",
		}, []string{"mode", "result"}),
	}
	m.typesDefined = register(reg, logger, metricTypesDefined, m.typesDefined)
	m.queries = register(reg, logger, metricQueries, m.queries)
	return m
}

func register(reg prometheus.Registerer, logger logging.Logger, name string, c *prometheus.CounterVec) *prometheus.CounterVec {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing
		}
	}
	logger.Error("metrics registration failed", "metric", name, "error", err)
	return c
}

func (m *metrics) defined(t types.TypeTrait) {
	if m == nil {
		return
	}
	m.typesDefined.WithLabelValues(t.String()).Inc()
}

func (m *metrics) queried(mode string, present bool) {
	if m == nil {
		return
	}
	result := "absent"
	if present {
		result = "present"
	}
	m.queries.WithLabelValues(mode, result).Inc()
}
