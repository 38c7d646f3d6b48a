package registry

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/agility/internal/logging"
	"github.com/mesh-intelligence/agility/pkg/types"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(WithRegisterer(reg))

	_, err := r.Define("Widget")
	require.NoError(t, err)
	_, err = r.Define("Window", types.WithTrait(types.TraitConfined))
	require.NoError(t, err)
	_, err = r.Define("Window")
	require.Error(t, err)

	w, err := r.NewHandle("Widget")
	require.NoError(t, err)
	c, err := r.NewHandle("Window")
	require.NoError(t, err)

	_, _ = r.QueryCapability(w, types.MarkerAgile)
	_, _ = r.QueryCapability(c, types.MarkerAgile)
	r.TryQueryCapability(c, types.MarkerAgile)
	r.IsAgile(w)

	m := r.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.typesDefined.WithLabelValues("agile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.typesDefined.WithLabelValues("confined")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(modeStrict, "present")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(modeStrict, "absent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(modeLenient, "absent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(modeCheck, "present")))
}

func TestMetrics_ReuseRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(WithRegisterer(reg))
	second := New(WithRegisterer(reg))

	_, err := first.Define("A")
	require.NoError(t, err)
	_, err = second.Define("B")
	require.NoError(t, err)

	assert.Same(t, first.metrics.typesDefined, second.metrics.typesDefined)
	assert.Equal(t, 2.0, testutil.ToFloat64(second.metrics.typesDefined.WithLabelValues("agile")))
}

func TestMetrics_RegistrationFailureIsLogged(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metricTypesDefined,
		Help: "Same name, different labels.",
	}, []string{"kind"})
	require.NoError(t, reg.Register(clash))

	var buf bytes.Buffer
	r := New(
		WithRegisterer(reg),
		WithLogger(logging.New(logging.Options{Level: "error", Output: &buf})),
	)

	out := buf.String()
	assert.Contains(t, out, `msg="metrics registration failed"`)
	assert.Contains(t, out, "metric="+metricTypesDefined)
	assert.NotContains(t, out, "metric="+metricQueries)

	_, err := r.Define("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.typesDefined.WithLabelValues("agile")))
}

func TestMetrics_Disabled(t *testing.T) {
	r := New()
	assert.Nil(t, r.metrics)

	_, err := r.Define("A")
	require.NoError(t, err)
	h, err := r.NewHandle("A")
	require.NoError(t, err)
	assert.True(t, r.IsAgile(h))
}
