package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linestream/errors"
)

func newCounter(name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linestream",
		Subsystem: "test",
		Name:      name,
	})
}

func TestRegistry(t *testing.T) {
	t.Run("register and unregister", func(t *testing.T) {
		registry := NewRegistry()

		require.NoError(t, registry.RegisterCounter("reader", "lines", newCounter("lines_total")))
		assert.True(t, registry.Unregister("reader", "lines"))
		assert.False(t, registry.Unregister("reader", "lines"))
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		registry := NewRegistry()

		require.NoError(t, registry.RegisterCounter("reader", "lines", newCounter("lines_total")))
		err := registry.RegisterCounter("reader", "lines", newCounter("lines_total"))
		require.Error(t, err)
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("prometheus name conflict rejected", func(t *testing.T) {
		registry := NewRegistry()

		require.NoError(t, registry.RegisterCounter("reader", "lines", newCounter("lines_total")))
		// Same fully-qualified Prometheus name under a different component key.
		err := registry.RegisterCounter("other", "lines", newCounter("lines_total"))
		require.Error(t, err)
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("gauge and histogram", func(t *testing.T) {
		registry := NewRegistry()

		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "linestream", Subsystem: "test", Name: "columns",
		})
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "linestream", Subsystem: "test", Name: "line_bytes",
		})

		require.NoError(t, registry.RegisterGauge("reader", "columns", gauge))
		require.NoError(t, registry.RegisterHistogram("reader", "line_bytes", histogram))
	})
}
