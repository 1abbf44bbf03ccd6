package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the preview server's Prometheus collectors.
type metrics struct {
	renders       *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	droppedProps  *prometheus.CounterVec
	wsConnections prometheus.Gauge
}

// newMetrics registers the collectors with reg.
//
// Metrics collected:
//   - styled_renders_total: renders by component and status
//   - styled_render_duration_seconds: render duration by component
//   - styled_dropped_props_total: props that mapped to no style property
//   - styled_ws_connections: open live render connections
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "styled",
			Name:      "renders_total",
			Help:      "Total number of component renders",
		}, []string{"component", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "styled",
			Name:      "render_duration_seconds",
			Help:      "Component render duration in seconds",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"component"}),

		droppedProps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "styled",
			Name:      "dropped_props_total",
			Help:      "Total number of props that did not map to a style property",
		}, []string{"component"}),

		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "styled",
			Name:      "ws_connections",
			Help:      "Number of open live render connections",
		}),
	}
}
