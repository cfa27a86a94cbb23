// Package metrics exports the verdict of a run as Prometheus gauges written
// to a node_exporter textfile.
package metrics

import (
	"github.com/ethanolivertroy/bundle-checker/internal/reporter"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bundle_checker"

// RunMetrics tracks the result of one validation run.
//
// Metrics:
//   - bundle_checker_valid: 1 if the bundle satisfied both sets
//   - bundle_checker_modules_scanned: number of module paths checked
//   - bundle_checker_missing_mandatory: mandatory dependencies not bundled
//   - bundle_checker_present_disallowed: disallowed dependencies bundled
//   - bundle_checker_dependency_bundled: per dependency, 1 if bundled
type RunMetrics struct {
	registry *prometheus.Registry

	valid             prometheus.Gauge
	modulesScanned    prometheus.Gauge
	missingMandatory  prometheus.Gauge
	presentDisallowed prometheus.Gauge
	dependencyBundled *prometheus.GaugeVec
}

// New creates run metrics on a fresh registry
func New() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		valid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "valid",
			Help:      "1 if the bundle content is valid, 0 otherwise",
		}),
		modulesScanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "modules_scanned",
			Help:      "Number of module paths checked",
		}),
		missingMandatory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "missing_mandatory",
			Help:      "Number of mandatory dependencies not included in the bundle",
		}),
		presentDisallowed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "present_disallowed",
			Help:      "Number of disallowed dependencies included in the bundle",
		}),
		dependencyBundled: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dependency_bundled",
				Help:      "1 if the dependency is included in the bundle",
			},
			[]string{"dependency", "kind"},
		),
	}

	m.registry.MustRegister(
		m.valid,
		m.modulesScanned,
		m.missingMandatory,
		m.presentDisallowed,
		m.dependencyBundled,
	)

	return m
}

// Observe records a run summary
func (m *RunMetrics) Observe(s reporter.Summary) {
	m.valid.Set(boolToFloat(s.Result.Valid()))
	m.modulesScanned.Set(float64(s.ModulesScanned))
	m.missingMandatory.Set(float64(len(s.Result.MissingMandatory)))
	m.presentDisallowed.Set(float64(len(s.Result.PresentDisallowed)))

	for _, d := range s.Mandatory() {
		m.dependencyBundled.WithLabelValues(d.Name, "mandatory").Set(boolToFloat(d.Bundled))
	}
	for _, d := range s.Disallowed() {
		m.dependencyBundled.WithLabelValues(d.Name, "disallowed").Set(boolToFloat(d.Bundled))
	}
}

// Registry returns the registry the metrics are registered with
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the metrics in text exposition format to path
func (m *RunMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
