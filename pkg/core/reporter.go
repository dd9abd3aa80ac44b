/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for evaluation telemetry.
Reporters observe finished evaluations through logging and Prometheus metrics.
They never influence results.
*/

package core

import (
	"sync"
	"time"

	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Reporter defines the interface for telemetry hooks.
type Reporter interface {
	// OnEvaluation is called after every evaluation, known organism or not.
	OnEvaluation(eval *interfaces.Evaluation, duration time.Duration)
}

// LoggerReporter logs evaluations using logrus.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &LoggerReporter{logger: logger}
}

// OnEvaluation logs a one-line evaluation summary.
func (r *LoggerReporter) OnEvaluation(eval *interfaces.Evaluation, duration time.Duration) {
	fields := logrus.Fields{
		"organism":   eval.Organism,
		"duration":   duration,
		"mechanisms": len(eval.Findings.Mechanisms),
		"cautions":   len(eval.Findings.Cautions),
		"citations":  len(eval.CitationIDs),
	}
	switch {
	case !eval.Known:
		r.logger.WithFields(fields).Warn("Unknown organism evaluated")
	case len(eval.Findings.Cautions) > 0:
		r.logger.WithFields(fields).Warn("Evaluation raised cautions")
	default:
		r.logger.WithFields(fields).Info("Evaluation complete")
	}
}

// PrometheusReporter exports evaluation metrics.
type PrometheusReporter struct {
	evaluations *prometheus.CounterVec
	findings    *prometheus.CounterVec
	duration    prometheus.Histogram
}

var (
	defaultPromOnce     sync.Once
	defaultPromReporter *PrometheusReporter
)

// NewPrometheusReporter creates a reporter and registers its collectors on reg.
// A nil registerer leaves the collectors unregistered.
func NewPrometheusReporter(reg prometheus.Registerer) (*PrometheusReporter, error) {
	r := &PrometheusReporter{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mechid",
			Name:      "evaluations_total",
			Help:      "Evaluations run, by organism and whether it was known.",
		}, []string{"organism", "known"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mechid",
			Name:      "findings_total",
			Help:      "Findings produced, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mechid",
			Name:      "evaluation_duration_seconds",
			Help:      "Pipeline latency per evaluation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{r.evaluations, r.findings, r.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// DefaultPrometheusReporter returns a reporter registered once on the default registry.
func DefaultPrometheusReporter() *PrometheusReporter {
	defaultPromOnce.Do(func() {
		defaultPromReporter, _ = NewPrometheusReporter(prometheus.DefaultRegisterer)
	})
	return defaultPromReporter
}

// OnEvaluation records counters and latency.
func (r *PrometheusReporter) OnEvaluation(eval *interfaces.Evaluation, duration time.Duration) {
	// Unknown names are free text, so they share one label value.
	organism, known := "unknown", "false"
	if eval.Known {
		organism, known = eval.Organism, "true"
	}
	r.evaluations.WithLabelValues(organism, known).Inc()
	r.duration.Observe(duration.Seconds())

	for _, kind := range interfaces.FindingKinds {
		if items := eval.Findings.ByKind(kind); len(items) > 0 {
			r.findings.WithLabelValues(string(kind)).Add(float64(len(items)))
		}
	}
}

// Collectors exposes the underlying collectors, mainly for tests.
func (r *PrometheusReporter) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.evaluations, r.findings, r.duration}
}
