// Package metrics exposes Prometheus counters for remote calls and exports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mixget"

// Outcome labels.
const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeCompleted      = "completed"
	OutcomeFailed         = "failed"
	OutcomeTimeout        = "timeout"
)

// Recorder owns a private registry. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	attempts      *prometheus.CounterVec
	polls         prometheus.Counter
	exports       *prometheus.CounterVec
	downloadBytes prometheus.Counter
}

// New registers the counters on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_attempts_total",
			Help:      "HTTP attempts against the animation service, by method and outcome.",
		}, []string{"method", "outcome"}),
		polls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Export job monitor polls.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export jobs by final outcome.",
		}, []string{"outcome"}),
		downloadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_bytes_total",
			Help:      "Bytes of model files downloaded.",
		}),
	}
	r.registry.MustRegister(r.attempts, r.polls, r.exports, r.downloadBytes)
	return r
}

// Registry returns the registry holding the counters.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveAttempt counts one HTTP attempt; a non-nil err is a transport failure.
func (r *Recorder) ObserveAttempt(method string, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeTransportError
	}
	r.attempts.WithLabelValues(method, outcome).Inc()
}

// ObservePoll counts one monitor poll.
func (r *Recorder) ObservePoll() {
	if r == nil {
		return
	}
	r.polls.Inc()
}

// ObserveExport counts one finished export job.
func (r *Recorder) ObserveExport(outcome string) {
	if r == nil {
		return
	}
	r.exports.WithLabelValues(outcome).Inc()
}

// ObserveDownload adds n downloaded bytes.
func (r *Recorder) ObserveDownload(n int) {
	if r == nil {
		return
	}
	r.downloadBytes.Add(float64(n))
}

// WriteTextfile dumps the counters in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
