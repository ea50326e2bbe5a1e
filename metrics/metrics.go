// Package metrics exposes decode counters for PD0 files.
//
// All methods accept a nil *Decoder so callers need not check whether
// metrics were configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pd0"

// Decoder holds the counters updated while reading ensembles.
type Decoder struct {
	registry *prometheus.Registry

	files              prometheus.Counter
	ensembles          prometheus.Counter
	checksumMismatches prometheus.Counter
	resyncs            prometheus.Counter
	skippedBytes       prometheus.Counter
	readDuration       prometheus.Histogram
}

// New registers the decode metrics on a fresh registry.
func New() *Decoder {
	d := &Decoder{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_read_total",
			Help:      "Number of PD0 files read.",
		}),
		ensembles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ensembles_decoded_total",
			Help:      "Number of valid ensembles decoded.",
		}),
		checksumMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checksum_mismatches_total",
			Help:      "Number of accepted ensembles whose checksum did not match.",
		}),
		resyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resyncs_total",
			Help:      "Number of times reading re-synchronised after an invalid ensemble.",
		}),
		skippedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_bytes_total",
			Help:      "Bytes passed over while re-synchronising.",
		}),
		readDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "read_duration_seconds",
			Help:      "Time spent reading an ensemble range.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	d.registry.MustRegister(d.files, d.ensembles, d.checksumMismatches, d.resyncs, d.skippedBytes, d.readDuration)
	return d
}

// Registry returns the registry holding the decode metrics.
func (d *Decoder) Registry() *prometheus.Registry {
	if d == nil {
		return nil
	}
	return d.registry
}

// FileRead counts one opened file.
func (d *Decoder) FileRead() {
	if d == nil {
		return
	}
	d.files.Inc()
}

// ReadDone records the outcome of one ensemble range read.
func (d *Decoder) ReadDone(loaded, mismatches, resyncs int, skipped int64, elapsed time.Duration) {
	if d == nil {
		return
	}
	d.ensembles.Add(float64(loaded))
	d.checksumMismatches.Add(float64(mismatches))
	d.resyncs.Add(float64(resyncs))
	d.skippedBytes.Add(float64(skipped))
	d.readDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the metrics in the node exporter textfile format.
func (d *Decoder) WriteTextfile(path string) error {
	if d == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, d.registry)
}
