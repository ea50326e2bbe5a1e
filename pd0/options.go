package pd0

import (
	"log/slog"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/locate"
	"github.com/robert-malhotra/go-pd0/metrics"
)

// Option configures how a file is opened.
type Option func(*options)

type options struct {
	load      bool
	start     int
	end       int
	tz        time.Duration
	deviation float64
	window    int
	maxIter   int
	logger    *slog.Logger
	metrics   *metrics.Decoder
}

func defaultOptions() *options {
	return &options{
		load:    true,
		window:  locate.DefaultWindow,
		maxIter: locate.DefaultMaxIter,
		logger:  slog.Default(),
	}
}

// WithRange limits the initial load to ensembles start through end, counted
// from 1 at the first ensemble of the file. Zero leaves a bound at its default.
func WithRange(start, end int) Option {
	return func(o *options) {
		o.start = start
		o.end = end
	}
}

// WithoutLoad opens the file and reads its metadata only.
func WithoutLoad() Option {
	return func(o *options) {
		o.load = false
	}
}

// WithTimezone shifts every ensemble timestamp by offset.
func WithTimezone(offset time.Duration) Option {
	return func(o *options) {
		o.tz = offset
	}
}

// WithMagneticDeviation rotates horizontal velocities by deg degrees.
func WithMagneticDeviation(deg float64) Option {
	return func(o *options) {
		o.deviation = deg
	}
}

// WithSearch sets the locator scan window in bytes and its window budget.
func WithSearch(window, maxIter int) Option {
	return func(o *options) {
		if window > 1 {
			o.window = window
		}
		if maxIter > 0 {
			o.maxIter = maxIter
		}
	}
}

// WithLogger sets the logger used for decode warnings and progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records decode counters on m.
func WithMetrics(m *metrics.Decoder) Option {
	return func(o *options) {
		o.metrics = m
	}
}
