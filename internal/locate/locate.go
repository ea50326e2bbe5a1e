package locate

import (
	"errors"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
)

const (
	// DefaultWindow is the number of bytes scanned per search step.
	DefaultWindow = 5000

	// DefaultMaxIter bounds the number of windows a single search reads.
	DefaultMaxIter = 100
)

// ErrNotFound is returned by Seek when the requested ensemble cannot be reached.
var ErrNotFound = errors.New("ensemble not found")

// Outcome is the terminal state of a search.
type Outcome uint8

const (
	Found Outcome = iota + 1
	GaveUp
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case GaveUp:
		return "gave up"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Result reports where a search ended. On GaveUp, Offset is the file size
// for forward searches and 0 for backward ones, and Ensemble is nil.
type Result struct {
	Outcome  Outcome
	Offset   int64
	Ensemble *ensemble.Ensemble
}

// Locator finds valid ensembles in a byte stream.
type Locator struct {
	r       io.ReaderAt
	size    int64
	window  int
	maxIter int
}

// Option configures a Locator.
type Option func(*Locator)

// WithWindow sets the scan window in bytes.
func WithWindow(n int) Option {
	return func(l *Locator) {
		if n > 1 {
			l.window = n
		}
	}
}

// WithMaxIter sets the window budget of a single search.
func WithMaxIter(n int) Option {
	return func(l *Locator) {
		if n > 0 {
			l.maxIter = n
		}
	}
}

// New creates a locator over the first size bytes of r.
func New(r io.ReaderAt, size int64, opts ...Option) *Locator {
	l := &Locator{r: r, size: size, window: DefaultWindow, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Size returns the length of the searched stream.
func (l *Locator) Size() int64 { return l.size }

// Next returns the first valid ensemble starting at or after from. With skip
// set, a signature at from itself is not considered.
func (l *Locator) Next(from int64, skip bool) Result {
	start := max(from, 0)
	if skip {
		start++
	}
	for iter := 0; iter < l.maxIter && start < l.size; iter++ {
		buf, err := l.read(start, l.window+1)
		if err != nil {
			break
		}
		for i := 0; i+1 < len(buf) && i < l.window; i++ {
			if buf[i] != ensemble.Signature || buf[i+1] != ensemble.Signature {
				continue
			}
			if e, err := ensemble.DecodeValid(l.r, start+int64(i)); err == nil {
				return Result{Outcome: Found, Offset: e.Offset, Ensemble: e}
			}
		}
		start += int64(l.window)
	}
	return Result{Outcome: GaveUp, Offset: l.size}
}

// Previous returns the last valid ensemble starting at or before from. With
// skip set, a signature at from itself is not considered.
func (l *Locator) Previous(from int64, skip bool) Result {
	hi := min(from, l.size-1)
	if skip {
		hi = min(hi, from-1)
	}
	for iter := 0; iter < l.maxIter && hi >= 0; iter++ {
		lo := max(hi-int64(l.window)+1, 0)
		buf, err := l.read(lo, int(hi-lo)+2)
		if err != nil {
			break
		}
		for i := int(hi - lo); i >= 0; i-- {
			if i+1 >= len(buf) || buf[i] != ensemble.Signature || buf[i+1] != ensemble.Signature {
				continue
			}
			if e, err := ensemble.DecodeValid(l.r, lo+int64(i)); err == nil {
				return Result{Outcome: Found, Offset: e.Offset, Ensemble: e}
			}
		}
		hi = lo - 1
	}
	return Result{Outcome: GaveUp, Offset: 0}
}

// read returns up to n bytes at off, fewer at the end of the stream.
func (l *Locator) read(off int64, n int) ([]byte, error) {
	n = int(min(int64(n), l.size-off))
	if n <= 0 {
		return nil, io.EOF
	}
	buf := make([]byte, n)
	got, err := l.r.ReadAt(buf, off)
	if got == 0 && err != nil {
		return nil, err
	}
	return buf[:got], nil
}
