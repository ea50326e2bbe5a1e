package processing

import (
	"math"
	"slices"
)

// SpikeFilter removes spikes from xs with a centred rolling median and
// median absolute deviation (MAD). A point is a spike when it deviates from
// the rolling median by more than k times the rolling MAD. Spikes and
// existing NaNs are back-filled, then forward-filled. The rolling
// statistics are undefined, and nothing is rejected, where the window runs
// off either end of the series or contains a NaN.
func SpikeFilter(xs []float64, window int, k float64) []float64 {
	out := slices.Clone(xs)
	if window < 1 {
		return out
	}

	med := rollingMedian(xs, window)
	dev := make([]float64, len(xs))
	for i := range xs {
		dev[i] = math.Abs(xs[i] - med[i])
	}
	mad := rollingMedian(dev, window)

	for i := range out {
		// NaN comparisons are false, so undefined windows keep the sample
		if dev[i] > k*mad[i] {
			out[i] = math.NaN()
		}
	}
	backFill(out)
	forwardFill(out)
	return out
}

// rollingMedian returns the median of xs[i-w/2 : i-w/2+w] at each i, or NaN
// where that window is incomplete or holds a NaN.
func rollingMedian(xs []float64, w int) []float64 {
	out := make([]float64, len(xs))
	buf := make([]float64, w)
	for i := range xs {
		lo := i - w/2
		hi := lo + w
		if lo < 0 || hi > len(xs) || slices.ContainsFunc(xs[lo:hi], math.IsNaN) {
			out[i] = math.NaN()
			continue
		}
		copy(buf, xs[lo:hi])
		out[i] = median(buf)
	}
	return out
}

// median sorts xs in place.
func median(xs []float64) float64 {
	slices.Sort(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

func backFill(xs []float64) {
	next := math.NaN()
	for i := len(xs) - 1; i >= 0; i-- {
		if math.IsNaN(xs[i]) {
			xs[i] = next
		} else {
			next = xs[i]
		}
	}
}

func forwardFill(xs []float64) {
	prev := math.NaN()
	for i := range xs {
		if math.IsNaN(xs[i]) {
			xs[i] = prev
		} else {
			prev = xs[i]
		}
	}
}
