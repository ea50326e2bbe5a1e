package processing

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-pd0/geometry"
	"github.com/robert-malhotra/go-pd0/pd0"
)

// Mask names registered by this package.
const (
	MaskNameBottomTrack   = "bottom track"
	MaskNamePlatformDepth = "By Platform Depth"
)

// defineRange keeps cells of field f whose value lies in [lo, hi].
func defineRange(ds *pd0.Dataset, f pd0.Field, lo, hi float64) (string, error) {
	c, err := ds.EnsembleArray(f, false)
	if err != nil {
		return "", err
	}
	keep := make([]bool, len(c.Data))
	for i, v := range c.Data {
		keep[i] = v >= lo && v <= hi
	}
	name := fmt.Sprintf("%s [%g, %g]", f, lo, hi)
	if err := ds.Mask().Define(name, keep, true); err != nil {
		return "", err
	}
	return name, nil
}

// MaskCorrelation excludes cells whose correlation magnitude is outside
// [lo, hi] and returns the mask name.
func MaskCorrelation(ds *pd0.Dataset, lo, hi float64) (string, error) {
	return defineRange(ds, pd0.FieldCorrelation, lo, hi)
}

// MaskBackscatter excludes cells whose absolute backscatter (dB) is outside
// [lo, hi]. AbsoluteBackscatter must have been run.
func MaskBackscatter(ds *pd0.Dataset, lo, hi float64) (string, error) {
	return defineRange(ds, pd0.FieldBackscatter, lo, hi)
}

// MaskSignalToNoise excludes cells whose signal to noise ratio is outside
// [lo, hi]. AbsoluteBackscatter must have been run.
func MaskSignalToNoise(ds *pd0.Dataset, lo, hi float64) (string, error) {
	return defineRange(ds, pd0.FieldSignalToNoise, lo, hi)
}

// MaskPlatformDepth excludes every ensemble whose platform z lies outside
// [lo, hi]. z is one value per ensemble, typically Samples.Z from the
// geometry pose.
func MaskPlatformDepth(ds *pd0.Dataset, z []float64, lo, hi float64) error {
	shape := ds.Shape()
	if len(z) != shape.Ensembles {
		return fmt.Errorf("platform z has %d values for %d ensembles: %w", len(z), shape.Ensembles, pd0.ErrShape)
	}
	keep := make([]bool, shape.Len())
	for b := 0; b < shape.Beams; b++ {
		for k := 0; k < shape.Bins; k++ {
			for e, v := range z {
				keep[shape.Index(b, k, e)] = v >= lo && v <= hi
			}
		}
	}
	return ds.Mask().Define(MaskNamePlatformDepth, keep, true)
}

// BottomTrackOptions controls MaskBottomTrack.
type BottomTrackOptions struct {
	// CellOffset widens (positive) or narrows (negative) the masked band
	// above the bed, in cells.
	CellOffset int
	// Spike enables SpikeFilter on each beam's range series.
	Spike     bool
	Window    int
	Threshold float64
}

// DefaultBottomTrackOptions matches the usual processing defaults: no
// offset, spike filter off with a 10 sample window and k = 5 when enabled.
func DefaultBottomTrackOptions() BottomTrackOptions {
	return BottomTrackOptions{Window: 10, Threshold: 5}
}

// MaskBottomTrack excludes bins at or beyond the bed as seen by each beam's
// bottom track, including the cell straddling it. A range of zero means no
// detection and keeps the column. Missing ranges, from pings with zero
// percent good or ensembles without bottom track, exclude the column. It
// reports whether a mask was defined; nothing is defined when the file holds
// no usable bottom track at all.
func MaskBottomTrack(ds *pd0.Dataset, opts BottomTrackOptions) (bool, error) {
	bt, err := ds.BottomTrackRange()
	if err != nil {
		return false, err
	}
	pg, err := ds.BottomTrackPercentGood()
	if err != nil {
		return false, err
	}
	g, err := geometry.New(ds)
	if err != nil {
		return false, err
	}
	cfg, err := ds.Config()
	if err != nil {
		return false, err
	}

	beams, n := bt.Dims()
	ranges := make([][]float64, beams)
	usable := false
	for b := range ranges {
		row := make([]float64, n)
		for e := range row {
			row[e] = bt.At(b, e)
		}
		if opts.Spike {
			row = SpikeFilter(row, opts.Window, opts.Threshold)
		}
		for e := range row {
			if !(pg.At(b, e) > 0) {
				row[e] = math.NaN()
			}
			if !math.IsNaN(row[e]) {
				usable = true
			}
		}
		ranges[b] = row
	}
	if !usable {
		return false, nil
	}

	shape := ds.Shape()
	mids := g.BinMidpoints()
	offset := float64(opts.CellOffset) * cfg.CellLength
	keep := make([]bool, shape.Len())
	for b := 0; b < shape.Beams; b++ {
		for k := 0; k < shape.Bins; k++ {
			for e := 0; e < shape.Ensembles; e++ {
				ok := true
				if b < beams {
					// zero is the no-detection value; NaN compares false
					if r := ranges[b][e]; r != 0 {
						ok = r-cfg.CellLength > mids[k]+offset
					}
				}
				keep[shape.Index(b, k, e)] = ok
			}
		}
	}
	if err := ds.Mask().Define(MaskNameBottomTrack, keep, true); err != nil {
		return false, err
	}
	return true, nil
}
