package locate

import "fmt"

// RolloverSpan is the range of the 16-bit ensemble counter.
const RolloverSpan = 65536

// Index describes how ensembles are laid out in a file, as learned from its
// first and last valid ensembles.
type Index struct {
	First  uint32 // number of the first ensemble
	Origin int64  // offset of the first ensemble
	Stride int64  // mean bytes per ensemble
	Count  int    // ensembles between first and last, inclusive
}

// Relative returns the 1-based position of number after first, allowing for
// a 16-bit counter that wrapped without the rollover byte.
func Relative(number, first uint32) int {
	if number < first {
		return int(number) + RolloverSpan - int(first) + 1
	}
	return int(number-first) + 1
}

// Seek finds the ensemble at relative position target. The search starts
// at the offset predicted by ix and steps one valid ensemble at a time
// toward the target, taking at most ix.Count steps.
func (l *Locator) Seek(ix Index, target int) (Result, error) {
	if target < 1 || (ix.Count > 0 && target > ix.Count) {
		return Result{}, fmt.Errorf("ensemble %d: %w", target, ErrNotFound)
	}
	res := l.Next(ix.Origin+int64(target-1)*ix.Stride, false)
	if res.Outcome != Found {
		res = l.Previous(l.size, false)
	}

	limit := ix.Count
	if limit <= 0 {
		limit = RolloverSpan
	}
	var lastDir int
	turns := 0
	for step := 0; ; step++ {
		if res.Outcome != Found {
			return res, fmt.Errorf("ensemble %d: %w", target, ErrNotFound)
		}
		diff := Relative(res.Ensemble.Number(), ix.First) - target
		if diff == 0 {
			return res, nil
		}
		if step >= limit {
			return res, fmt.Errorf("ensemble %d: no match after %d steps: %w", target, step, ErrNotFound)
		}
		dir := 1
		if diff > 0 {
			dir = -1
		}
		if lastDir != 0 && dir != lastDir {
			// Stepping back over the target means it is not in the file.
			if turns++; turns > 1 {
				return res, fmt.Errorf("ensemble %d: missing from file: %w", target, ErrNotFound)
			}
		}
		lastDir = dir
		if dir > 0 {
			res = l.Next(res.Offset, true)
		} else {
			res = l.Previous(res.Offset, true)
		}
	}
}
