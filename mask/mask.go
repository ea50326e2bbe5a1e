// Package mask keeps named boolean exclusion masks over a beams x bins x
// ensembles grid and applies the active ones to data arrays.
//
// A mask value of true keeps the cell; false excludes it. Applying a set of
// masks replaces every cell excluded by any active mask with NaN, so the
// result does not depend on the order masks were defined or toggled.
package mask

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
)

// All selects every mask in SetStatus.
const All = "all"

var (
	ErrShape       = errors.New("mask shape does not match")
	ErrUnknownMask = errors.New("unknown mask")
	ErrEmptyName   = errors.New("mask name is empty")
)

// Shape is the grid a mask engine covers.
type Shape struct {
	Beams     int
	Bins      int
	Ensembles int
}

// Len returns the number of cells.
func (s Shape) Len() int { return s.Beams * s.Bins * s.Ensembles }

// Index returns the flat position of cell (beam, bin, ens).
func (s Shape) Index(beam, bin, ens int) int {
	return (beam*s.Bins+bin)*s.Ensembles + ens
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Beams, s.Bins, s.Ensembles)
}

type entry struct {
	keep   []bool
	active bool
}

// Engine stores masks by name. It is safe for concurrent use.
type Engine struct {
	mu    sync.RWMutex
	shape Shape
	masks map[string]*entry
	order []string
}

// New creates an empty engine for shape.
func New(shape Shape) *Engine {
	return &Engine{shape: shape, masks: make(map[string]*entry)}
}

// Shape returns the grid the engine covers.
func (e *Engine) Shape() Shape { return e.shape }

// Define stores keep under name, replacing any mask of the same name.
func (e *Engine) Define(name string, keep []bool, active bool) error {
	if name == "" || name == All {
		return fmt.Errorf("%q: %w", name, ErrEmptyName)
	}
	if len(keep) != e.shape.Len() {
		return fmt.Errorf("mask %q has %d cells, grid %v has %d: %w", name, len(keep), e.shape, e.shape.Len(), ErrShape)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.masks[name]; !ok {
		e.order = append(e.order, name)
	}
	e.masks[name] = &entry{keep: slices.Clone(keep), active: active}
	return nil
}

// SetStatus activates or deactivates the named masks, or every mask when no
// name or All is given.
func (e *Engine) SetStatus(active bool, names ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(names) == 0 || slices.Contains(names, All) {
		for _, m := range e.masks {
			m.active = active
		}
		return nil
	}
	for _, name := range names {
		if _, ok := e.masks[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownMask)
		}
	}
	for _, name := range names {
		e.masks[name].active = active
	}
	return nil
}

// Remove deletes a mask.
func (e *Engine) Remove(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.masks[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownMask)
	}
	delete(e.masks, name)
	e.order = slices.DeleteFunc(e.order, func(n string) bool { return n == name })
	return nil
}

// Get returns a copy of the named mask and its status.
func (e *Engine) Get(name string) ([]bool, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, ok := e.masks[name]
	if !ok {
		return nil, false, fmt.Errorf("%q: %w", name, ErrUnknownMask)
	}
	return slices.Clone(m.keep), m.active, nil
}

// Names returns all mask names in definition order.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// Active returns the names of the active masks in definition order.
func (e *Engine) Active() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []string
	for _, name := range e.order {
		if e.masks[name].active {
			out = append(out, name)
		}
	}
	return out
}

// Excluded returns, per cell, whether any active mask excludes it.
func (e *Engine) Excluded() []bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]bool, e.shape.Len())
	for _, m := range e.masks {
		if !m.active {
			continue
		}
		for i, keep := range m.keep {
			if !keep {
				out[i] = true
			}
		}
	}
	return out
}

// Apply returns a copy of x with every excluded cell set to NaN.
func (e *Engine) Apply(x []float64) ([]float64, error) {
	if len(x) != e.shape.Len() {
		return nil, fmt.Errorf("array has %d cells, grid %v has %d: %w", len(x), e.shape, e.shape.Len(), ErrShape)
	}
	out := slices.Clone(x)
	for i, ex := range e.Excluded() {
		if ex {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
