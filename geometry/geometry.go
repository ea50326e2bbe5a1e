// Package geometry places every beam bin of a PD0 dataset in space.
//
// The engine combines the instrument configuration (beam angle, bin
// spacing, facing) with a platform Pose resampled onto the ensemble
// timestamps. For each ensemble it builds the composite rotation
//
//	R = Rx(roll) * Rz(heading) * Ry(pitch)
//
// and applies it to the beam-relative bin centres and the bottom-track
// vectors, then translates by the platform position.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/mask"
	"github.com/robert-malhotra/go-pd0/pd0"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoPose is returned when geometry is computed before SetPose.
	ErrNoPose = errors.New("geometry: no pose attached")
	// ErrNotCalculated is returned by the getters before Calculate.
	ErrNotCalculated = errors.New("geometry: beam geometry not calculated")
	// ErrPoseLength is returned when a pose does not cover every ensemble.
	ErrPoseLength = errors.New("geometry: pose length does not match ensembles")
)

// Source is the part of a dataset the engine reads. *pd0.Dataset
// implements it.
type Source interface {
	Config() (pd0.Config, error)
	Shape() mask.Shape
	Times() ([]time.Time, error)
	Pitch() []float64
	Roll() []float64
	Heading() []float64
	BottomTrackRange() (*mat.Dense, error)
	Mask() *mask.Engine
}

var _ Source = (*pd0.Dataset)(nil)

// Options controls how the instrument is mounted on the platform.
type Options struct {
	// Rotation is the clockwise angle in degrees from the platform's forward
	// axis to beam 3.
	Rotation float64
	// Offset is the vector from the position reference point to the centre
	// of the transducer face, in metres.
	Offset [3]float64
	// BeamSeparation is the radial distance from the face centre to each
	// transducer, in metres.
	BeamSeparation float64
}

// DefaultOptions returns a centred, unrotated mount with 0.1 m beam
// separation.
func DefaultOptions() Options {
	return Options{BeamSeparation: 0.1}
}

// Engine computes beam geometry for one dataset.
type Engine struct {
	src   Source
	cfg   pd0.Config
	shape mask.Shape

	pose *Samples

	relative [3]pd0.Cube
	absolute [3]pd0.Cube
	hab      [3]pd0.Cube
	bottom   *mat.Dense
	done     bool
}

// New returns an engine for src. The dataset must have ensembles loaded.
func New(src Source) (*Engine, error) {
	cfg, err := src.Config()
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}
	return &Engine{src: src, cfg: cfg, shape: src.Shape()}, nil
}

// SetPose resamples p onto the ensemble timestamps and attaches it. With
// useSensorOrientation set, the pose's pitch, roll and heading are replaced
// by the instrument's own tilt and compass readings. Any previously
// calculated geometry is discarded.
func (g *Engine) SetPose(p Pose, useSensorOrientation bool) error {
	times, err := g.src.Times()
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	s, err := p.ResampleTo(times)
	if err != nil {
		return err
	}
	if err := s.check(); err != nil {
		return err
	}
	if s.Len() != g.shape.Ensembles {
		return fmt.Errorf("pose has %d rows for %d ensembles: %w", s.Len(), g.shape.Ensembles, ErrPoseLength)
	}
	if useSensorOrientation {
		s.Pitch = g.src.Pitch()
		s.Roll = g.src.Roll()
		s.Heading = g.src.Heading()
	}
	g.pose = &s
	g.done = false
	return nil
}

// Pose returns the attached pose resampled onto the ensembles.
func (g *Engine) Pose() (Samples, error) {
	if g.pose == nil {
		return Samples{}, ErrNoPose
	}
	return *g.pose, nil
}

// BinMidpoints returns the distance in metres from the transducer to the
// centre of each bin along the beam.
func (g *Engine) BinMidpoints() []float64 {
	out := make([]float64, g.cfg.Cells)
	for i := range out {
		out[i] = g.cfg.Bin1Distance + float64(i)*g.cfg.CellLength
	}
	return out
}

// BinMidpointDepths returns bin centre depths for an instrument at a fixed
// depth, ignoring beam angle and tilt.
func (g *Engine) BinMidpointDepths(instrumentDepth float64) []float64 {
	sign := 1.0
	if g.cfg.System.Facing == ensemble.Up {
		sign = -1
	}
	out := g.BinMidpoints()
	for i, d := range out {
		out[i] = instrumentDepth + sign*d
	}
	return out
}

// BinMidpointHAB returns bin centre heights above the bed for an instrument
// at a fixed height.
func (g *Engine) BinMidpointHAB(instrumentHAB float64) []float64 {
	sign := -1.0
	if g.cfg.System.Facing == ensemble.Up {
		sign = 1
	}
	out := g.BinMidpoints()
	for i, d := range out {
		out[i] = instrumentHAB + sign*d
	}
	return out
}

func (g *Engine) beamAngle() float64 {
	if g.cfg.BeamAngle > 0 {
		return g.cfg.BeamAngle
	}
	return g.cfg.System.BeamAngle
}

// origins returns each beam's transducer position relative to the position
// reference point, in platform axes.
func (g *Engine) origins(opts Options) []vec3 {
	dr := opts.BeamSeparation
	face := []vec3{{dr, 0, 0}, {-dr, 0, 0}, {0, dr, 0}, {0, -dr, 0}}
	if g.cfg.System.Facing == ensemble.Up {
		face[0], face[1] = face[1], face[0]
	}
	rz := RotZ(opts.Rotation)
	out := make([]vec3, g.shape.Beams)
	for b := range out {
		var o vec3
		if b < len(face) {
			o = face[b]
		}
		out[b] = o.add(vec3(opts.Offset)).times(rz)
	}
	return out
}

// tilts returns the fixed rotation from the instrument axis onto each beam.
// Beams 1 and 2 lean about y, beams 3 and 4 about x. Any further beam is
// vertical.
func (g *Engine) tilts() []*mat.Dense {
	theta := g.beamAngle()
	out := make([]*mat.Dense, g.shape.Beams)
	for b := range out {
		switch b {
		case 0:
			out[b] = RotY(-theta)
		case 1:
			out[b] = RotY(theta)
		case 2:
			out[b] = RotX(theta)
		case 3:
			out[b] = RotX(-theta)
		default:
			out[b] = identity()
		}
	}
	return out
}

// Calculate computes the relative, absolute and height-above-bed position
// of every beam bin, and the tilt-corrected bottom-track range.
func (g *Engine) Calculate(opts Options) error {
	if g.pose == nil {
		return ErrNoPose
	}
	btRange, err := g.src.BottomTrackRange()
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}

	shape := g.shape
	for axis := 0; axis < 3; axis++ {
		g.relative[axis] = pd0.NewCube(shape)
		g.absolute[axis] = pd0.NewCube(shape)
		g.hab[axis] = pd0.NewCube(shape)
	}
	g.bottom = mat.NewDense(shape.Beams, shape.Ensembles, nil)

	along := -1.0
	if g.cfg.System.Facing == ensemble.Up {
		along = 1
	}
	mids := g.BinMidpoints()
	origins := g.origins(opts)
	tilts := g.tilts()
	btBeams, _ := btRange.Dims()
	maxRange := g.cfg.Range()

	// beam-relative bin centres before platform orientation
	beam := make([][]vec3, shape.Beams)
	for b := range beam {
		beam[b] = make([]vec3, shape.Bins)
		for k := range beam[b] {
			beam[b][k] = vec3{0, 0, along * mids[k]}.apply(tilts[b])
		}
	}

	p := g.pose
	for e := 0; e < shape.Ensembles; e++ {
		r := Orientation(p.Pitch[e], p.Roll[e], p.Heading[e])
		pos := vec3{p.X[e], p.Y[e], p.Z[e]}

		for b := 0; b < shape.Beams; b++ {
			vendor := math.NaN()
			if b < btBeams {
				vendor = btRange.At(b, e)
			}
			bt := vec3{0, 0, -vendor}.apply(tilts[b]).times(r)
			corrected := -bt[2]
			// rotation preserves length, so the vendor range swapped in
			// here is never the smaller value
			if corrected > maxRange {
				corrected = vendor
			}
			g.bottom.Set(b, e, corrected)

			for k := 0; k < shape.Bins; k++ {
				rel := origins[b].add(beam[b][k]).times(r)
				abs := pos.add(rel)
				for axis := 0; axis < 3; axis++ {
					g.relative[axis].Set(b, k, e, rel[axis])
					g.absolute[axis].Set(b, k, e, abs[axis])
				}
				g.hab[0].Set(b, k, e, abs[0])
				g.hab[1].Set(b, k, e, abs[1])
				g.hab[2].Set(b, k, e, rel[2]+corrected)
			}
		}
	}
	g.done = true
	return nil
}

// Relative returns the x, y and z offsets of each bin centre from the
// position reference point, rotated into the platform's world frame.
func (g *Engine) Relative(applyMask bool) ([3]pd0.Cube, error) {
	return g.result(g.relative, applyMask)
}

// Absolute returns bin centre positions in the pose's world frame.
func (g *Engine) Absolute(applyMask bool) ([3]pd0.Cube, error) {
	return g.result(g.absolute, applyMask)
}

// AbsoluteHAB is Absolute with z replaced by the height above the bed seen
// by that beam's bottom track. Cells are NaN where no bottom track was
// recorded.
func (g *Engine) AbsoluteHAB(applyMask bool) ([3]pd0.Cube, error) {
	return g.result(g.hab, applyMask)
}

// CorrectedBottomTrack returns the vertical distance to the bed along each
// beam as a beams x ensembles matrix. Where tilt correction yields more
// than the instrument's range, the vendor range is kept.
func (g *Engine) CorrectedBottomTrack() (*mat.Dense, error) {
	if !g.done {
		return nil, ErrNotCalculated
	}
	return mat.DenseCopyOf(g.bottom), nil
}

func (g *Engine) result(src [3]pd0.Cube, applyMask bool) ([3]pd0.Cube, error) {
	var out [3]pd0.Cube
	if !g.done {
		return out, ErrNotCalculated
	}
	for axis, c := range src {
		if !applyMask {
			out[axis] = c.Clone()
			continue
		}
		data, err := g.src.Mask().Apply(c.Data)
		if err != nil {
			return out, fmt.Errorf("geometry: axis %d: %w", axis, err)
		}
		out[axis] = pd0.Cube{Shape: c.Shape, Data: data}
	}
	return out, nil
}
