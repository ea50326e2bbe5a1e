package pd0

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/internal/locate"
	"github.com/robert-malhotra/go-pd0/mask"
)

// Metadata describes a file as found by scanning its first and last
// valid ensembles.
type Metadata struct {
	Path            string
	Size            int64
	FirstNumber     uint32
	LastNumber      uint32
	FirstOffset     int64
	LastOffset      int64
	FirstTime       time.Time
	LastTime        time.Time
	EnsembleSize    int64 // bytes, taken from the first ensemble
	EnsemblesInFile int
}

// Report summarises one ReadEnsembles call.
type Report struct {
	Requested          int
	Loaded             int
	ChecksumMismatches int
	Resyncs            int
	SkippedBytes       int64
	OutOfSequence      int
	Truncated          bool
}

// Dataset is a PD0 file and the ensembles loaded from it.
type Dataset struct {
	path string
	opts *options
	log  *slog.Logger
	meta Metadata

	ensembles []*ensemble.Ensemble
	masks     *mask.Engine
	derived   map[Field]Cube
}

// Open scans path for its first and last valid ensembles and, unless
// WithoutLoad is given, reads the requested range.
func Open(path string, opts ...Option) (*Dataset, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	d := &Dataset{
		path:    path,
		opts:    o,
		log:     o.logger.With("file", filepath.Base(path)),
		derived: make(map[Field]Cube),
	}
	loc := d.locator(f, st.Size())
	if err := d.scan(loc); err != nil {
		return nil, err
	}
	o.metrics.FileRead()

	if !o.load {
		return d, nil
	}
	start, end := o.start, o.end
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = d.meta.EnsemblesInFile
	}
	if _, err := d.readRange(f, loc, start, end); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) locator(r io.ReaderAt, size int64) *locate.Locator {
	return locate.New(r, size, locate.WithWindow(d.opts.window), locate.WithMaxIter(d.opts.maxIter))
}

func (d *Dataset) scan(loc *locate.Locator) error {
	first := loc.Next(0, false)
	if first.Outcome != locate.Found {
		return fmt.Errorf("%s: %w", d.path, ErrNoEnsembles)
	}
	last := loc.Previous(loc.Size(), false)
	if last.Outcome != locate.Found {
		last = first
	}

	m := Metadata{
		Path:         d.path,
		Size:         loc.Size(),
		FirstNumber:  first.Ensemble.Number(),
		LastNumber:   last.Ensemble.Number(),
		FirstOffset:  first.Offset,
		LastOffset:   last.Offset,
		EnsembleSize: first.Ensemble.Size(),
	}
	// Both passed the validity predicate, so their clocks parse.
	m.FirstTime, _ = first.Ensemble.Time(d.opts.tz)
	m.LastTime, _ = last.Ensemble.Time(d.opts.tz)
	m.EnsemblesInFile = locate.Relative(m.LastNumber, m.FirstNumber)
	d.meta = m

	d.log.Debug("scanned file",
		"size", m.Size,
		"first", m.FirstNumber,
		"last", m.LastNumber,
		"ensembles", m.EnsemblesInFile,
		"ensemble_size", m.EnsembleSize)
	return nil
}

// ReadEnsembles loads ensembles start through end, counted from 1 at the
// first ensemble of the file, and appends them to the dataset. Ensembles
// whose numbers do not increase past the last loaded one are skipped.
func (d *Dataset) ReadEnsembles(start, end int) (Report, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return Report{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Report{}, fmt.Errorf("stat: %w", err)
	}
	return d.readRange(f, d.locator(f, st.Size()), start, end)
}

// relative maps an ensemble number onto the 1-based position in the file.
func (d *Dataset) relative(number uint32) int {
	return locate.Relative(number, d.meta.FirstNumber)
}

// index returns the layout used to seek. The stride is the mean spacing
// of the first and last ensembles, since ensembles with and without bottom
// track differ in size.
func (d *Dataset) index() locate.Index {
	m := d.meta
	stride := m.EnsembleSize
	if m.EnsemblesInFile > 1 && m.LastOffset > m.FirstOffset {
		stride = (m.LastOffset - m.FirstOffset) / int64(m.EnsemblesInFile-1)
	}
	return locate.Index{
		First:  m.FirstNumber,
		Origin: m.FirstOffset,
		Stride: stride,
		Count:  m.EnsemblesInFile,
	}
}

func (d *Dataset) readRange(r io.ReaderAt, loc *locate.Locator, start, end int) (Report, error) {
	if start < 1 || end < start || end > d.meta.EnsemblesInFile {
		return Report{}, fmt.Errorf("[%d, %d] of %d ensembles: %w", start, end, d.meta.EnsemblesInFile, ErrInvalidRange)
	}
	began := time.Now()
	rep := Report{Requested: end - start + 1}

	res, err := loc.Seek(d.index(), start)
	if err != nil {
		// The start ensemble may be missing; begin at the first one after it.
		if res.Outcome != locate.Found {
			res = loc.Next(d.meta.FirstOffset, false)
		}
		for res.Outcome == locate.Found && d.relative(res.Ensemble.Number()) > start {
			prev := loc.Previous(res.Offset, true)
			if prev.Outcome != locate.Found {
				break
			}
			res = prev
		}
		for res.Outcome == locate.Found && d.relative(res.Ensemble.Number()) < start {
			res = loc.Next(res.Offset, true)
		}
		if res.Outcome != locate.Found {
			return rep, fmt.Errorf("seeking ensemble %d: %w", start, err)
		}
		d.log.Warn("start ensemble not found", "start", start, "using", d.relative(res.Ensemble.Number()))
	}

	lastRel := 0
	if n := len(d.ensembles); n > 0 {
		lastRel = d.relative(d.ensembles[n-1].Number())
	}
	before := len(d.ensembles)
	size := loc.Size()
	lastGood := int64(-1)
	cur := res.Offset

	for cur < size {
		e, err := ensemble.DecodeValid(r, cur)
		if err != nil {
			if size-cur < d.meta.EnsembleSize {
				d.log.Debug("dropping truncated tail", "offset", cur, "bytes", size-cur)
				rep.Truncated = true
				break
			}
			next := locate.Result{}
			if lastGood >= 0 {
				next = loc.Next(lastGood, true)
			}
			if next.Outcome != locate.Found || next.Offset <= cur {
				next = loc.Next(cur, true)
			}
			if next.Outcome != locate.Found {
				d.log.Debug("no ensemble after invalid data", "offset", cur, "error", err)
				break
			}
			rep.Resyncs++
			rep.SkippedBytes += next.Offset - cur
			d.log.Debug("resynchronised", "from", cur, "to", next.Offset, "error", err)
			e = next.Ensemble
		}

		rel := d.relative(e.Number())
		if rel <= lastRel || !d.compatible(e) {
			rep.OutOfSequence++
			d.log.Debug("skipping ensemble", "ensemble", e.Number(), "offset", e.Offset)
			cur = e.Offset + e.Size()
			continue
		}
		if rel > end {
			break
		}
		if !e.ChecksumOK() {
			rep.ChecksumMismatches++
			d.log.Warn("checksum mismatch",
				"ensemble", e.Number(),
				"offset", e.Offset,
				"stored", e.Checksum,
				"computed", e.Computed)
		}
		d.ensembles = append(d.ensembles, e)
		rep.Loaded++
		lastRel = rel
		lastGood = e.Offset
		cur = e.Offset + e.Size()
		if rel == end {
			break
		}
	}

	if len(d.ensembles) != before {
		d.resetMasks()
	}
	d.opts.metrics.ReadDone(rep.Loaded, rep.ChecksumMismatches, rep.Resyncs, rep.SkippedBytes, time.Since(began))
	d.log.Info("read ensembles",
		"requested", rep.Requested,
		"loaded", rep.Loaded,
		"checksum_mismatches", rep.ChecksumMismatches,
		"resyncs", rep.Resyncs,
		"skipped_bytes", rep.SkippedBytes)
	return rep, nil
}

// compatible reports whether e has the grid of the ensembles already loaded.
func (d *Dataset) compatible(e *ensemble.Ensemble) bool {
	if len(d.ensembles) == 0 {
		return true
	}
	ref := d.ensembles[0]
	return e.Beams() == ref.Beams() && e.Cells() == ref.Cells()
}

func (d *Dataset) resetMasks() {
	if d.masks != nil && len(d.masks.Names()) > 0 {
		d.log.Warn("ensemble count changed, dropping masks", "masks", d.masks.Names())
	}
	d.masks = nil
	if len(d.derived) > 0 {
		d.log.Warn("ensemble count changed, dropping derived fields")
		d.derived = make(map[Field]Cube)
	}
}

// Path returns the file path.
func (d *Dataset) Path() string { return d.path }

// Metadata returns what was learned scanning the file.
func (d *Dataset) Metadata() Metadata { return d.meta }

// Len returns the number of loaded ensembles.
func (d *Dataset) Len() int { return len(d.ensembles) }

// Ensembles returns the loaded ensembles in file order. The slice is shared;
// callers must not modify it.
func (d *Dataset) Ensembles() []*ensemble.Ensemble { return d.ensembles }

// Shape returns the beams x bins x ensembles grid of the loaded data.
func (d *Dataset) Shape() mask.Shape {
	if len(d.ensembles) == 0 {
		return mask.Shape{}
	}
	e := d.ensembles[0]
	return mask.Shape{Beams: e.Beams(), Bins: e.Cells(), Ensembles: len(d.ensembles)}
}

// Mask returns the mask engine for the loaded grid. Loading more ensembles
// replaces it with an empty engine.
func (d *Dataset) Mask() *mask.Engine {
	if d.masks == nil {
		d.masks = mask.New(d.Shape())
	}
	return d.masks
}
