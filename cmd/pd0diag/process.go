package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-pd0/geometry"
	"github.com/robert-malhotra/go-pd0/internal/config"
	"github.com/robert-malhotra/go-pd0/pd0"
	"github.com/robert-malhotra/go-pd0/processing"
)

func process(ctx context.Context, w io.Writer, log *slog.Logger, cfg *config.Config, f flags, ds *pd0.Dataset) error {
	meta := ds.Metadata()
	start, end := cfg.Decode.Start, cfg.Decode.End
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = meta.EnsemblesInFile
	}
	rep, err := ds.ReadEnsembles(start, end)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "read ensembles", "file", meta.Path, "loaded", rep.Loaded, "requested", rep.Requested)

	ic, err := ds.Config()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "=== %s ===\n\n", meta.Path)
	printMetadata(w, meta)
	printReport(w, rep)
	printConfig(w, ic)
	printSensors(w, ds, cfg.Geometry.Latitude)

	if ifc := cfg.Interference; ifc.Enabled {
		if _, err := processing.InterferenceFilter(ds, processing.InterferenceOptions{
			Iterations: ifc.Iterations,
			Threshold:  ifc.Threshold,
			Sigma:      ifc.Sigma,
		}); err != nil {
			return err
		}
		log.InfoContext(ctx, "interference filter applied", "field", pd0.FieldFilteredEcho, "iterations", ifc.Iterations)
	}

	if err := applyMasks(ctx, log, cfg, ds, ic); err != nil {
		return err
	}
	printMasks(w, ds)

	if f.geometry || f.pose != "" {
		if err := printGeometry(w, cfg, f, ds); err != nil {
			return err
		}
	}

	if f.write != "" {
		if err := ds.Write(f.write); err != nil {
			return err
		}
		log.InfoContext(ctx, "ensembles written", "path", f.write, "count", ds.Len())
	}
	fmt.Fprintln(w)
	return nil
}

func printMetadata(w io.Writer, m pd0.Metadata) {
	fmt.Fprintln(w, "File:")
	fmt.Fprintf(w, "  Size:             %d bytes\n", m.Size)
	fmt.Fprintf(w, "  Ensemble size:    %d bytes\n", m.EnsembleSize)
	fmt.Fprintf(w, "  Ensembles:        %d (%d to %d)\n", m.EnsemblesInFile, m.FirstNumber, m.LastNumber)
	fmt.Fprintf(w, "  First ensemble:   %s at offset %d\n", m.FirstTime.Format(timeLayout), m.FirstOffset)
	fmt.Fprintf(w, "  Last ensemble:    %s at offset %d\n", m.LastTime.Format(timeLayout), m.LastOffset)
	fmt.Fprintln(w)
}

const timeLayout = "2006-01-02 15:04:05.00"

func printReport(w io.Writer, r pd0.Report) {
	fmt.Fprintln(w, "Read:")
	fmt.Fprintf(w, "  Loaded:           %d of %d\n", r.Loaded, r.Requested)
	fmt.Fprintf(w, "  Bad checksums:    %d\n", r.ChecksumMismatches)
	fmt.Fprintf(w, "  Resyncs:          %d (%d bytes skipped)\n", r.Resyncs, r.SkippedBytes)
	fmt.Fprintf(w, "  Out of sequence:  %d\n", r.OutOfSequence)
	if r.Truncated {
		fmt.Fprintln(w, "  File ends in a partial ensemble")
	}
	fmt.Fprintln(w)
}

func printConfig(w io.Writer, c pd0.Config) {
	fmt.Fprintln(w, "Instrument:")
	fmt.Fprintf(w, "  Serial / CPU:     %d / %s\n", c.SerialNumber, c.CPUVersion)
	fmt.Fprintf(w, "  Frequency:        %d kHz\n", c.System.FrequencyKHz)
	fmt.Fprintf(w, "  Beams:            %d at %g degrees\n", c.Beams, c.BeamAngle)
	fmt.Fprintf(w, "  Cells:            %d x %.2f m, bin 1 at %.2f m\n", c.Cells, c.CellLength, c.Bin1Distance)
	fmt.Fprintf(w, "  Pings/ensemble:   %d\n", c.PingsPerEnsemble)
	fmt.Fprintf(w, "  Coordinates:      %v\n", c.Coordinates)
	fmt.Fprintln(w)
}

func printSensors(w io.Writer, ds *pd0.Dataset, latitude float64) {
	fmt.Fprintln(w, "Sensors (mean / std):")
	printStat(w, "Temperature (C)", ds.Temperature())
	printStat(w, "Pitch (deg)", ds.Pitch())
	printStat(w, "Roll (deg)", ds.Roll())
	fmt.Fprintf(w, "  %-18s%.2f\n", "Heading (deg)", circularMean(ds.Heading()))
	printStat(w, "Depth (m)", processing.DepthFromPressure(ds, latitude))
	fmt.Fprintln(w)
}

func printStat(w io.Writer, label string, xs []float64) {
	xs = finite(xs)
	if len(xs) == 0 {
		fmt.Fprintf(w, "  %-18sn/a\n", label)
		return
	}
	mean, variance := stat.MeanVariance(xs, nil)
	fmt.Fprintf(w, "  %-18s%.2f / %.2f\n", label, mean, math.Sqrt(math.Max(variance, 0)))
}

func circularMean(deg []float64) float64 {
	deg = finite(deg)
	if len(deg) == 0 {
		return math.NaN()
	}
	rad := make([]float64, len(deg))
	floats.ScaleTo(rad, math.Pi/180, deg)
	m := stat.CircularMean(rad, nil) * 180 / math.Pi
	if m < 0 {
		m += 360
	}
	return m
}

func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

func applyMasks(ctx context.Context, log *slog.Logger, cfg *config.Config, ds *pd0.Dataset, ic pd0.Config) error {
	mc := cfg.Masks
	if mc.Correlation.Enabled {
		name, err := processing.MaskCorrelation(ds, mc.Correlation.Min, mc.Correlation.Max)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "mask defined", "name", name)
	}

	haveSv, err := backscatter(ctx, log, cfg.Backscatter, ds, ic)
	if err != nil {
		return err
	}
	for _, m := range []struct {
		rng    config.RangeMask
		define func(*pd0.Dataset, float64, float64) (string, error)
	}{
		{mc.Backscatter, processing.MaskBackscatter},
		{mc.SignalToNoise, processing.MaskSignalToNoise},
	} {
		if !m.rng.Enabled {
			continue
		}
		if !haveSv {
			log.WarnContext(ctx, "backscatter mask skipped: backscatter not computed")
			continue
		}
		name, err := m.define(ds, m.rng.Min, m.rng.Max)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "mask defined", "name", name)
	}

	if mc.BottomTrack.Enabled {
		ok, err := processing.MaskBottomTrack(ds, processing.BottomTrackOptions{
			CellOffset: mc.BottomTrack.CellOffset,
			Spike:      mc.BottomTrack.Spike,
			Window:     mc.BottomTrack.Window,
			Threshold:  mc.BottomTrack.Threshold,
		})
		if err != nil {
			return err
		}
		if !ok {
			log.WarnContext(ctx, "no bottom track in file; bed mask not defined")
		}
	}
	return nil
}

func backscatter(ctx context.Context, log *slog.Logger, bc config.BackscatterConfig, ds *pd0.Dataset, ic pd0.Config) (bool, error) {
	if !bc.Enabled {
		return false, nil
	}
	p, err := processing.DefaultBackscatterParams(ic)
	if err != nil {
		return false, err
	}
	if bc.PT3 != "" {
		pt3, err := processing.LoadPT3(bc.PT3)
		if err != nil {
			return false, err
		}
		p = p.WithPT3(pt3)
	}
	if bc.C != 0 {
		p.C = bc.C
	}
	if bc.NoiseFloor != 0 {
		p.NoiseFloor = bc.NoiseFloor
	}
	if bc.Alpha != 0 {
		p.Alpha = bc.Alpha
	}
	if bc.PowerDBW != 0 {
		p.PowerDBW = bc.PowerDBW
	}
	if _, _, err := processing.AbsoluteBackscatter(ds, p); err != nil {
		return false, err
	}
	log.DebugContext(ctx, "backscatter computed", "c", p.C, "alpha", p.Alpha, "kc", p.Kc)
	return true, nil
}

func printMasks(w io.Writer, ds *pd0.Dataset) {
	engine := ds.Mask()
	names := engine.Names()
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(w, "Masks (cells kept):")
	for _, name := range names {
		keep, active, err := engine.Get(name)
		if err != nil {
			continue
		}
		state := "inactive"
		if active {
			state = "active"
		}
		fmt.Fprintf(w, "  %-34s%6d of %d (%s)\n", name, count(keep, true), len(keep), state)
	}
	fmt.Fprintf(w, "  %-34s%6d\n", "excluded by active masks", count(engine.Excluded(), true))
	fmt.Fprintln(w)
}

func count(bs []bool, v bool) int {
	n := 0
	for _, b := range bs {
		if b == v {
			n++
		}
	}
	return n
}

func printGeometry(w io.Writer, cfg *config.Config, f flags, ds *pd0.Dataset) error {
	g, err := geometry.New(ds)
	if err != nil {
		return err
	}

	gc := cfg.Geometry
	var pose geometry.Pose = geometry.Static(0, 0, 0, 0, 0, 0)
	if f.pose != "" {
		method, err := geometry.ParseMethod(gc.PoseMethod)
		if err != nil {
			return err
		}
		track, err := loadTrack(f.pose)
		if err != nil {
			return err
		}
		track.Method = method
		track.Tolerance = gc.PoseTolerance
		pose = track
	}
	if err := g.SetPose(pose, gc.UseSensorOrientation); err != nil {
		return err
	}
	if err := g.Calculate(geometry.Options{
		Rotation:       gc.Rotation,
		Offset:         [3]float64(gc.Offset),
		BeamSeparation: gc.BeamSeparation,
	}); err != nil {
		return err
	}

	fmt.Fprintln(w, "Geometry:")
	mids := g.BinMidpoints()
	parts := make([]string, len(mids))
	for i, m := range mids {
		parts[i] = fmt.Sprintf("%.2f", m)
	}
	fmt.Fprintf(w, "  Bin midpoints (m): %s\n", strings.Join(parts, " "))

	bt, err := g.CorrectedBottomTrack()
	if err == nil {
		rows, _ := bt.Dims()
		for b := 0; b < rows; b++ {
			printStat(w, fmt.Sprintf("Bed range b%d (m)", b+1), mat.Row(nil, b, bt))
		}
	}

	abs, err := g.Absolute(true)
	if err != nil {
		return err
	}
	z := finite(abs[2].Data)
	if len(z) > 0 {
		fmt.Fprintf(w, "  %-18s%.2f to %.2f\n", "Cell z (m)", floats.Min(z), floats.Max(z))
	}
	fmt.Fprintln(w)
	return nil
}
