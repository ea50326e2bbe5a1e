// Package testutil builds synthetic PD0 data for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
)

// Epoch is the timestamp of the first synthetic ensemble.
var Epoch = time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC)

// Profile controls the shape of synthetic ensembles.
type Profile struct {
	Beams       int
	Bins        int
	Step        time.Duration
	BottomTrack bool
	First       int // number of the first ensemble
}

// DefaultProfile is a 4-beam, 5-bin down-looking 600 kHz instrument sampling
// once per second with bottom track.
func DefaultProfile() Profile {
	return Profile{Beams: 4, Bins: 5, Step: time.Second, BottomTrack: true, First: 1}
}

// Ensemble builds ensemble number n stamped at t.
func Ensemble(p Profile, n int, t time.Time) *ensemble.Ensemble {
	e := &ensemble.Ensemble{}
	e.Header = ensemble.Header{HeaderID: ensemble.Signature, DataSourceID: ensemble.Signature}
	e.Fixed = ensemble.FixedLeader{
		ID:                   ensemble.FixedLeaderID,
		CPUVersion:           16,
		CPURevision:          31,
		SystemConfig:         []byte{0b0100_1011, 0b0100_0001}, // down, convex, 600 kHz, 4 beam, 20 degrees
		LagLength:            13,
		Beams:                uint8(p.Beams),
		Cells:                uint8(p.Bins),
		PingsPerEnsemble:     1,
		CellLength:           100,
		BlankAfterTransmit:   88,
		ProfilingMode:        1,
		LowCorrThreshold:     64,
		CodeReps:             9,
		ErrorVelocityMax:     2000,
		CoordinateTransform:  []byte{0b0001_1111}, // earth
		SensorSource:         0x7D,
		SensorsAvailable:     0x3D,
		Bin1Distance:         176,
		TransmitPulseLength:  113,
		RefLayerStart:        1,
		RefLayerEnd:          5,
		FalseTargetThreshold: 50,
		Spare1:               []byte{0},
		TransmitLagDistance:  49,
		CPUSerial:            []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Spare2:               []byte{0},
		SerialNumber:         24149,
		BeamAngle:            20,
	}

	t = t.UTC()
	yy := uint8(t.Year() % 100)
	cc := uint8(t.Year() / 100)
	hs := uint8(t.Nanosecond() / int(10*time.Millisecond))
	e.Variable = ensemble.VariableLeader{
		ID:              ensemble.VariableLeaderID,
		Number:          uint16(n % 65535),
		NumberMSB:       uint8(n / 65535),
		Year:            yy,
		Month:           uint8(t.Month()),
		Day:             uint8(t.Day()),
		Hour:            uint8(t.Hour()),
		Minute:          uint8(t.Minute()),
		Second:          uint8(t.Second()),
		Hundredths:      hs,
		SpeedOfSound:    1500,
		TransducerDepth: 12,
		Heading:         9000,
		Pitch:           -150,
		Roll:            250,
		Salinity:        35,
		Temperature:     1234,
		Spare1:          []byte{0, 0},
		Pressure:        100000,
		Spare2:          []byte{0},
		Century:         cc,
		Y2KYear:         yy,
		Y2KMonth:        uint8(t.Month()),
		Y2KDay:          uint8(t.Day()),
		Y2KHour:         uint8(t.Hour()),
		Y2KMinute:       uint8(t.Minute()),
		Y2KSecond:       uint8(t.Second()),
		Y2KHundredths:   hs,
	}

	e.Velocity = make([][]int16, p.Bins)
	e.Correlation = make([][]uint8, p.Bins)
	e.Echo = make([][]uint8, p.Bins)
	e.PercentGood = make([][]uint8, p.Bins)
	for k := 0; k < p.Bins; k++ {
		e.Velocity[k] = make([]int16, p.Beams)
		e.Correlation[k] = make([]uint8, p.Beams)
		e.Echo[k] = make([]uint8, p.Beams)
		e.PercentGood[k] = make([]uint8, p.Beams)
		for b := 0; b < p.Beams; b++ {
			e.Velocity[k][b] = int16(n*100 + k*10 + b)
			e.Correlation[k][b] = uint8(100 + b)
			e.Echo[k][b] = uint8(50 + k + b)
			e.PercentGood[k][b] = 100
		}
	}

	if p.BottomTrack {
		bt := &ensemble.BottomTrack{
			PingsPerEnsemble: 1,
			CorrMagMin:       220,
			EvalAmpMin:       30,
			Mode:             5,
			ErrorVelocityMax: 1000,
			Reserved1:        make([]byte, 4),
			MaxDepth:         3000,
			Reserved2:        make([]byte, 4),
		}
		for b := 0; b < 4; b++ {
			bt.Range[b] = 2000
			bt.Velocity[b] = int16(-10 * (b + 1))
			bt.Correlation[b] = 250
			bt.EvalAmplitude[b] = 180
			bt.PercentGood[b] = 100
		}
		e.BottomTrack = bt
	}

	e.Layout()
	return e
}

// Ensembles builds count consecutive ensembles starting at p.First.
func Ensembles(p Profile, count int) []*ensemble.Ensemble {
	out := make([]*ensemble.Ensemble, count)
	for i := range out {
		out[i] = Ensemble(p, p.First+i, Epoch.Add(time.Duration(i)*p.Step))
	}
	return out
}

// Encode serialises ensembles back to back.
func Encode(tb testing.TB, ens ...*ensemble.Ensemble) []byte {
	tb.Helper()
	var out []byte
	for _, e := range ens {
		raw, err := ensemble.Encode(e)
		if err != nil {
			tb.Fatalf("encode ensemble %d: %v", e.Number(), err)
		}
		out = append(out, raw...)
	}
	return out
}

// WriteFile writes data to a file in a test temp dir and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
