package processing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoRSSI is returned when a PT3 report has no high gain RSSI line.
var ErrNoRSSI = errors.New("processing: no High Gain RSSI line in PT3 report")

const rssiPrefix = "High Gain RSSI:"

// PT3 holds the calibration values read from a PT3 test report.
type PT3 struct {
	// Kc converts echo intensity counts to dB, per beam.
	Kc [4]float64
}

// ReadPT3 parses a PT3 report. The four values following "High Gain RSSI:"
// are reported in hundredths of a dB per count.
func ReadPT3(r io.Reader) (PT3, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		rest, ok := strings.CutPrefix(line, rssiPrefix)
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 4 {
			return PT3{}, fmt.Errorf("processing: %q: want 4 values, got %d", line, len(fields))
		}
		var p PT3
		for i := range p.Kc {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return PT3{}, fmt.Errorf("processing: RSSI beam %d: %w", i+1, err)
			}
			p.Kc[i] = v / 100
		}
		return p, nil
	}
	if err := sc.Err(); err != nil {
		return PT3{}, err
	}
	return PT3{}, ErrNoRSSI
}

// LoadPT3 reads the PT3 report at path.
func LoadPT3(path string) (PT3, error) {
	f, err := os.Open(path)
	if err != nil {
		return PT3{}, err
	}
	defer f.Close()

	p, err := ReadPT3(f)
	if err != nil {
		return PT3{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
