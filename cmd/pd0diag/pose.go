package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robert-malhotra/go-pd0/geometry"
)

// readTrack parses a platform track: one record per line holding an
// RFC 3339 time followed by x, y, z, pitch, roll and heading. A first
// line whose time does not parse is taken as a header.
func readTrack(r io.Reader) (*geometry.Track, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 7
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	track := &geometry.Track{}
	cols := []*[]float64{
		&track.X, &track.Y, &track.Z,
		&track.Pitch, &track.Roll, &track.Heading,
	}
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		at, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(rec[0]))
		if err != nil {
			if first {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		track.Time = append(track.Time, at)
		for i, col := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			*col = append(*col, v)
		}
	}
	if len(track.Time) == 0 {
		return nil, errors.New("pose track is empty")
	}
	return track, nil
}

func loadTrack(path string) (*geometry.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	track, err := readTrack(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return track, nil
}
