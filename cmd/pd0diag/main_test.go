package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-pd0/internal/testutil"
)

func sampleFile(t *testing.T, n int) string {
	t.Helper()
	data := testutil.Encode(t, testutil.Ensembles(testutil.DefaultProfile(), n)...)
	return testutil.WriteFile(t, "sample.000", data)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunSummary(t *testing.T) {
	path := sampleFile(t, 6)
	out, _, err := execute(t, "--log-level", "error", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Ensembles:        6 (1 to 6)")
	assert.Contains(t, out, "Loaded:           6 of 6")
	assert.Contains(t, out, "Frequency:        600 kHz")
	assert.Contains(t, out, "Temperature (C)   12.34 / 0.00")
	assert.Contains(t, out, "Heading (deg)     90.00")
	assert.NotContains(t, out, "Masks")
	assert.NotContains(t, out, "Geometry")
}

func TestRunRange(t *testing.T) {
	path := sampleFile(t, 6)
	out, _, err := execute(t, "--start", "2", "--end", "4", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded:           3 of 3")
}

func TestRunMasksAndGeometry(t *testing.T) {
	t.Setenv("PD0_MASKS_CORRELATION_ENABLED", "true")
	t.Setenv("PD0_MASKS_BOTTOM_TRACK_ENABLED", "true")
	t.Setenv("PD0_BACKSCATTER_ENABLED", "true")
	t.Setenv("PD0_MASKS_BACKSCATTER_ENABLED", "true")
	t.Setenv("PD0_INTERFERENCE_ENABLED", "true")

	path := sampleFile(t, 4)
	textfile := filepath.Join(t.TempDir(), "pd0.prom")
	out, stderr, err := execute(t, "--geometry", "--metrics-textfile", textfile, path)
	require.NoError(t, err)

	assert.Contains(t, out, "CORRELATION MAGNITUDE [64, 255]")
	assert.Contains(t, out, "bottom track")
	assert.Contains(t, out, "excluded by active masks")
	assert.Contains(t, out, "Bin midpoints (m): 1.76 2.76 3.76 4.76 5.76")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "interference filter applied")

	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "pd0_ensembles_decoded_total 4")
}

func TestRunWrite(t *testing.T) {
	path := sampleFile(t, 3)
	dst := filepath.Join(t.TempDir(), "copy.000")
	_, _, err := execute(t, "--write", dst, path)
	require.NoError(t, err)

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, _, err = execute(t, "--write", dst, path, path)
	assert.ErrorContains(t, err, "exactly one input")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, filepath.Join(t.TempDir(), "missing.000"))
	assert.Error(t, err)

	_, _, err = execute(t, "--workers", "0", sampleFile(t, 2))
	assert.ErrorContains(t, err, "config validation failed")
}

func TestReadTrack(t *testing.T) {
	in := `time,x,y,z,pitch,roll,heading
# survey line 3
2021-03-14T15:09:26Z, 1, 2, -3, 0.5, -0.5, 10
2021-03-14T15:09:28Z, 2, 4, -3, 0.5, -0.5, 12
`
	track, err := readTrack(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, track.Time, 2)
	assert.Equal(t, []float64{1, 2}, track.X)
	assert.Equal(t, []float64{-3, -3}, track.Z)
	assert.Equal(t, []float64{10, 12}, track.Heading)

	_, err = readTrack(strings.NewReader("time,x\n"))
	assert.Error(t, err)
	_, err = readTrack(strings.NewReader("2021-03-14T15:09:26Z,1,2,3,4,5,x\n"))
	assert.Error(t, err)
	_, err = readTrack(strings.NewReader("time,x,y,z,pitch,roll,heading\n"))
	assert.Error(t, err)
}

func TestRunWithPose(t *testing.T) {
	pose := filepath.Join(t.TempDir(), "pose.csv")
	require.NoError(t, os.WriteFile(pose, []byte("2021-03-14T15:09:26Z,10,20,0,0,0,0\n"), 0o644))

	out, _, err := execute(t, "--pose", pose, sampleFile(t, 3))
	require.NoError(t, err)
	assert.Contains(t, out, "Geometry:")
}
