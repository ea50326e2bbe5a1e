package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDone(t *testing.T) {
	d := New()
	d.FileRead()
	d.ReadDone(10, 1, 2, 345, 20*time.Millisecond)
	d.ReadDone(5, 0, 0, 0, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(d.files))
	assert.Equal(t, 15.0, testutil.ToFloat64(d.ensembles))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.checksumMismatches))
	assert.Equal(t, 2.0, testutil.ToFloat64(d.resyncs))
	assert.Equal(t, 345.0, testutil.ToFloat64(d.skippedBytes))
	assert.Equal(t, 1, testutil.CollectAndCount(d.readDuration))
}

func TestNilDecoder(t *testing.T) {
	var d *Decoder
	d.FileRead()
	d.ReadDone(1, 1, 1, 1, time.Second)
	assert.Nil(t, d.Registry())
	assert.NoError(t, d.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestWriteTextfile(t *testing.T) {
	d := New()
	d.ReadDone(3, 0, 0, 0, time.Millisecond)

	path := filepath.Join(t.TempDir(), "pd0.prom")
	require.NoError(t, d.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "pd0_ensembles_decoded_total 3"))
}
