package processing_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/internal/testutil"
	"github.com/robert-malhotra/go-pd0/pd0"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, ens ...*ensemble.Ensemble) *pd0.Dataset {
	t.Helper()
	path := testutil.WriteFile(t, "proc.000", testutil.Encode(t, ens...))
	ds, err := pd0.Open(path, pd0.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	require.Equal(t, len(ens), ds.Len())
	return ds
}

func openDefault(t *testing.T, n int) *pd0.Dataset {
	t.Helper()
	return open(t, testutil.Ensembles(testutil.DefaultProfile(), n)...)
}
