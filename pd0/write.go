package pd0

import (
	"bufio"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
)

// WriteFile encodes ensembles back to back into a new PD0 file at path.
// Each ensemble keeps its header layout; checksums are recomputed.
func WriteFile(path string, ensembles []*ensemble.Ensemble) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, e := range ensembles {
		raw, err := ensemble.Encode(e)
		if err != nil {
			return fmt.Errorf("encoding ensemble %d: %w", e.Number(), err)
		}
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("writing ensemble %d: %w", e.Number(), err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	return nil
}

// Write writes the loaded ensembles to path.
func (d *Dataset) Write(path string) error {
	if len(d.ensembles) == 0 {
		return ErrNotLoaded
	}
	return WriteFile(path, d.ensembles)
}
