// Package pd0 reads Teledyne RD Instruments PD0 files into memory.
//
// Open scans a file for its first and last valid ensembles, derives the
// number of ensembles it should hold, and by default loads them all:
//
//	ds, err := pd0.Open("deployment.000", pd0.WithTimezone(-5*time.Hour))
//	if err != nil {
//		return err
//	}
//	echo, err := ds.EnsembleArray(pd0.FieldEcho, true)
//
// Reading tolerates damaged files. Leading junk is skipped, an invalid
// ensemble triggers a search for the next valid one, a truncated final
// ensemble is dropped and a checksum mismatch is logged and counted but
// the ensemble is kept. The Report returned by ReadEnsembles says what
// happened.
//
// Loaded data is exposed as time series (one value per ensemble), bins x
// ensembles matrices for velocity and beams x bins x ensembles cubes for
// profile fields. Every cube shares the dataset's mask engine, so an
// exclusion defined once applies to every field. Arrays derived from the
// raw data, such as absolute backscatter, are registered with AddDerived
// and masked the same way.
package pd0
