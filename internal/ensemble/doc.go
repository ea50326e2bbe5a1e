// Package ensemble decodes and encodes single PD0 ensembles.
//
// # Layout
//
// An ensemble opens with a six byte header (two 0x7f signature bytes, the
// ensemble length and the data type count) followed by at least six 16-bit
// address offsets. The offsets locate, relative to the header:
//
//   - the fixed leader (instrument configuration)
//   - the variable leader (clock, attitude, sensors)
//   - the velocity, correlation, echo intensity and percent good blocks,
//     each a two byte block id followed by bins x beams samples in
//     bin-major order
//   - an optional bottom-track block when seven data types are declared
//
// A two byte reserved word and the 16-bit checksum close the ensemble. The
// checksum is the sum of every preceding byte modulo 65536.
//
// # Validity
//
// Decode is structural: it fails only when the bytes cannot be read as an
// ensemble. Check applies the acceptance predicate used when scanning files,
// and a checksum mismatch is reported through ChecksumOK rather than as an
// error.
//
// Fixed-width records are described by the tables in tables.go and handled
// by package field, so Encode writes back exactly what Decode read.
package ensemble
