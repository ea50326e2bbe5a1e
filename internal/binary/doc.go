// Package binary provides the positioned little-endian cursors used to read
// and write PD0 ensembles.
//
// A Reader wraps an io.ReaderAt and tracks its own offset, so several readers
// can walk the same file independently. Reads are all-or-nothing: a request
// that runs past the end of the data returns ErrShortRead and does not move
// the cursor.
//
// PD0 ensembles carry a 16-bit additive checksum over every byte that precedes
// it. Sum16 accumulates that value; decoders thread it through each read
// explicitly, and Writer keeps one for the bytes it emits.
package binary
