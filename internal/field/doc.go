// Package field implements table-driven decoding of fixed-width records.
//
// A record layout is an ordered []Field[T]. Each entry names the field, gives
// its width in bytes and element kind, and points into the destination struct.
// Decode walks the table once, reading each field in turn and folding the raw
// bytes into the caller's checksum. Encode performs the inverse, so a record
// decoded from disk is written back byte for byte, including fields that are
// never interpreted and are carried as raw bytes.
package field
