package binary

// Sum16 is the running PD0 checksum: the byte sum of everything read or
// written so far, modulo 65536. It is a value; Add returns the new sum.
type Sum16 uint16

// Add folds p into the sum.
func (s Sum16) Add(p []byte) Sum16 {
	for _, b := range p {
		s += Sum16(b)
	}
	return s
}

// Value returns the sum as stored on disk.
func (s Sum16) Value() uint16 {
	return uint16(s)
}
