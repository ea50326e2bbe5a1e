// Package locate finds PD0 ensembles in arbitrary byte streams.
//
// A file may begin with junk, contain corrupt spans or end mid-ensemble. The
// Locator scans fixed-size windows for the 0x7f7f signature and accepts the
// first candidate that decodes and passes the ensemble validity predicate.
// Consecutive windows overlap by one byte so a signature split across a
// window boundary is still seen. Each search is bounded by a window budget
// and reports GaveUp rather than an error when the budget or the stream is
// exhausted.
//
// Seek builds on Next and Previous to reach an ensemble by its number,
// starting from a position estimated from the nominal ensemble size.
package locate
