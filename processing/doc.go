// Package processing derives physical quantities and quality masks from a
// decoded PD0 dataset.
//
// Derived arrays such as absolute backscatter are registered on the dataset
// with AddDerived and never modify the decoded ensembles. Masks are
// registered on the dataset's mask engine and are active on creation.
package processing
