package pd0

import "errors"

// Common errors
var (
	ErrNoEnsembles  = errors.New("no valid ensembles")
	ErrInvalidRange = errors.New("invalid ensemble range")
	ErrUnknownField = errors.New("unknown ensemble field")
	ErrFieldExists  = errors.New("field already exists")
	ErrShape        = errors.New("array shape does not match dataset")
	ErrUnsupported  = errors.New("unsupported instrument configuration")
	ErrNotLoaded    = errors.New("no ensembles loaded")
)
