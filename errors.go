package emblem

import "errors"

// Configuration errors. Validate wraps one of these with the offending
// values; test with errors.Is.
var (
	// ErrInvalidConfig is returned for non-positive radii, negative padding
	// and other scalar parameters out of range.
	ErrInvalidConfig = errors.New("emblem: invalid config")

	// ErrMismatchedEngines is returned when Rotations and Widths differ in
	// length or are empty.
	ErrMismatchedEngines = errors.New("emblem: mismatched engine layout")

	// ErrDegenerateThruster is returned when an engine width and the thrust
	// padding leave no well-defined triangle for the exhaust quad.
	ErrDegenerateThruster = errors.New("emblem: degenerate thruster geometry")

	// ErrOverlappingEngines is returned when the padded engine bays overlap,
	// touch, or are not ordered once around the body.
	ErrOverlappingEngines = errors.New("emblem: overlapping engine bays")

	// ErrEmptyConfig is returned by LoadConfigs for a document with no
	// variants at all.
	ErrEmptyConfig = errors.New("emblem: empty config document")
)
