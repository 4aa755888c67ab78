package sdf

import "errors"

// Sentinel errors for sdf package.
var (
	// ErrInvalidDimensions is returned when a grid is too small for the
	// neighbor access pattern, its buffer does not match its dimensions, or
	// a resample factor does not divide the grid evenly.
	ErrInvalidDimensions = errors.New("sdf: invalid dimensions")

	// ErrInvalidParameter is returned for a non-positive or NaN spread.
	ErrInvalidParameter = errors.New("sdf: invalid parameter")
)
