package sdfatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/sdfatlas/text/sdf"
)

// Sentinel errors returned by the generation pipeline.
var (
	// ErrEmptyInput is returned when a zero-length string is requested.
	ErrEmptyInput = errors.New("sdfatlas: empty input string")

	// ErrFontResolution matches every *FontResolutionError via errors.Is.
	ErrFontResolution = errors.New("sdfatlas: font resolution failed")

	// ErrInvalidDimensions is returned when a stage receives a bitmap or
	// field too small for it, or a resample factor that does not divide
	// the field. It is the same value as sdf.ErrInvalidDimensions.
	ErrInvalidDimensions = sdf.ErrInvalidDimensions

	// ErrInvalidParameter is returned for a non-positive spread.
	// It is the same value as sdf.ErrInvalidParameter.
	ErrInvalidParameter = sdf.ErrInvalidParameter

	// errNoReferenceInk is wrapped when the spread reference glyph has no ink.
	errNoReferenceInk = errors.New("spread reference glyph has no ink")
)

// FontResolutionError reports that a font specification could not be
// turned into renderable glyph outlines. No partial atlas is produced.
type FontResolutionError struct {
	Font FontSpec
	Err  error
}

func (e *FontResolutionError) Error() string {
	return fmt.Sprintf("sdfatlas: cannot resolve font %s: %v", e.Font, e.Err)
}

// Unwrap returns the underlying font service error.
func (e *FontResolutionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFontResolution.
func (e *FontResolutionError) Is(target error) bool {
	return target == ErrFontResolution
}
