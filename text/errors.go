package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no font is registered under a family name.
	ErrFontNotFound = errors.New("text: font family not registered")

	// ErrInvalidSize is returned for a zero, negative or NaN font size.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// ErrUnsupportedFontType is returned when the font type is not supported.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}

// GlyphError reports a glyph whose outline could not be loaded.
type GlyphError struct {
	Rune rune
	GID  GlyphID
	Err  error
}

func (e *GlyphError) Error() string {
	return "text: cannot load outline for " + string(e.Rune) + ": " + e.Err.Error()
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
