package text

import "strconv"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// FontSpec names a font by family and size.
type FontSpec struct {
	// Family is the registered family name, matched case-insensitively.
	Family string

	// Size is the font size in pixels per em. At 72 DPI this equals
	// the point size.
	Size float64
}

// String returns "Family@Size".
func (f FontSpec) String() string {
	return f.Family + "@" + strconv.FormatFloat(f.Size, 'g', -1, 64)
}

// Scaled returns a copy of f with the size multiplied by factor.
func (f FontSpec) Scaled(factor float64) FontSpec {
	return FontSpec{Family: f.Family, Size: f.Size * factor}
}

// Rect represents a rectangle for glyph bounds.
// Glyph coordinates use a Y axis that grows downward, so MinY is the
// top of the glyph and is negative for ink above the baseline.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
