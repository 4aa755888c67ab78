package sdf

import "fmt"

// Field is a grid of float32 signed distances, row-major with the origin
// at the top-left. Values are positive inside the glyph, negative outside.
type Field struct {
	Width, Height int
	Values        []float32
}

// NewField returns a zeroed field.
func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
		Values: make([]float32, width*height),
	}
}

// At returns the distance at (x, y).
func (f *Field) At(x, y int) float32 {
	return f.Values[y*f.Width+x]
}

// Set sets the distance at (x, y).
func (f *Field) Set(x, y int, v float32) {
	f.Values[y*f.Width+x] = v
}

// Range returns the smallest and largest value in the field.
func (f *Field) Range() (lo, hi float32) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	lo, hi = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func (f *Field) validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil field", ErrInvalidDimensions)
	}
	if f.Width < 0 || f.Height < 0 || len(f.Values) != f.Width*f.Height {
		return fmt.Errorf("%w: %dx%d field with %d values", ErrInvalidDimensions, f.Width, f.Height, len(f.Values))
	}
	return nil
}
