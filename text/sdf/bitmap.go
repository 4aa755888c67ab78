package sdf

import "fmt"

// Ink and background sample values of a binary Bitmap.
const (
	Background byte = 0
	Ink        byte = 255

	// insideThreshold is the largest sample still classified as outside.
	insideThreshold byte = 127
)

// Bitmap is a grid of 8-bit grayscale samples, row-major with the origin
// at the top-left. A pixel is inside the glyph when its sample exceeds 50%.
type Bitmap struct {
	Width, Height int
	Pix           []byte
}

// NewBitmap returns an all-background bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// At returns the sample at (x, y).
func (b *Bitmap) At(x, y int) byte {
	return b.Pix[y*b.Width+x]
}

// Set sets the sample at (x, y).
func (b *Bitmap) Set(x, y int, v byte) {
	b.Pix[y*b.Width+x] = v
}

// Inside reports whether (x, y) is classified as glyph ink.
func (b *Bitmap) Inside(x, y int) bool {
	return b.Pix[y*b.Width+x] > insideThreshold
}

// validate checks that Pix matches the dimensions.
func (b *Bitmap) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bitmap", ErrInvalidDimensions)
	}
	if b.Width < 0 || b.Height < 0 || len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("%w: %dx%d bitmap with %d samples", ErrInvalidDimensions, b.Width, b.Height, len(b.Pix))
	}
	return nil
}
