package sdf

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// MinTransformSize is the smallest width and height Transform accepts.
// Boundary detection needs a one pixel margin on every side.
const MinTransformSize = 3

const sqrt2 = float32(math.Sqrt2)

// point is a pixel coordinate in the nearest boundary map.
type point struct {
	x, y int32
}

// transform holds the scratch state of one distance transform. None of it
// outlives the Transform call.
type transform struct {
	width, height int

	inside  []bool
	dist    []float32
	nearest []point

	infinity float32
}

// Transform computes the signed distance field of b by dead reckoning.
// Every cell of the result holds the distance, in pixels, to the nearest
// recorded boundary pixel, positive inside the ink and negative outside.
//
// Cells in the outermost ring are never reached by the sweeps and keep the
// sentinel distance hypot(width, height).
func Transform(b *Bitmap) (*Field, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.Width < MinTransformSize || b.Height < MinTransformSize {
		return nil, fmt.Errorf("%w: %dx%d bitmap, need at least %dx%d",
			ErrInvalidDimensions, b.Width, b.Height, MinTransformSize, MinTransformSize)
	}

	t := newTransform(b)
	t.detectBoundaries()
	t.forwardSweep()
	t.backwardSweep()
	return t.signedField(), nil
}

// newTransform classifies every pixel and sets every distance to the
// sentinel infinity with a zeroed nearest point.
func newTransform(b *Bitmap) *transform {
	n := b.Width * b.Height
	t := &transform{
		width:    b.Width,
		height:   b.Height,
		inside:   make([]bool, n),
		dist:     make([]float32, n),
		nearest:  make([]point, n),
		infinity: math32.Hypot(float32(b.Width), float32(b.Height)),
	}

	for i, v := range b.Pix {
		t.inside[i] = v > insideThreshold
		t.dist[i] = t.infinity
	}
	return t
}

func (t *transform) index(x, y int) int {
	return y*t.width + x
}

// detectBoundaries zeroes the distance of every interior pixel whose
// classification differs from one of its four axis-aligned neighbors.
func (t *transform) detectBoundaries() {
	for y := 1; y < t.height-1; y++ {
		for x := 1; x < t.width-1; x++ {
			i := t.index(x, y)
			in := t.inside[i]
			if t.inside[i-1] != in || t.inside[i+1] != in ||
				t.inside[i-t.width] != in || t.inside[i+t.width] != in {
				t.dist[i] = 0
				t.nearest[i] = point{int32(x), int32(y)}
			}
		}
	}
}

// relax adopts the nearest boundary point of neighbor n for cell (x, y)
// when going through n is shorter, then re-grounds the distance on the
// exact Euclidean distance to the adopted point.
func (t *transform) relax(x, y, n int, weight float32) {
	i := t.index(x, y)
	if t.dist[n]+weight >= t.dist[i] {
		return
	}
	p := t.nearest[n]
	t.nearest[i] = p
	t.dist[i] = math32.Hypot(float32(x-int(p.x)), float32(y-int(p.y)))
}

// forwardSweep visits rows top to bottom, columns left to right.
func (t *transform) forwardSweep() {
	w := t.width
	for y := 1; y < t.height-1; y++ {
		for x := 1; x < t.width-1; x++ {
			i := t.index(x, y)
			t.relax(x, y, i-w-1, sqrt2)
			t.relax(x, y, i-w, 1)
			t.relax(x, y, i-w+1, sqrt2)
			t.relax(x, y, i-1, 1)
		}
	}
}

// backwardSweep visits rows bottom to top, columns right to left.
func (t *transform) backwardSweep() {
	w := t.width
	for y := t.height - 2; y >= 1; y-- {
		for x := t.width - 2; x >= 1; x-- {
			i := t.index(x, y)
			t.relax(x, y, i+1, 1)
			t.relax(x, y, i+w-1, sqrt2)
			t.relax(x, y, i+w, 1)
			t.relax(x, y, i+w+1, sqrt2)
		}
	}
}

// signedField copies the distances into a Field, negating cells outside
// the ink.
func (t *transform) signedField() *Field {
	f := NewField(t.width, t.height)
	for i, d := range t.dist {
		if !t.inside[i] {
			d = -d
		}
		f.Values[i] = d
	}
	return f
}
