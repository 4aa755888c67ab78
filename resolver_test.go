package sdfatlas

import (
	"github.com/gogpu/sdfatlas/text"
)

// boxResolver serves rectangular glyphs. Boxes are given at size 1 and
// scaled by FontSpec.Size; runes without a box resolve to glyphs with no
// ink.
type boxResolver struct {
	boxes map[rune]text.Rect
	err   error
	calls int
}

func (r *boxResolver) ResolveGlyphs(font FontSpec, s string) ([]*text.GlyphOutline, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []*text.GlyphOutline
	for i, c := range []rune(s) {
		o := &text.GlyphOutline{GID: text.GlyphID(c), Rune: c, Cluster: i}
		if b, ok := r.boxes[c]; ok {
			b = text.Rect{
				MinX: b.MinX * font.Size, MinY: b.MinY * font.Size,
				MaxX: b.MaxX * font.Size, MaxY: b.MaxY * font.Size,
			}
			o.Bounds = b
			o.Segments = rectSegments(b)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *boxResolver) BoundingRect(g *text.GlyphOutline) text.Rect {
	if g == nil || g.IsEmpty() {
		return text.Rect{}
	}
	return g.Bounds
}

func rectSegments(b text.Rect) []text.OutlineSegment {
	pt := func(x, y float64) [3]text.OutlinePoint {
		return [3]text.OutlinePoint{{X: float32(x), Y: float32(y)}}
	}
	return []text.OutlineSegment{
		{Op: text.OutlineOpMoveTo, Points: pt(b.MinX, b.MinY)},
		{Op: text.OutlineOpLineTo, Points: pt(b.MaxX, b.MinY)},
		{Op: text.OutlineOpLineTo, Points: pt(b.MaxX, b.MaxY)},
		{Op: text.OutlineOpLineTo, Points: pt(b.MinX, b.MaxY)},
		{Op: text.OutlineOpLineTo, Points: pt(b.MinX, b.MinY)},
	}
}

func newBoxResolver() *boxResolver {
	return &boxResolver{boxes: map[rune]text.Rect{
		'a': {MinX: 0, MinY: -10, MaxX: 6, MaxY: 0},
		'b': {MinX: 1, MinY: -5, MaxX: 9, MaxY: 0},
		'!': {MinX: 2, MinY: -10, MaxX: 6, MaxY: 0},
	}}
}
