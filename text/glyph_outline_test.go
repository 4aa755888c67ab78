package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestOutlineOp_String(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("OutlineOp.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphOutline_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		outline *GlyphOutline
		want    bool
	}{
		{"nil segments", &GlyphOutline{}, true},
		{"empty segments", &GlyphOutline{Segments: []OutlineSegment{}}, true},
		{
			name: "has segments",
			outline: &GlyphOutline{
				Segments: []OutlineSegment{
					{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: 0, Y: 0}}},
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outline.IsEmpty(); got != tt.want {
				t.Errorf("GlyphOutline.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphOutline_Translate(t *testing.T) {
	outline := &GlyphOutline{
		Segments: []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: 1, Y: 2}}},
			{Op: OutlineOpQuadTo, Points: [3]OutlinePoint{{X: 3, Y: 4}, {X: 5, Y: 6}}},
		},
		Bounds:  Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 6},
		GID:     7,
		Cluster: 3,
		Rune:    'x',
	}

	moved := outline.Translate(10, -2)

	if moved.Segments[1].Points[1] != (OutlinePoint{X: 15, Y: 4}) {
		t.Errorf("translated point = %+v, want {15 4}", moved.Segments[1].Points[1])
	}
	if moved.Bounds != (Rect{MinX: 11, MinY: 0, MaxX: 15, MaxY: 4}) {
		t.Errorf("translated bounds = %+v", moved.Bounds)
	}
	if moved.GID != 7 || moved.Cluster != 3 || moved.Rune != 'x' {
		t.Error("Translate dropped glyph identity")
	}
	if outline.Segments[0].Points[0].X != 1 {
		t.Error("Translate modified the receiver")
	}

	var nilOutline *GlyphOutline
	if nilOutline.Translate(1, 1) != nil {
		t.Error("Translate on nil outline should return nil")
	}
}

func TestExtractOutline(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	parsed, _ := source.Parsed()
	extractor := NewOutlineExtractor()

	gid := GlyphID(parsed.GlyphIndex('A'))
	outline, err := extractor.ExtractOutline(parsed, gid, 64)
	if err != nil {
		t.Fatalf("ExtractOutline error: %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("outline for 'A' is empty")
	}
	if outline.Segments[0].Op != OutlineOpMoveTo {
		t.Errorf("first op = %v, want MoveTo", outline.Segments[0].Op)
	}
	if outline.Bounds.Empty() {
		t.Errorf("bounds empty: %+v", outline.Bounds)
	}
	// Y grows downward: ink above the baseline has negative Y.
	if outline.Bounds.MinY >= 0 {
		t.Errorf("Bounds.MinY = %v, want negative", outline.Bounds.MinY)
	}
	if outline.Advance <= 0 {
		t.Errorf("Advance = %v, want positive", outline.Advance)
	}

	// Outline size scales with ppem.
	big, err := extractor.ExtractOutline(parsed, gid, 128)
	if err != nil {
		t.Fatal(err)
	}
	ratio := big.Bounds.Height() / outline.Bounds.Height()
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("height ratio 128/64 ppem = %v, want ~2", ratio)
	}
}

func TestExtractOutlineSpace(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	parsed, _ := source.Parsed()

	outline, err := NewOutlineExtractor().ExtractOutline(parsed, GlyphID(parsed.GlyphIndex(' ')), 32)
	if err != nil {
		t.Fatalf("ExtractOutline error: %v", err)
	}
	if !outline.IsEmpty() {
		t.Errorf("space has %d segments, want 0", outline.SegmentCount())
	}
	if outline.Advance <= 0 {
		t.Error("space should still have an advance")
	}
}

type fakeParsedFont struct{ ParsedFont }

func TestExtractOutlineUnsupportedFont(t *testing.T) {
	_, err := NewOutlineExtractor().ExtractOutline(fakeParsedFont{}, 1, 32)
	if err != ErrUnsupportedFontType {
		t.Errorf("error = %v, want ErrUnsupportedFontType", err)
	}
}
