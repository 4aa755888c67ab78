package sdf

import (
	"errors"
	"testing"
)

func TestResampleDimensions(t *testing.T) {
	tests := []struct {
		w, h, factor int
	}{
		{8, 8, 1},
		{8, 8, 2},
		{12, 6, 3},
		{64, 32, 8},
	}

	for _, tt := range tests {
		f := NewField(tt.w, tt.h)
		out, err := Resample(f, tt.factor)
		if err != nil {
			t.Fatalf("Resample(%dx%d, %d) error: %v", tt.w, tt.h, tt.factor, err)
		}
		if out.Width != tt.w/tt.factor || out.Height != tt.h/tt.factor {
			t.Errorf("Resample(%dx%d, %d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.factor, out.Width, out.Height, tt.w/tt.factor, tt.h/tt.factor)
		}
		if len(out.Values) != out.Width*out.Height {
			t.Errorf("len(Values) = %d, want %d", len(out.Values), out.Width*out.Height)
		}
	}
}

func TestResampleBoxMean(t *testing.T) {
	f := &Field{
		Width:  4,
		Height: 2,
		Values: []float32{
			1, 3, -2, -2,
			5, 7, 0, -4,
		},
	}

	out, err := Resample(f, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{4, -2}
	for i := range want {
		if out.Values[i] != want[i] {
			t.Errorf("Values[%d] = %v, want %v", i, out.Values[i], want[i])
		}
	}
}

func TestResampleFactorOneCopies(t *testing.T) {
	f := &Field{Width: 2, Height: 1, Values: []float32{1, 2}}
	out, err := Resample(f, 1)
	if err != nil {
		t.Fatal(err)
	}
	out.Values[0] = 9
	if f.Values[0] != 1 {
		t.Error("Resample(f, 1) aliases the input buffer")
	}
}

func TestResampleInvalid(t *testing.T) {
	tests := []struct {
		name   string
		f      *Field
		factor int
	}{
		{"indivisible width", NewField(10, 8), 4},
		{"indivisible height", NewField(8, 10), 4},
		{"zero factor", NewField(8, 8), 0},
		{"negative factor", NewField(8, 8), -2},
		{"nil field", nil, 2},
		{"short values", &Field{Width: 2, Height: 2, Values: make([]float32, 3)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resample(tt.f, tt.factor); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}
