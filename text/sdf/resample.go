package sdf

import "fmt"

// Resample box-downsamples f by factor: each output cell is the mean of
// the factor×factor block it covers. factor must divide both dimensions;
// anything else fails with ErrInvalidDimensions instead of rounding.
func Resample(f *Field, factor int) (*Field, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if factor < 1 {
		return nil, fmt.Errorf("%w: resample factor %d", ErrInvalidDimensions, factor)
	}
	if f.Width%factor != 0 || f.Height%factor != 0 {
		return nil, fmt.Errorf("%w: factor %d does not divide %dx%d",
			ErrInvalidDimensions, factor, f.Width, f.Height)
	}
	if factor == 1 {
		out := NewField(f.Width, f.Height)
		copy(out.Values, f.Values)
		return out, nil
	}

	out := NewField(f.Width/factor, f.Height/factor)
	area := float64(factor * factor)

	for oy := 0; oy < out.Height; oy++ {
		for ox := 0; ox < out.Width; ox++ {
			var sum float64
			for y := oy * factor; y < (oy+1)*factor; y++ {
				row := f.Values[y*f.Width+ox*factor : y*f.Width+(ox+1)*factor]
				for _, v := range row {
					sum += float64(v)
				}
			}
			out.Values[oy*out.Width+ox] = float32(sum / area)
		}
	}

	return out, nil
}
