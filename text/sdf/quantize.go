package sdf

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quantize maps every distance of f to a byte: values are clamped to
// [-spread, +spread], rescaled to [0, 1] by (d/spread + 1) / 2, scaled to
// [0, 255] and truncated. Distances beyond ±spread saturate at 0 and 255.
func Quantize(f *Field, spread float32) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if !(spread > 0) || math32.IsInf(spread, 0) {
		return nil, fmt.Errorf("%w: spread %v must be positive and finite", ErrInvalidParameter, spread)
	}

	out := make([]byte, len(f.Values))
	for i, d := range f.Values {
		out[i] = quantize(d, spread)
	}
	return out, nil
}

func quantize(d, spread float32) byte {
	d = max(-spread, min(spread, d))
	return byte((d/spread + 1) / 2 * 255)
}

// Dequantize inverts Quantize up to the truncation error of one level,
// which is 2*spread/255 in distance units.
func Dequantize(v byte, spread float32) float32 {
	return (float32(v)/255*2 - 1) * spread
}
