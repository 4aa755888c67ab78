// Package sdf turns binary glyph bitmaps into single-channel signed
// distance fields for resolution-independent text rendering.
//
// The package is the numeric half of the atlas pipeline and has no font
// dependency:
//
//  1. Transform: binary Bitmap -> float32 Field (dead reckoning)
//  2. Resample: box-downsample the Field by an integer factor
//  3. Quantize: clamp to ±spread and map to 8-bit texels
//
// Field values are positive inside the glyph ink and negative outside,
// measured in source pixels. Quantized texels put the edge at 127/128.
//
// # Dead reckoning
//
// Transform runs four passes over the grid: boundary detection marks every
// interior pixel whose 4-neighbors disagree about inside/outside, then a
// forward and a backward sweep propagate the nearest boundary point through
// the 8-neighborhood, and finally the sign is applied. Each adoption
// recomputes the exact Euclidean distance to the adopted boundary point, so
// errors do not accumulate along long chains. The result is an approximation
// of the exact transform: a cell far from the boundary may keep a slightly
// longer distance than the true one.
//
// # Usage
//
//	field, err := sdf.Transform(bitmap)
//	if err != nil {
//	    return err
//	}
//	small, err := sdf.Resample(field, 8)
//	if err != nil {
//	    return err
//	}
//	texels, err := sdf.Quantize(small, spread)
//
// # Shader
//
//	float d = texture(sdf, uv).r;
//	float w = fwidth(d);
//	float alpha = smoothstep(0.5 - w, 0.5 + w, d);
//
// # References
//
// - Grevera, "The 'dead reckoning' signed distance transform" (2004)
package sdf
