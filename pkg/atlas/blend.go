package atlas

import "github.com/Faultbox/aseforge/pkg/ase"

// Per-pixel compositing. All channel math is 8-bit fixed point with
// rounding; nothing here escapes [0, 255].

// color8 is one RGBA pixel in 8-bit straight (non-premultiplied) form.
type color8 struct {
	r, g, b, a uint8
}

// mulUN8 multiplies two 8-bit fixed-point values with a rounding bias,
// so mulUN8(255, 255) == 255 and mulUN8(128, 255) == 128. Used to fold
// cel opacity into layer opacity and source alpha into both.
func mulUN8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 0x80
	return uint8(((t >> 8) + t) >> 8)
}

// blendFunc combines one source pixel with the backdrop pixel beneath it.
// opacity is the combined cel*layer opacity.
type blendFunc func(back, src color8, opacity uint8) color8

// channelOp is a separable blend applied per color channel before the
// normal source-over composite.
type channelOp func(back, src uint8) uint8

// blendTable dispatches document blend modes to their implementation.
// Modes absent from the table (soft light and the HSL family) fall back
// to normal.
var blendTable = map[ase.BlendMode]blendFunc{
	ase.BlendNormal:     blendNormal,
	ase.BlendMultiply:   separable(opMultiply),
	ase.BlendScreen:     separable(opScreen),
	ase.BlendOverlay:    separable(opOverlay),
	ase.BlendDarken:     separable(opDarken),
	ase.BlendLighten:    separable(opLighten),
	ase.BlendColorDodge: separable(opColorDodge),
	ase.BlendColorBurn:  separable(opColorBurn),
	ase.BlendHardLight:  separable(opHardLight),
	ase.BlendDifference: separable(opDifference),
	ase.BlendExclusion:  separable(opExclusion),
	ase.BlendAddition:   separable(opAddition),
	ase.BlendSubtract:   separable(opSubtract),
	ase.BlendDivide:     separable(opDivide),
}

// blendPixel is the single entry point used by the compositor. It is pure
// and deterministic for identical inputs.
func blendPixel(back, src color8, mode ase.BlendMode, opacity uint8) color8 {
	f, ok := blendTable[mode]
	if !ok {
		f = blendNormal
	}
	return f(back, src, opacity)
}

// blendNormal is source-over: result = source*alpha + backdrop*(1-alpha)
// per color channel, with alpha folded from source alpha and opacity.
func blendNormal(back, src color8, opacity uint8) color8 {
	a := mulUN8(src.a, opacity)
	na := 255 - a
	return color8{
		r: mulUN8(src.r, a) + mulUN8(back.r, na),
		g: mulUN8(src.g, a) + mulUN8(back.g, na),
		b: mulUN8(src.b, a) + mulUN8(back.b, na),
		a: a + mulUN8(back.a, na),
	}
}

// separable wraps a per-channel op into a full blend: blend each color
// channel against the backdrop, then composite the result source-over.
// A fully transparent backdrop has no color to blend with, so the source
// passes through untouched.
func separable(op channelOp) blendFunc {
	return func(back, src color8, opacity uint8) color8 {
		if back.a > 0 {
			src.r = op(back.r, src.r)
			src.g = op(back.g, src.g)
			src.b = op(back.b, src.b)
		}
		return blendNormal(back, src, opacity)
	}
}

func opMultiply(b, s uint8) uint8 { return mulUN8(b, s) }

func opScreen(b, s uint8) uint8 { return b + s - mulUN8(b, s) }

// Overlay is hard light with the operands swapped.
func opOverlay(b, s uint8) uint8 { return opHardLight(s, b) }

func opDarken(b, s uint8) uint8 {
	if s < b {
		return s
	}
	return b
}

func opLighten(b, s uint8) uint8 {
	if s > b {
		return s
	}
	return b
}

func opColorDodge(b, s uint8) uint8 {
	if b == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := uint32(b) * 255 / uint32(255-s)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func opColorBurn(b, s uint8) uint8 {
	if b == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := uint32(255-b) * 255 / uint32(s)
	if v > 255 {
		return 0
	}
	return uint8(255 - v)
}

func opHardLight(b, s uint8) uint8 {
	if s < 128 {
		return mulUN8(b, s<<1)
	}
	return opScreen(b, uint8(uint32(s)*2-255))
}

func opDifference(b, s uint8) uint8 {
	if b > s {
		return b - s
	}
	return s - b
}

func opExclusion(b, s uint8) uint8 {
	m := mulUN8(b, s)
	return b + s - 2*m
}

func opAddition(b, s uint8) uint8 { return clamp8(uint32(b) + uint32(s)) }

func opSubtract(b, s uint8) uint8 {
	if s > b {
		return 0
	}
	return b - s
}

func opDivide(b, s uint8) uint8 {
	if b == 0 {
		return 0
	}
	if s == 0 {
		return 255
	}
	return clamp8(uint32(b) * 255 / uint32(s))
}

func clamp8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
