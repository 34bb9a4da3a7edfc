package atlas

import (
	"testing"

	"github.com/Faultbox/aseforge/pkg/ase"
)

func TestMulUN8(t *testing.T) {
	tests := []struct {
		a, b uint8
		want uint8
	}{
		{0, 0, 0},
		{0, 255, 0},
		{255, 0, 0},
		{255, 255, 255},
		{128, 255, 128},
		{255, 128, 128},
		{128, 128, 64},
		{1, 255, 1},
	}
	for _, tt := range tests {
		if got := mulUN8(tt.a, tt.b); got != tt.want {
			t.Errorf("mulUN8(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBlendNormalOcclusion(t *testing.T) {
	back := color8{10, 20, 30, 255}
	src := color8{200, 100, 50, 255}

	got := blendNormal(back, src, 255)
	if got != src {
		t.Errorf("opaque source over backdrop = %+v, want %+v", got, src)
	}
}

func TestBlendNormalTransparentSource(t *testing.T) {
	back := color8{10, 20, 30, 255}
	src := color8{200, 100, 50, 0}

	got := blendNormal(back, src, 255)
	if got != back {
		t.Errorf("transparent source over backdrop = %+v, want backdrop %+v", got, back)
	}
}

func TestBlendNormalHalfOpacity(t *testing.T) {
	back := color8{0, 0, 0, 0}
	src := color8{255, 255, 255, 255}

	got := blendNormal(back, src, 128)
	if got.a != 128 {
		t.Errorf("alpha = %d, want 128", got.a)
	}
	if got.r != 128 || got.g != 128 || got.b != 128 {
		t.Errorf("color = (%d, %d, %d), want (128, 128, 128)", got.r, got.g, got.b)
	}
}

func TestBlendPixelFallback(t *testing.T) {
	// Soft light and the HSL modes are not in the table and must behave
	// like normal.
	back := color8{40, 80, 120, 255}
	src := color8{200, 100, 50, 255}

	want := blendNormal(back, src, 255)
	for _, mode := range []ase.BlendMode{
		ase.BlendSoftLight, ase.BlendHue, ase.BlendSaturation,
		ase.BlendColor, ase.BlendLuminosity,
	} {
		if got := blendPixel(back, src, mode, 255); got != want {
			t.Errorf("mode %d: got %+v, want normal %+v", mode, got, want)
		}
	}
}

func TestSeparableTransparentBackdrop(t *testing.T) {
	// With nothing beneath, a separable mode must not darken or lighten
	// the source; multiply over transparency keeps the source color.
	back := color8{0, 0, 0, 0}
	src := color8{200, 150, 100, 255}

	got := blendPixel(back, src, ase.BlendMultiply, 255)
	if got != src {
		t.Errorf("multiply over transparent backdrop = %+v, want %+v", got, src)
	}
}

func TestChannelOps(t *testing.T) {
	tests := []struct {
		name string
		op   channelOp
		b, s uint8
		want uint8
	}{
		{"multiply halves", opMultiply, 255, 128, 128},
		{"multiply black", opMultiply, 0, 200, 0},
		{"screen mids", opScreen, 128, 128, 192},
		{"screen white", opScreen, 255, 77, 255},
		{"darken", opDarken, 100, 50, 50},
		{"lighten", opLighten, 100, 50, 100},
		{"dodge black backdrop", opColorDodge, 0, 128, 0},
		{"dodge white source", opColorDodge, 100, 255, 255},
		{"burn white backdrop", opColorBurn, 255, 128, 255},
		{"burn black source", opColorBurn, 100, 0, 0},
		{"hard light dark source", opHardLight, 100, 64, 50},
		{"hard light light source", opHardLight, 100, 255, 255},
		{"difference", opDifference, 200, 50, 150},
		{"difference swapped", opDifference, 50, 200, 150},
		{"exclusion extremes", opExclusion, 255, 255, 0},
		{"addition clamps", opAddition, 200, 100, 255},
		{"subtract floors", opSubtract, 100, 200, 0},
		{"divide by zero source", opDivide, 100, 0, 255},
		{"divide zero backdrop", opDivide, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.b, tt.s); got != tt.want {
				t.Errorf("op(%d, %d) = %d, want %d", tt.b, tt.s, got, tt.want)
			}
		})
	}
}

func TestOverlayIsSwappedHardLight(t *testing.T) {
	for _, pair := range [][2]uint8{{30, 200}, {200, 30}, {128, 128}} {
		b, s := pair[0], pair[1]
		if got, want := opOverlay(b, s), opHardLight(s, b); got != want {
			t.Errorf("opOverlay(%d, %d) = %d, want hardLight(%d, %d) = %d",
				b, s, got, s, b, want)
		}
	}
}
