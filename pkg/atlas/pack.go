package atlas

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned integer rectangle within an atlas texture.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Point is an integer point, used for sprite origins (pivots).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PackOptions control the whitespace around and between packed frames,
// all in pixels.
type PackOptions struct {
	// Border is empty space around the whole atlas.
	Border int

	// Spacing is empty space between adjacent cells.
	Spacing int

	// InnerPadding is empty space inside each cell, on every side of
	// the frame.
	InnerPadding int
}

// Pack arranges equal-size RGBA frame buffers into one grid-packed atlas
// buffer. Placement is row-major over a ceil(sqrt(N)) × ceil(N/cols) grid,
// so frame i lands in cell (i mod cols, i div cols), and the returned
// regions match the input order. Frame sizes are validated up front; a
// mismatched buffer is a configuration error, not something to discover
// mid-blit.
func Pack(frames [][]byte, frameW, frameH int, opts PackOptions) (pixels []byte, width, height int, regions []Rect, err error) {
	if len(frames) == 0 {
		return nil, 0, 0, nil, ErrEmptyDocument
	}
	want := frameW * frameH * 4
	for i, f := range frames {
		if len(f) != want {
			return nil, 0, 0, nil, fmt.Errorf("%w: frame %d has %d bytes, want %d",
				ErrFrameSizeMismatch, i, len(f), want)
		}
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(frames)))))
	rows := (len(frames) + cols - 1) / cols

	width = cols*frameW + 2*opts.Border + opts.Spacing*(cols-1) + 2*opts.InnerPadding*cols
	height = rows*frameH + 2*opts.Border + opts.Spacing*(rows-1) + 2*opts.InnerPadding*rows

	pixels = make([]byte, width*height*4)
	regions = make([]Rect, 0, len(frames))

	for i, frame := range frames {
		col := i % cols
		row := i / cols
		ox := cellOrigin(col, frameW, opts)
		oy := cellOrigin(row, frameH, opts)

		// Disjoint destination rows per frame; a scanline copy each.
		for y := 0; y < frameH; y++ {
			src := y * frameW * 4
			dst := ((oy+y)*width + ox) * 4
			copy(pixels[dst:dst+frameW*4], frame[src:src+frameW*4])
		}

		regions = append(regions, Rect{X: ox, Y: oy, W: frameW, H: frameH})
	}

	return pixels, width, height, regions, nil
}

// cellOrigin computes a cell's pixel origin along one axis:
// border, then coord cells each preceded by spacing, with inner padding
// on both sides of every cell crossed plus the near side of this one.
func cellOrigin(coord, frameExtent int, opts PackOptions) int {
	return opts.Border + coord*frameExtent + opts.Spacing*coord + opts.InnerPadding*(2*coord+1)
}
