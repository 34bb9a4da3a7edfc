// Package ase defines the in-memory model of a layered, frame-based sprite
// document: stacked layers, per-frame cel placements and named tag ranges.
// It is the input side of the atlas compiler; how the document was decoded
// (binary .ase, an editor export, a test fixture) is not this package's
// concern.
package ase

import (
	"errors"
	"fmt"
)

// Document model errors.
var (
	ErrBadLayerIndex = errors.New("cel references a layer outside the document")
	ErrBadLinkFrame  = errors.New("linked cel references a frame outside the document")
	ErrBadPixelData  = errors.New("cel pixel data does not match its dimensions")
	ErrFrameSize     = errors.New("frame size differs from document canvas")
)

// BlendMode selects the per-pixel color combination used when a layer's
// cels are composited onto the frame backdrop. Values follow the Aseprite
// layer chunk enumeration.
type BlendMode uint16

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendAddition
	BlendSubtract
	BlendDivide
)

// Layer is a named drawing surface stacked across all frames.
type Layer struct {
	Name       string
	Visible    bool
	Background bool
	Mode       BlendMode
	Opacity    uint8
}

// CelKind discriminates the cel variants. Anything the compiler cannot
// composite (tilemap cels and future kinds) is CelUnsupported and gets
// skipped, never rejected.
type CelKind uint8

const (
	CelImage CelKind = iota
	CelLinked
	CelUnsupported
)

// String returns the kind name used in the JSON interchange form.
func (k CelKind) String() string {
	switch k {
	case CelImage:
		return "image"
	case CelLinked:
		return "linked"
	default:
		return "unsupported"
	}
}

// Cel is one layer's contribution to one frame. For CelImage the pixel
// buffer is RGBA, Width*Height*4 bytes, placed at (X, Y) which may be
// negative. For CelLinked only LinkFrame is meaningful: the cel reuses the
// image of the cel on the same layer in that frame.
type Cel struct {
	Kind      CelKind
	X, Y      int
	Width     int
	Height    int
	Opacity   uint8
	Pixels    []byte
	Layer     *Layer
	LinkFrame int
}

// Frame is one animation step: its cels in layer stacking order
// (bottom to top) and the authored display duration.
type Frame struct {
	Width      int
	Height     int
	DurationMs int
	Cels       []Cel
}

// Tag names an inclusive frame range [From, To] designating one animation
// clip. Indices are 0-based; user-facing surfaces (CLI frame numbers)
// are 1-based and converted at that boundary.
type Tag struct {
	Name string
	From int
	To   int
}

// Document is the parsed layered-image document. It is treated as immutable
// input by the compiler.
type Document struct {
	Name   string
	Width  int
	Height int
	Layers []Layer
	Frames []Frame
	Tags   []Tag
}

// CelOnLayer returns the cel belonging to the given layer in frame index,
// or nil if the frame has no cel on that layer.
func (d *Document) CelOnLayer(frame int, layer *Layer) *Cel {
	if frame < 0 || frame >= len(d.Frames) {
		return nil
	}
	cels := d.Frames[frame].Cels
	for i := range cels {
		if cels[i].Layer == layer {
			return &cels[i]
		}
	}
	return nil
}

// Validate checks the document invariants that the compiler relies on:
// every frame matches the canvas size, every image cel carries a pixel
// buffer of the right length, and every link target is a valid frame.
func (d *Document) Validate() error {
	for i := range d.Frames {
		f := &d.Frames[i]
		if f.Width != d.Width || f.Height != d.Height {
			return fmt.Errorf("%w: frame %d is %dx%d, canvas is %dx%d",
				ErrFrameSize, i, f.Width, f.Height, d.Width, d.Height)
		}
		for j := range f.Cels {
			c := &f.Cels[j]
			switch c.Kind {
			case CelImage:
				if want := c.Width * c.Height * 4; len(c.Pixels) != want {
					return fmt.Errorf("%w: frame %d cel %d has %d bytes, want %d",
						ErrBadPixelData, i, j, len(c.Pixels), want)
				}
			case CelLinked:
				if c.LinkFrame < 0 || c.LinkFrame >= len(d.Frames) {
					return fmt.Errorf("%w: frame %d cel %d links to frame %d",
						ErrBadLinkFrame, i, j, c.LinkFrame)
				}
			}
		}
	}
	return nil
}
