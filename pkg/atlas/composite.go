package atlas

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/aseforge/pkg/ase"
)

// Filter selects which layers take part in compositing. The zero value
// composites every layer including backgrounds.
type Filter struct {
	// OnlyVisible skips layers whose visibility flag is off.
	OnlyVisible bool

	// ExcludeBackground skips layers marked as background.
	ExcludeBackground bool

	// Layers, when non-nil, is an allow-list of layer names matched
	// case-insensitively. Layers absent from the list are skipped.
	Layers []string
}

// allows reports whether a layer passes the filter.
func (f Filter) allows(layer *ase.Layer) bool {
	if f.OnlyVisible && !layer.Visible {
		return false
	}
	if f.ExcludeBackground && layer.Background {
		return false
	}
	if f.Layers != nil {
		for _, name := range f.Layers {
			if strings.EqualFold(name, layer.Name) {
				return true
			}
		}
		return false
	}
	return true
}

// CompositeFrame flattens one frame's cel stack into a single RGBA buffer
// of document canvas size. The backdrop starts fully transparent; cels are
// blended bottom to top in storage order. Pixels whose placement falls
// outside the canvas are dropped without error — negative offsets are a
// normal editing artifact. The returned buffer is owned by the caller.
func CompositeFrame(doc *ase.Document, index int, filter Filter) ([]byte, error) {
	if index < 0 || index >= len(doc.Frames) {
		return nil, fmt.Errorf("%w: frame index %d of %d",
			ErrFrameOutOfRange, index, len(doc.Frames))
	}

	w, h := doc.Width, doc.Height
	buf := make([]byte, w*h*4)
	frame := &doc.Frames[index]

	for ci := range frame.Cels {
		cel := &frame.Cels[ci]
		if !filter.allows(cel.Layer) {
			continue
		}
		rc, ok, err := resolveCel(doc, cel)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", index, err)
		}
		if !ok {
			continue
		}
		blendCel(buf, w, h, rc)
	}

	return buf, nil
}

// blendCel blends one resolved cel into the backdrop buffer.
func blendCel(buf []byte, w, h int, rc resolvedCel) {
	opacity := mulUN8(rc.opacity, rc.layer.Opacity)
	mode := rc.layer.Mode

	for sy := 0; sy < rc.h; sy++ {
		dy := rc.y + sy
		if dy < 0 || dy >= h {
			continue
		}
		row := sy * rc.w * 4
		for sx := 0; sx < rc.w; sx++ {
			dx := rc.x + sx
			if dx < 0 || dx >= w {
				continue
			}
			si := row + sx*4
			sa := rc.pixels[si+3]
			if sa == 0 {
				continue
			}
			src := color8{rc.pixels[si], rc.pixels[si+1], rc.pixels[si+2], sa}

			di := (dy*w + dx) * 4
			back := color8{buf[di], buf[di+1], buf[di+2], buf[di+3]}

			out := blendPixel(back, src, mode, opacity)
			buf[di], buf[di+1], buf[di+2], buf[di+3] = out.r, out.g, out.b, out.a
		}
	}
}

// compositeAll flattens every frame of the document. Frames are independent
// read-only inputs with independent output buffers, so they are composited
// concurrently and joined before packing.
func compositeAll(doc *ase.Document, filter Filter) ([][]byte, error) {
	frames := make([][]byte, len(doc.Frames))

	var g errgroup.Group
	for i := range doc.Frames {
		i := i
		g.Go(func() error {
			buf, err := CompositeFrame(doc, i, filter)
			if err != nil {
				return err
			}
			frames[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
