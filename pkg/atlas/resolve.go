package atlas

import (
	"fmt"

	"github.com/Faultbox/aseforge/pkg/ase"
)

// resolvedCel is a cel reduced to concrete pixel data: the image buffer,
// its placement within the frame, and the opacity/layer of the cel the
// walk started from (a link reuses the target's pixels, not its opacity).
type resolvedCel struct {
	pixels  []byte
	x, y    int
	w, h    int
	opacity uint8
	layer   *ase.Layer
}

// resolveCel reduces a cel to pixel data, following linked-cel indirection.
// The second return is false for cels the compositor should skip silently:
// unsupported kinds, links into frames that carry no cel on the layer, and
// links out of the document's frame range — upstream editors produce these
// as ordinary artifacts. The walk keeps a visited set so a cyclic chain
// fails with ErrCelLinkCycle instead of never terminating.
func resolveCel(doc *ase.Document, cel *ase.Cel) (resolvedCel, bool, error) {
	start := cel
	visited := map[*ase.Cel]struct{}{cel: {}}

	for cel.Kind == ase.CelLinked {
		if cel.LinkFrame < 0 || cel.LinkFrame >= len(doc.Frames) {
			return resolvedCel{}, false, nil
		}
		next := doc.CelOnLayer(cel.LinkFrame, cel.Layer)
		if next == nil {
			return resolvedCel{}, false, nil
		}
		if _, seen := visited[next]; seen {
			return resolvedCel{}, false, fmt.Errorf("%w: layer %q, frame %d",
				ErrCelLinkCycle, cel.Layer.Name, cel.LinkFrame)
		}
		visited[next] = struct{}{}
		cel = next
	}

	if cel.Kind != ase.CelImage {
		return resolvedCel{}, false, nil
	}

	// Placement and opacity belong to the cel the walk started from; only
	// the image data is shared through the link.
	return resolvedCel{
		pixels:  cel.Pixels,
		x:       start.X,
		y:       start.Y,
		w:       cel.Width,
		h:       cel.Height,
		opacity: start.Opacity,
		layer:   start.Layer,
	}, true, nil
}
