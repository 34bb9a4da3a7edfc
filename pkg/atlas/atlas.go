// Package atlas compiles a layered, frame-based sprite document into a
// single grid-packed texture plus animation clip metadata for a runtime
// sprite player. The whole pipeline is a pure, one-shot, CPU-bound
// transform: flatten each frame's cel stack, pack the flattened frames
// into one atlas buffer, upload it through the caller's texture store,
// and derive clips from the document's named tag ranges.
package atlas

import (
	"fmt"

	"github.com/Faultbox/aseforge/pkg/ase"
)

// TextureID identifies a texture within a TextureStore.
type TextureID uint32

// TextureStore is the capability the compiler needs from the surrounding
// engine: create a texture and fill it with pixels. The store owns
// residency and upload mechanics; the compiler calls Upload exactly once
// per compile, after packing completes.
type TextureStore interface {
	Create(width, height int) (TextureID, error)
	Upload(id TextureID, pixels []byte) error
}

// Sprite is one packed frame: a region of a shared texture plus an
// origin (pivot) point.
type Sprite struct {
	Texture TextureID `json:"texture"`
	Region  Rect      `json:"region"`
	Origin  Point     `json:"origin"`
}

// SpriteAtlas is the compiled output. Names, Sprites and the implicit
// frame order are index-aligned; Animations and AnimationNames likewise.
// The value is immutable once returned and owned by the caller.
type SpriteAtlas struct {
	Names          []string    `json:"names"`
	Sprites        []Sprite    `json:"sprites"`
	Animations     []Animation `json:"animations"`
	AnimationNames []string    `json:"animation_names"`

	// Width and Height are the packed texture dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Options configure a compile. The zero value composites every layer,
// packs with no whitespace, and tags clips as forward-looping with
// per-frame timing.
type Options struct {
	Filter Filter
	Pack   PackOptions

	// Origin is the pivot recorded on every sprite.
	Origin Point

	Loop   LoopMode
	Timing TimingMethod
}

// Compile runs the full pipeline over doc and uploads the packed texture
// through store. Frame compositing runs concurrently per frame; packing
// and upload happen once, after all frames are flattened.
func Compile(doc *ase.Document, store TextureStore, opts Options) (*SpriteAtlas, error) {
	if len(doc.Frames) == 0 {
		return nil, ErrEmptyDocument
	}

	frames, err := compositeAll(doc, opts.Filter)
	if err != nil {
		return nil, err
	}

	pixels, width, height, regions, err := Pack(frames, doc.Width, doc.Height, opts.Pack)
	if err != nil {
		return nil, err
	}

	tex, err := store.Create(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating atlas texture: %w", err)
	}
	if err := store.Upload(tex, pixels); err != nil {
		return nil, fmt.Errorf("uploading atlas texture: %w", err)
	}

	base := doc.Name
	if base == "" {
		base = "frame"
	}

	out := &SpriteAtlas{
		Names:   make([]string, 0, len(regions)),
		Sprites: make([]Sprite, 0, len(regions)),
		Width:   width,
		Height:  height,
	}
	durations := make([]int, 0, len(doc.Frames))
	for i, region := range regions {
		out.Names = append(out.Names, fmt.Sprintf("%s_%d", base, i))
		out.Sprites = append(out.Sprites, Sprite{Texture: tex, Region: region, Origin: opts.Origin})
		durations = append(durations, doc.Frames[i].DurationMs)
	}

	anims, animNames, err := ExtractAnimations(doc.Tags, durations, out.Sprites, opts.Loop, opts.Timing)
	if err != nil {
		return nil, err
	}
	out.Animations = anims
	out.AnimationNames = animNames

	return out, nil
}

// ExtractFrame flattens a single frame into an isolated RGBA buffer, for
// ad-hoc single-frame texture creation. frameNumber is 1-based, as at
// every user-facing boundary, and is translated to the document's 0-based
// indexing here.
func ExtractFrame(doc *ase.Document, frameNumber int, filter Filter) ([]byte, error) {
	if frameNumber < 1 || frameNumber > len(doc.Frames) {
		return nil, fmt.Errorf("%w: frame %d of %d",
			ErrFrameOutOfRange, frameNumber, len(doc.Frames))
	}
	return CompositeFrame(doc, frameNumber-1, filter)
}
