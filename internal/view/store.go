package view

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/aseforge/pkg/atlas"
)

// GLStore keeps compiled atlas pages in OpenGL textures. It implements
// atlas.TextureStore, so a document can be compiled straight onto the GPU.
// Must be used from the thread that owns the GL context.
type GLStore struct {
	sizes map[atlas.TextureID][2]int
}

// NewGLStore creates an empty store. The GL context must already exist.
func NewGLStore() *GLStore {
	return &GLStore{
		sizes: make(map[atlas.TextureID][2]int),
	}
}

// Create allocates an empty RGBA texture of the given size.
func (s *GLStore) Create(width, height int) (atlas.TextureID, error) {
	if width < 1 || height < 1 {
		return 0, fmt.Errorf("bad texture size %dx%d", width, height)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Pixel art: no filtering, no bleeding across cell edges
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	id := atlas.TextureID(tex)
	s.sizes[id] = [2]int{width, height}
	return id, nil
}

// Upload replaces the full contents of a texture with RGBA pixel data.
func (s *GLStore) Upload(id atlas.TextureID, pixels []byte) error {
	size, ok := s.sizes[id]
	if !ok {
		return fmt.Errorf("unknown texture %d", id)
	}
	if len(pixels) != size[0]*size[1]*4 {
		return fmt.Errorf("texture %d: got %d bytes, want %d", id, len(pixels), size[0]*size[1]*4)
	}

	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size[0]), int32(size[1]), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Size returns the dimensions of a stored texture.
func (s *GLStore) Size(id atlas.TextureID) (width, height int, ok bool) {
	size, found := s.sizes[id]
	if !found {
		return 0, 0, false
	}
	return size[0], size[1], true
}

// Destroy releases all textures held by the store.
func (s *GLStore) Destroy() {
	for id := range s.sizes {
		tex := uint32(id)
		gl.DeleteTextures(1, &tex)
	}
	s.sizes = make(map[atlas.TextureID][2]int)
}
