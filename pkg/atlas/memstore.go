package atlas

import (
	"errors"
	"fmt"
	"image"
)

// MemoryStore is a TextureStore backed by plain image.RGBA buffers. It
// serves headless compiles (the CLI encodes its images to PNG) and tests.
type MemoryStore struct {
	images []*image.RGBA
}

// NewMemoryStore returns an empty in-memory texture store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Create allocates a width×height RGBA image and returns its id.
func (s *MemoryStore) Create(width, height int) (TextureID, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	s.images = append(s.images, image.NewRGBA(image.Rect(0, 0, width, height)))
	return TextureID(len(s.images) - 1), nil
}

// Upload copies pixels into the image created for id.
func (s *MemoryStore) Upload(id TextureID, pixels []byte) error {
	img := s.Image(id)
	if img == nil {
		return errors.New("unknown texture id")
	}
	if len(pixels) != len(img.Pix) {
		return fmt.Errorf("pixel data size mismatch: expected %d, got %d", len(img.Pix), len(pixels))
	}
	copy(img.Pix, pixels)
	return nil
}

// Image returns the image behind id, or nil for an unknown id.
func (s *MemoryStore) Image(id TextureID) *image.RGBA {
	if int(id) >= len(s.images) {
		return nil
	}
	return s.images[id]
}
