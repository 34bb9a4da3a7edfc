package ase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSON interchange form of a document. Pixel buffers are base64 strings
// (encoding/json's []byte convention). Frame width/height may be omitted
// and default to the canvas size. Tag ranges are 0-based, matching the
// in-memory model.

type docJSON struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Layers []layerJSON `json:"layers"`
	Frames []frameJSON `json:"frames"`
	Tags   []tagJSON   `json:"tags"`
}

type layerJSON struct {
	Name       string `json:"name"`
	Visible    bool   `json:"visible"`
	Background bool   `json:"background"`
	BlendMode  uint16 `json:"blend_mode"`
	Opacity    uint8  `json:"opacity"`
}

type frameJSON struct {
	Width      int       `json:"width,omitempty"`
	Height     int       `json:"height,omitempty"`
	DurationMs int       `json:"duration_ms"`
	Cels       []celJSON `json:"cels"`
}

type celJSON struct {
	Kind    string `json:"kind"`
	Layer   int    `json:"layer"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Opacity uint8  `json:"opacity"`
	Pixels  []byte `json:"pixels,omitempty"`
	Frame   int    `json:"frame,omitempty"`
}

type tagJSON struct {
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// ParseDocument parses the JSON interchange form and validates the
// resulting document.
func ParseDocument(data []byte) (*Document, error) {
	var raw docJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing document JSON: %w", err)
	}

	doc := &Document{
		Name:   raw.Name,
		Width:  raw.Width,
		Height: raw.Height,
		Layers: make([]Layer, len(raw.Layers)),
		Frames: make([]Frame, 0, len(raw.Frames)),
		Tags:   make([]Tag, 0, len(raw.Tags)),
	}

	for i, l := range raw.Layers {
		doc.Layers[i] = Layer{
			Name:       l.Name,
			Visible:    l.Visible,
			Background: l.Background,
			Mode:       BlendMode(l.BlendMode),
			Opacity:    l.Opacity,
		}
	}

	for fi, rf := range raw.Frames {
		frame := Frame{
			Width:      rf.Width,
			Height:     rf.Height,
			DurationMs: rf.DurationMs,
			Cels:       make([]Cel, 0, len(rf.Cels)),
		}
		if frame.Width == 0 && frame.Height == 0 {
			frame.Width, frame.Height = raw.Width, raw.Height
		}
		for ci, rc := range rf.Cels {
			if rc.Layer < 0 || rc.Layer >= len(doc.Layers) {
				return nil, fmt.Errorf("%w: frame %d cel %d references layer %d",
					ErrBadLayerIndex, fi, ci, rc.Layer)
			}
			cel := Cel{
				Kind:      parseCelKind(rc.Kind),
				X:         rc.X,
				Y:         rc.Y,
				Width:     rc.Width,
				Height:    rc.Height,
				Opacity:   rc.Opacity,
				Pixels:    rc.Pixels,
				Layer:     &doc.Layers[rc.Layer],
				LinkFrame: rc.Frame,
			}
			frame.Cels = append(frame.Cels, cel)
		}
		doc.Frames = append(doc.Frames, frame)
	}

	for _, rt := range raw.Tags {
		doc.Tags = append(doc.Tags, Tag{Name: rt.Name, From: rt.From, To: rt.To})
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadDocument reads and parses a document from disk. The document name
// defaults to the file's base name when the JSON carries none.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// parseCelKind maps a JSON kind string to a CelKind. Unknown kinds
// (tilemaps, future variants) become CelUnsupported so the compiler
// skips them instead of failing.
func parseCelKind(s string) CelKind {
	switch s {
	case "image":
		return CelImage
	case "linked":
		return CelLinked
	default:
		return CelUnsupported
	}
}
