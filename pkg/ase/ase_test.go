package ase

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testDoc builds the JSON interchange form of a minimal valid document:
// one visible layer and one 2x2 frame with a full-canvas image cel.
func testDoc() docJSON {
	return docJSON{
		Name:   "hero",
		Width:  2,
		Height: 2,
		Layers: []layerJSON{
			{Name: "body", Visible: true, Opacity: 255},
		},
		Frames: []frameJSON{
			{
				DurationMs: 100,
				Cels: []celJSON{
					{Kind: "image", Layer: 0, Width: 2, Height: 2, Opacity: 255, Pixels: make([]byte, 16)},
				},
			},
		},
		Tags: []tagJSON{
			{Name: "idle", From: 0, To: 0},
		},
	}
}

func marshal(t *testing.T, doc docJSON) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling test document: %v", err)
	}
	return data
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(marshal(t, testDoc()))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if doc.Name != "hero" {
		t.Errorf("Name = %q, want %q", doc.Name, "hero")
	}
	if doc.Width != 2 || doc.Height != 2 {
		t.Errorf("canvas = %dx%d, want 2x2", doc.Width, doc.Height)
	}
	if len(doc.Layers) != 1 || len(doc.Frames) != 1 || len(doc.Tags) != 1 {
		t.Fatalf("got %d layers, %d frames, %d tags, want 1 each",
			len(doc.Layers), len(doc.Frames), len(doc.Tags))
	}

	cel := &doc.Frames[0].Cels[0]
	if cel.Layer != &doc.Layers[0] {
		t.Error("cel layer pointer does not resolve to the document layer")
	}
	if cel.Kind != CelImage {
		t.Errorf("cel kind = %v, want image", cel.Kind)
	}

	// Frame size omitted in JSON defaults to canvas size
	if doc.Frames[0].Width != 2 || doc.Frames[0].Height != 2 {
		t.Errorf("frame size = %dx%d, want canvas 2x2",
			doc.Frames[0].Width, doc.Frames[0].Height)
	}
}

func TestParseDocumentBadLayerIndex(t *testing.T) {
	raw := testDoc()
	raw.Frames[0].Cels[0].Layer = 5

	_, err := ParseDocument(marshal(t, raw))
	if !errors.Is(err, ErrBadLayerIndex) {
		t.Errorf("err = %v, want ErrBadLayerIndex", err)
	}
}

func TestParseDocumentUnknownCelKind(t *testing.T) {
	raw := testDoc()
	raw.Frames[0].Cels[0].Kind = "tilemap"
	raw.Frames[0].Cels[0].Pixels = nil

	doc, err := ParseDocument(marshal(t, raw))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if got := doc.Frames[0].Cels[0].Kind; got != CelUnsupported {
		t.Errorf("kind = %v, want unsupported", got)
	}
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	if _, err := ParseDocument([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(d *Document) {},
			wantErr: nil,
		},
		{
			name: "frame size mismatch",
			mutate: func(d *Document) {
				d.Frames[0].Width = 3
			},
			wantErr: ErrFrameSize,
		},
		{
			name: "short pixel buffer",
			mutate: func(d *Document) {
				d.Frames[0].Cels[0].Pixels = make([]byte, 4)
			},
			wantErr: ErrBadPixelData,
		},
		{
			name: "link outside document",
			mutate: func(d *Document) {
				d.Frames[0].Cels[0] = Cel{
					Kind:      CelLinked,
					Layer:     &d.Layers[0],
					LinkFrame: 7,
				}
			},
			wantErr: ErrBadLinkFrame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(marshal(t, testDoc()))
			if err != nil {
				t.Fatalf("ParseDocument failed: %v", err)
			}
			tt.mutate(doc)

			err = doc.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCelOnLayer(t *testing.T) {
	doc, err := ParseDocument(marshal(t, testDoc()))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	layer := &doc.Layers[0]

	if cel := doc.CelOnLayer(0, layer); cel == nil {
		t.Error("expected cel on layer in frame 0")
	}
	if cel := doc.CelOnLayer(5, layer); cel != nil {
		t.Error("expected nil for out-of-range frame")
	}

	other := &Layer{Name: "other"}
	if cel := doc.CelOnLayer(0, other); cel != nil {
		t.Error("expected nil for layer with no cel")
	}
}

func TestLoadDocument(t *testing.T) {
	raw := testDoc()
	raw.Name = ""
	path := filepath.Join(t.TempDir(), "walker.json")
	if err := os.WriteFile(path, marshal(t, raw), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if doc.Name != "walker" {
		t.Errorf("Name = %q, want file base name %q", doc.Name, "walker")
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	if _, err := LoadDocument("/nonexistent/doc.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCelKindString(t *testing.T) {
	tests := []struct {
		kind CelKind
		want string
	}{
		{CelImage, "image"},
		{CelLinked, "linked"},
		{CelUnsupported, "unsupported"},
		{CelKind(99), "unsupported"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CelKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
