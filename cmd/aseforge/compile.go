package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/aseforge/internal/logger"
	"github.com/Faultbox/aseforge/pkg/ase"
	"github.com/Faultbox/aseforge/pkg/atlas"
)

func cmdCompile(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("o", "", "Output base name (default: document name)")
	border := fs.Int("border", -1, "Empty pixels around the whole atlas")
	spacing := fs.Int("spacing", -1, "Empty pixels between cells")
	padding := fs.Int("padding", -1, "Empty pixels inside each cell")
	layers := fs.String("layers", "", "Comma-separated layer allow-list")
	all := fs.Bool("all", false, "Composite invisible layers too")
	noBackground := fs.Bool("no-background", false, "Exclude background layers")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: aseforge compile <doc.json> [options]")
		os.Exit(1)
	}

	cfg := setupLogging(*configPath)
	defer logger.Sync()

	// Flags override the config file
	if *border >= 0 {
		cfg.Atlas.Border = *border
	}
	if *spacing >= 0 {
		cfg.Atlas.Spacing = *spacing
	}
	if *padding >= 0 {
		cfg.Atlas.InnerPadding = *padding
	}
	if *layers != "" {
		cfg.Filter.Layers = strings.Split(*layers, ",")
	}
	if *all {
		cfg.Filter.OnlyVisible = false
	}
	if *noBackground {
		cfg.Filter.ExcludeBackground = true
	}

	opts, err := compileOptions(cfg)
	if err != nil {
		logger.Error("bad options", zap.Error(err))
		os.Exit(1)
	}

	doc, err := ase.LoadDocument(fs.Arg(0))
	if err != nil {
		logger.Error("failed to load document", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("document loaded",
		zap.String("name", doc.Name),
		zap.Int("width", doc.Width),
		zap.Int("height", doc.Height),
		zap.Int("frames", len(doc.Frames)),
		zap.Int("tags", len(doc.Tags)),
	)

	store := atlas.NewMemoryStore()
	compiled, err := atlas.Compile(doc, store, opts)
	if err != nil {
		logger.Error("compile failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("atlas compiled",
		zap.Int("width", compiled.Width),
		zap.Int("height", compiled.Height),
		zap.Int("sprites", len(compiled.Sprites)),
		zap.Int("animations", len(compiled.Animations)),
	)

	base := *out
	if base == "" {
		base = doc.Name
	}

	img := store.Image(compiled.Sprites[0].Texture)
	if err := writePNG(base+".png", img); err != nil {
		logger.Error("failed to write atlas image", zap.Error(err))
		os.Exit(1)
	}
	if err := writeMetadata(base+".json", compiled); err != nil {
		logger.Error("failed to write atlas metadata", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Wrote %s.png (%dx%d) and %s.json\n", base, compiled.Width, compiled.Height, base)
}

// writePNG encodes an RGBA image to a PNG file.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// writeMetadata writes the compiled atlas (regions, clips, timing) as JSON.
func writeMetadata(path string, compiled *atlas.SpriteAtlas) error {
	data, err := json.MarshalIndent(compiled, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
