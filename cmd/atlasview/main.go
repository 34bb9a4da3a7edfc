// atlasview compiles a sprite document and displays the packed atlas in
// an SDL2/OpenGL window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/aseforge/internal/config"
	"github.com/Faultbox/aseforge/internal/logger"
	"github.com/Faultbox/aseforge/internal/view"
	"github.com/Faultbox/aseforge/pkg/ase"
	"github.com/Faultbox/aseforge/pkg/atlas"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlasview [options] <doc.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, flag.Arg(0)); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, docPath string) error {
	doc, err := ase.LoadDocument(docPath)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	logger.Info("document loaded",
		zap.String("name", doc.Name),
		zap.Int("frames", len(doc.Frames)),
	)

	opts := atlas.Options{
		Filter: atlas.Filter{
			OnlyVisible:       cfg.Filter.OnlyVisible,
			ExcludeBackground: cfg.Filter.ExcludeBackground,
			Layers:            cfg.Filter.Layers,
		},
		Pack: atlas.PackOptions{
			Border:       cfg.Atlas.Border,
			Spacing:      cfg.Atlas.Spacing,
			InnerPadding: cfg.Atlas.InnerPadding,
		},
	}

	viewer, err := view.NewViewer(view.Config{
		Title:  fmt.Sprintf("atlasview - %s", doc.Name),
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer viewer.Close()

	// Compile straight into GPU textures
	compiled, err := atlas.Compile(doc, viewer.Store(), opts)
	if err != nil {
		return fmt.Errorf("compiling atlas: %w", err)
	}
	logger.Info("atlas compiled",
		zap.Int("width", compiled.Width),
		zap.Int("height", compiled.Height),
		zap.Int("sprites", len(compiled.Sprites)),
	)

	viewer.Show(compiled.Sprites[0].Texture)
	return viewer.Run()
}
