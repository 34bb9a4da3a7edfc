package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/aseforge/internal/logger"
	"github.com/Faultbox/aseforge/pkg/ase"
	"github.com/Faultbox/aseforge/pkg/atlas"
)

func cmdFrame(args []string) {
	fs := flag.NewFlagSet("frame", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	out := fs.String("o", "", "Output file name (default: <doc>_<number>.png)")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: aseforge frame <doc.json> <number>")
		os.Exit(1)
	}

	number, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad frame number %q\n", fs.Arg(1))
		os.Exit(1)
	}

	cfg := setupLogging(*configPath)
	defer logger.Sync()

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

	// Frame numbers are 1-based on the command line
	pixels, err := atlas.ExtractFrame(doc, number, opts.Filter)
	if err != nil {
		logger.Error("failed to flatten frame", zap.Error(err), zap.Int("frame", number))
		os.Exit(1)
	}

	img := image.NewRGBA(image.Rect(0, 0, doc.Width, doc.Height))
	copy(img.Pix, pixels)

	path := *out
	if path == "" {
		path = fmt.Sprintf("%s_%d.png", doc.Name, number)
	}
	if err := writePNG(path, img); err != nil {
		logger.Error("failed to write frame image", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", path, doc.Width, doc.Height)
}
