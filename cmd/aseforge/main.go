// aseforge is a CLI utility that compiles layered sprite documents into
// packed texture atlases with animation clip metadata.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/aseforge/internal/config"
	"github.com/Faultbox/aseforge/internal/logger"
	"github.com/Faultbox/aseforge/pkg/atlas"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compile", "c":
		cmdCompile(args)
	case "frame", "f":
		cmdFrame(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`aseforge - sprite document to texture atlas compiler

Usage:
  aseforge <command> [options]

Commands:
  compile <doc.json>            Compile a document to an atlas PNG + metadata JSON
  frame <doc.json> <number>     Flatten a single frame (1-based) to a PNG
  info <doc.json>               Show document information

Examples:
  aseforge compile hero.json -o hero-atlas
  aseforge compile hero.json -border 2 -spacing 1
  aseforge frame hero.json 3
  aseforge info hero.json`)
}

// setupLogging loads the config file (if any) and initializes the global
// logger from it.
func setupLogging(configPath string) *config.Config {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// compileOptions builds compiler options from the loaded config.
func compileOptions(cfg *config.Config) (atlas.Options, error) {
	loop, err := atlas.ParseLoopMode(cfg.Atlas.Loop)
	if err != nil {
		return atlas.Options{}, err
	}
	timing, err := atlas.ParseTimingMethod(cfg.Atlas.Timing)
	if err != nil {
		return atlas.Options{}, err
	}

	var layers []string
	if len(cfg.Filter.Layers) > 0 {
		layers = cfg.Filter.Layers
	}

	return atlas.Options{
		Filter: atlas.Filter{
			OnlyVisible:       cfg.Filter.OnlyVisible,
			ExcludeBackground: cfg.Filter.ExcludeBackground,
			Layers:            layers,
		},
		Pack: atlas.PackOptions{
			Border:       cfg.Atlas.Border,
			Spacing:      cfg.Atlas.Spacing,
			InnerPadding: cfg.Atlas.InnerPadding,
		},
		Origin: atlas.Point{X: cfg.Atlas.OriginX, Y: cfg.Atlas.OriginY},
		Loop:   loop,
		Timing: timing,
	}, nil
}
