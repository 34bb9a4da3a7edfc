// Package config handles compiler configuration loading and management.
package config

// Config holds all aseforge settings.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Filter  FilterConfig  `yaml:"filter"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds packing and clip settings.
type AtlasConfig struct {
	Border       int    `yaml:"border"`        // Empty pixels around the whole atlas
	Spacing      int    `yaml:"spacing"`       // Empty pixels between cells
	InnerPadding int    `yaml:"inner_padding"` // Empty pixels inside each cell
	Loop         string `yaml:"loop"`          // forward, reverse, pingpong, once
	Timing       string `yaml:"timing"`        // per-frame, uniform
	OriginX      int    `yaml:"origin_x"`      // Sprite pivot X
	OriginY      int    `yaml:"origin_y"`      // Sprite pivot Y
}

// FilterConfig holds layer selection settings for compositing.
type FilterConfig struct {
	OnlyVisible       bool     `yaml:"only_visible"`
	ExcludeBackground bool     `yaml:"exclude_background"`
	Layers            []string `yaml:"layers"` // Allow-list, empty = all layers
}

// ViewerConfig holds atlas viewer window settings.
type ViewerConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			Border:       0,
			Spacing:      0,
			InnerPadding: 0,
			Loop:         "forward",
			Timing:       "per-frame",
		},
		Filter: FilterConfig{
			OnlyVisible: true,
		},
		Viewer: ViewerConfig{
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
