package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the application configuration.
type Config struct {
	Title string `toml:"title"`

	// InitialWidth and InitialHeight of 0 leave the window size to the
	// platform.
	InitialWidth  int `toml:"initialWidth"`
	InitialHeight int `toml:"initialHeight"`

	Headless bool `toml:"headless"`
	// Frames stops a headless run after N frames (0 = until interrupted).
	Frames uint64 `toml:"frames"`

	Overlay bool `toml:"overlay"`
	// Allocator is "heap" or "pages".
	Allocator string `toml:"allocator"`
	// Filter is "nearest" or "linear".
	Filter string `toml:"filter"`
	// Snapshot is a .png, .webp or .tga path written after a headless run.
	Snapshot string `toml:"snapshot"`

	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:     "gradient",
		Allocator: "heap",
		Filter:    "nearest",
	}
}

// Load reads a TOML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.InitialWidth < 0 || c.InitialHeight < 0 {
		return errors.Errorf("initial size %dx%d: negative dimension", c.InitialWidth, c.InitialHeight)
	}
	if (c.InitialWidth == 0) != (c.InitialHeight == 0) {
		return errors.Errorf("initial size %dx%d: set both dimensions or neither", c.InitialWidth, c.InitialHeight)
	}
	switch c.Allocator {
	case "heap", "pages":
	default:
		return errors.Errorf("unknown allocator %q (want heap or pages)", c.Allocator)
	}
	switch c.Filter {
	case "nearest", "linear":
	default:
		return errors.Errorf("unknown filter %q (want nearest or linear)", c.Filter)
	}
	if c.Snapshot != "" {
		if !c.Headless {
			return errors.New("snapshot requires headless mode")
		}
		switch strings.ToLower(filepath.Ext(c.Snapshot)) {
		case ".png", ".webp", ".tga":
		default:
			return errors.Errorf("snapshot %s: unsupported extension", c.Snapshot)
		}
	}
	return nil
}

// LinearFilter reports whether the stretch blit should interpolate.
func (c Config) LinearFilter() bool { return c.Filter == "linear" }
