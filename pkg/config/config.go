// Package config loads venngen settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/venngen/config.toml (falling back to
// ~/.config/venngen/config.toml) unless a path is given explicitly:
//
//	[diagram]
//	radius = 160.0
//	size = 800.0
//	overlap = 40.0
//	title = "Venn Diagram showing overlap"
//
//	[server]
//	addr = ":8000"
//	request_timeout = "10s"
//
// Every key is optional. A missing file at the default location is not an
// error; a missing file at an explicit path is.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/venngen/pkg/errors"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

const (
	appName  = "venngen"
	fileName = "config.toml"

	// DefaultAddr is the address `venngen serve` listens on.
	DefaultAddr = ":8000"

	// DefaultRequestTimeout bounds a single HTTP request.
	DefaultRequestTimeout = 10 * time.Second
)

// Config is the parsed configuration file.
type Config struct {
	Diagram Diagram `toml:"diagram"`
	Server  Server  `toml:"server"`
}

// Diagram holds defaults applied to every diagram.
type Diagram struct {
	Radius  float64 `toml:"radius"`
	Size    float64 `toml:"size"`
	Overlap float64 `toml:"overlap"`
	Title   string  `toml:"title"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr           string   `toml:"addr"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Diagram: Diagram{
			Radius:  pipeline.DefaultRadius,
			Size:    pipeline.DefaultSize,
			Overlap: pipeline.DefaultOverlap,
			Title:   pipeline.DefaultTitle,
		},
		Server: Server{
			Addr:           DefaultAddr,
			RequestTimeout: Duration{DefaultRequestTimeout},
		},
	}
}

// Path returns the default config file location using the XDG standard.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. An empty path means the default location,
// where a missing file yields Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("server", "addr") && strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: [server].addr cannot be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the diagram defaults and server settings.
func (c Config) Validate() error {
	if err := errors.ValidateDimension("radius", c.Diagram.Radius); err != nil {
		return err
	}
	if err := errors.ValidateDimension("size", c.Diagram.Size); err != nil {
		return err
	}
	if err := errors.ValidateOverlap(c.Diagram.Overlap, c.Diagram.Radius); err != nil {
		return err
	}
	if err := errors.ValidateTitle(c.Diagram.Title); err != nil {
		return err
	}
	if c.Server.RequestTimeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "request_timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	return nil
}

// Apply fills unset layout and render fields of opts from the diagram
// defaults. Fields already set on opts win.
func (c Config) Apply(opts *pipeline.Options) {
	if opts.Radius == 0 {
		opts.Radius = c.Diagram.Radius
	}
	if opts.Size == 0 {
		opts.Size = c.Diagram.Size
	}
	if opts.Overlap == nil {
		opts.Overlap = pipeline.Float(c.Diagram.Overlap)
	}
	if opts.Title == "" {
		opts.Title = c.Diagram.Title
	}
}

// Write encodes c as TOML to w.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
