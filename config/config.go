// Package config loads corona.yaml, corona.yml or corona.toml.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/corona/parser"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked for, in order of preference.
var FileNames = []string{"corona.yaml", "corona.yml", "corona.toml"}

var formats = map[string]bool{"tree": true, "json": true, "sexpr": true}

type Config struct {
	Parser ParserConfig `yaml:"parser" toml:"parser"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	// Format is the default output format of `corona parse`.
	Format string `yaml:"format" toml:"format"`
}

type ParserConfig struct {
	Lenient     bool `yaml:"lenient" toml:"lenient"`
	DisableMemo bool `yaml:"disable_memo" toml:"disable_memo"`
	MaxDepth    int  `yaml:"max_depth" toml:"max_depth"`
	Trace       bool `yaml:"trace" toml:"trace"`
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity" toml:"verbosity"`
	File      string `yaml:"file" toml:"file"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = parser.DefaultMaxDepth
	}
	if c.Format == "" {
		c.Format = "tree"
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Parser.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth))
	}
	if c.Log.Verbosity < -4 || c.Log.Verbosity > 5 {
		errs = append(errs, fmt.Errorf("log.verbosity must be between -4 and 5, got %d", c.Log.Verbosity))
	}
	if !formats[c.Format] {
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	return errors.Join(errs...)
}

// Load reads the configuration file at path. The extension selects the
// decoder.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

// Find looks for a configuration file in dir and its parents.
func Find(fs afero.Fs, dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if ok, _ := afero.Exists(fs, path); ok {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadDir loads the configuration file governing dir, falling back to the
// defaults when there is none.
func LoadDir(fs afero.Fs, dir string) (*Config, error) {
	path, ok := Find(fs, dir)
	if !ok {
		return Default(), nil
	}
	return Load(fs, path)
}

// Options turns the parser settings into parser options.
func (p ParserConfig) Options() []parser.Option {
	opts := []parser.Option{parser.WithStrict(!p.Lenient), parser.WithMaxDepth(p.MaxDepth)}
	if p.DisableMemo {
		opts = append(opts, parser.WithoutMemoization())
	}
	if p.Trace {
		opts = append(opts, parser.WithTrace())
	}
	return opts
}

// Apply configures the commonlog backend.
func (l LogConfig) Apply() {
	var path *string
	if l.File != "" {
		path = &l.File
	}
	commonlog.Configure(l.Verbosity, path)
}
