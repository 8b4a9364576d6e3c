// Package config loads dialoggen.yaml.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "dialoggen.yaml"

type Config struct {
	// Sources are the directories scanned for class descriptors.
	Sources []string `yaml:"sources"`
	// Output is the directory dialogs are written to.
	Output string `yaml:"output"`
	// Components restricts rendering to the named classes. Empty means
	// every class declaring a dialog.
	Components []string `yaml:"components"`
	// TerminateOn lists the diagnostic kinds that fail the build.
	TerminateOn []string `yaml:"terminateOn"`
	// Format is "xml" or "json".
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Sources: []string{"."},
		Output:  "out",
		Format:  "xml",
	}
}

// Load reads the file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "xml", "json":
	case "":
		c.Format = "xml"
	default:
		return fmt.Errorf("invalid config: unknown format %q (expected xml or json)", c.Format)
	}
	if len(c.Sources) == 0 {
		c.Sources = []string{"."}
	}
	return nil
}
