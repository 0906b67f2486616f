package main

import (
	"fmt"
	"io/ioutil"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/romsheet"
	"gopkg.in/yaml.v2"
)

// config holds the defaults read from a --config file. Command line values
// override it.
type config struct {
	Offset  int64  `yaml:"offset"`
	Format  string `yaml:"format"`
	Scale   int    `yaml:"scale"`
	Preview bool   `yaml:"preview"`
	Invert  bool   `yaml:"invert"`
	Dump    bool   `yaml:"dump"`
	Quiet   bool   `yaml:"quiet"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Scale: 1}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %v", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %v", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %v", path, err)
	}
	return cfg, nil
}

// validate checks values that may come from either the file or the flags.
func (cfg *config) validate() error {
	if cfg.Scale < 1 || cfg.Scale > romsheet.MaxScale {
		return fmt.Errorf("scale must be between 1 and %d, got %d", romsheet.MaxScale, cfg.Scale)
	}
	return nil
}

func (cfg *config) override(c *cli.Context) {
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Int("scale")
	}
	if c.IsSet("preview") {
		cfg.Preview = c.Bool("preview")
	}
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	if c.IsSet("dump") {
		cfg.Dump = c.Bool("dump")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
}

// format picks the configured format, or the one matching output's
// extension, or PNG.
func (cfg *config) format(output string) (romsheet.Format, error) {
	if cfg.Format != "" {
		return romsheet.ParseFormat(cfg.Format)
	}
	if f, err := romsheet.FormatFromFilename(output); err == nil {
		return f, nil
	}
	return romsheet.PNG, nil
}
