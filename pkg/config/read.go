package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var _ io.Reader = (*Config)(nil)
var _ io.ReaderFrom = (*Config)(nil)

// Read parses the YAML in b on top of the values already in cfg.
//
// Unknown keys are rejected, so that a misspelled option does not get silently ignored.
func (cfg *Config) Read(
	b []byte,
) (int, error) {
	if err := yaml.UnmarshalWithOptions(b, cfg, yaml.DisallowUnknownField()); err != nil {
		return len(b), fmt.Errorf("unable to parse the YAML config: %w", err)
	}
	return len(b), nil
}

func (cfg *Config) ReadFrom(
	r io.Reader,
) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return int64(len(b)), fmt.Errorf("unable to read the config: %w", err)
	}

	n, err := cfg.Read(b)
	return int64(n), err
}
