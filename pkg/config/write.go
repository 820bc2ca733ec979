package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/xaionaro-go/datacounter"
)

var _ io.WriterTo = (*Config)(nil)

func (cfg Config) WriteTo(
	w io.Writer,
) (int64, error) {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("unable to serialize the config: %w", err)
	}

	counter := datacounter.NewWriterCounter(w)
	if _, err := io.Copy(counter, bytes.NewReader(b)); err != nil {
		return int64(counter.Count()), err
	}
	return int64(counter.Count()), nil
}
