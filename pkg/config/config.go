package config

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/displaythumbs/pkg/thumbnail"
	"github.com/xaionaro-go/displaythumbs/pkg/xpath"
)

type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`

	// Strict makes a run fail if not a single thumbnail was written.
	Strict bool `yaml:"strict"`

	Jobs             int  `yaml:"jobs"`
	JPEGQuality      int  `yaml:"jpeg_quality"`
	KeepPartialFiles bool `yaml:"keep_partial_files"`
}

func NewConfig() Config {
	return Config{
		LogLevel:    logger.LevelWarning.String(),
		Jobs:        1,
		JPEGQuality: thumbnail.DefaultJPEGQuality,
	}
}

func (cfg Config) LoggerLevel() (logger.Level, error) {
	var level logger.Level
	if cfg.LogLevel == "" {
		return logger.LevelWarning, nil
	}
	if err := level.Set(cfg.LogLevel); err != nil {
		return level, fmt.Errorf("unable to parse log level '%s': %w", cfg.LogLevel, err)
	}
	return level, nil
}

func (cfg Config) Validate() error {
	if _, err := cfg.LoggerLevel(); err != nil {
		return err
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, but is %d", cfg.Jobs)
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be within [1, 100], but is %d", cfg.JPEGQuality)
	}
	return nil
}

// Apply copies the processing settings into the thumbnailer.
func (cfg Config) Apply(t *thumbnail.Thumbnailer) {
	t.Jobs = cfg.Jobs
	t.JPEGQuality = cfg.JPEGQuality
	t.KeepPartialFiles = cfg.KeepPartialFiles
}

// ReadConfigFromPath reads the YAML file at cfgPath on top of the values already in cfg.
func ReadConfigFromPath(
	ctx context.Context,
	cfgPath string,
	cfg *Config,
) error {
	expandedPath, err := xpath.Expand(cfgPath)
	if err != nil {
		return fmt.Errorf("unable to expand path '%s': %w", cfgPath, err)
	}
	logger.Debugf(ctx, "reading the config from '%s'", expandedPath)

	b, err := os.ReadFile(expandedPath)
	if err != nil {
		return fmt.Errorf("unable to read file '%s': %w", expandedPath, err)
	}

	if _, err := cfg.Read(b); err != nil {
		return fmt.Errorf("unable to load file '%s': %w", expandedPath, err)
	}
	return nil
}

func WriteConfigToPath(
	ctx context.Context,
	cfgPath string,
	cfg Config,
) error {
	expandedPath, err := xpath.Expand(cfgPath)
	if err != nil {
		return fmt.Errorf("unable to expand path '%s': %w", cfgPath, err)
	}
	logger.Debugf(ctx, "writing the config to '%s'", expandedPath)

	f, err := os.OpenFile(expandedPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to open file '%s' for writing: %w", expandedPath, err)
	}
	defer f.Close()

	if _, err := cfg.WriteTo(f); err != nil {
		return fmt.Errorf("unable to write the config to '%s': %w", expandedPath, err)
	}
	return f.Close()
}
