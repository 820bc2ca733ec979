package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/displaythumbs/pkg/thumbnail"
)

func TestNewConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	level, err := cfg.LoggerLevel()
	require.NoError(t, err)
	require.Equal(t, logger.LevelWarning, level)
	require.Equal(t, 1, cfg.Jobs)
	require.False(t, cfg.Strict)
}

func TestConfigWriteRead(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.Strict = true
	cfg.Jobs = 3
	cfg.JPEGQuality = 90
	cfg.KeepPartialFiles = true

	var b bytes.Buffer
	n, err := cfg.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)

	var cfgDup Config
	_, err = cfgDup.ReadFrom(&b)
	require.NoError(t, err)
	require.Equal(t, cfg, cfgDup)
}

func TestReadConfigFromPathOverridesDefaults(t *testing.T) {
	ctx := context.Background()
	cfgPath := filepath.Join(t.TempDir(), "displaythumbs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("strict: true\njpeg_quality: 55\n"), 0644))

	cfg := NewConfig()
	require.NoError(t, ReadConfigFromPath(ctx, cfgPath, &cfg))
	require.True(t, cfg.Strict)
	require.Equal(t, 55, cfg.JPEGQuality)
	require.Equal(t, 1, cfg.Jobs, "unset fields keep their defaults")
	require.Equal(t, "warning", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestConfigReadRejectsUnknownKeys(t *testing.T) {
	cfg := NewConfig()
	_, err := cfg.Read([]byte("jbos: 4\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to parse the YAML config")
	require.Equal(t, 1, cfg.Jobs)

	_, err = cfg.Read([]byte("jobs: [1, 2]\n"))
	require.Error(t, err)
}

func TestReadConfigFromPathMissingFile(t *testing.T) {
	cfg := NewConfig()
	err := ReadConfigFromPath(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigFromPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, WriteConfigToPath(context.Background(), "~/cfg.yaml", Config{LogLevel: "info", Jobs: 2, JPEGQuality: 80}))

	_, err := os.Stat(filepath.Join(home, "cfg.yaml"))
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, ReadConfigFromPath(context.Background(), "~/cfg.yaml", &cfg))
	require.Equal(t, 2, cfg.Jobs)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"zero_jobs":     func(cfg *Config) { cfg.Jobs = 0 },
		"quality_low":   func(cfg *Config) { cfg.JPEGQuality = 0 },
		"quality_high":  func(cfg *Config) { cfg.JPEGQuality = 101 },
		"unknown_level": func(cfg *Config) { cfg.LogLevel = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfigApply(t *testing.T) {
	cfg := NewConfig()
	cfg.Jobs = 4
	cfg.JPEGQuality = 33
	cfg.KeepPartialFiles = true

	th := thumbnail.New(nil, nil)
	cfg.Apply(th)
	require.Equal(t, 4, th.Jobs)
	require.Equal(t, 33, th.JPEGQuality)
	require.True(t, th.KeepPartialFiles)
}
