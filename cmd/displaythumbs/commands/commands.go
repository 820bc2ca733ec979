package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/displaythumbs/pkg/config"
	"github.com/xaionaro-go/displaythumbs/pkg/thumbnail"
)

type flags struct {
	LoggerLevel      logger.Level
	ConfigPath       string
	Strict           bool
	Jobs             int
	JPEGQuality      int
	KeepPartialFiles bool
}

// New returns the root command: it writes a JPEG thumbnail of every display
// reported by the backend into the temporary directory.
func New(backend thumbnail.Backend) *cobra.Command {
	defaults := config.NewConfig()
	f := flags{
		LoggerLevel: logger.LevelWarning,
		Jobs:        defaults.Jobs,
		JPEGQuality: defaults.JPEGQuality,
	}
	var cfg config.Config

	root := &cobra.Command{
		Use:           "displaythumbs",
		Short:         "Save a JPEG thumbnail of every active display into the temporary directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			level, err := cfg.LoggerLevel()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(level)
			ctx = logger.CtxWithLogger(ctx, l)
			cmd.SetContext(ctx)
			logger.Debugf(ctx, "config: %#+v", cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), backend, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.Var(&f.LoggerLevel, "log-level", "logging level (trace, debug, info, warning, error, panic, fatal)")
	pf.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	pf.BoolVar(&f.Strict, "strict", false, "exit with an error if not a single thumbnail was written")
	pf.IntVar(&f.Jobs, "jobs", f.Jobs, "how many displays to process concurrently")
	pf.IntVar(&f.JPEGQuality, "jpeg-quality", f.JPEGQuality, "JPEG quality, from 1 to 100")
	pf.BoolVar(&f.KeepPartialFiles, "keep-partial-files", false, "do not remove the files that failed to be written completely")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBuildInfo(cmd.OutOrStdout())
		},
	})

	var dumpPath string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML, or save it with --output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dumpPath != "" {
				return config.WriteConfigToPath(cmd.Context(), dumpPath, cfg)
			}
			_, err := cfg.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	configCmd.Flags().StringVarP(&dumpPath, "output", "o", "", "write the config into this file instead of stdout")
	root.AddCommand(configCmd)

	return root
}

// resolveConfig applies the config file (if any) on top of the defaults,
// and then the explicitly set flags on top of that.
func resolveConfig(
	cmd *cobra.Command,
	f flags,
) (config.Config, error) {
	cfg := config.NewConfig()
	if f.ConfigPath != "" {
		if err := config.ReadConfigFromPath(cmd.Context(), f.ConfigPath, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to load the config: %w", err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = f.LoggerLevel.String()
	}
	if changed("strict") {
		cfg.Strict = f.Strict
	}
	if changed("jobs") {
		cfg.Jobs = f.Jobs
	}
	if changed("jpeg-quality") {
		cfg.JPEGQuality = f.JPEGQuality
	}
	if changed("keep-partial-files") {
		cfg.KeepPartialFiles = f.KeepPartialFiles
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(
	ctx context.Context,
	backend thumbnail.Backend,
	cfg config.Config,
	stdout io.Writer,
	stderr io.Writer,
) error {
	t := thumbnail.New(backend, thumbnail.NewConsoleReporter(stdout, stderr))
	cfg.Apply(t)

	result, err := t.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "written %d thumbnails out of %d displays", len(result.Outputs), len(result.DisplayIDs))

	if cfg.Strict {
		if err := result.ErrIfNothingWritten(); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
	}
	return nil
}

// LogError logs an error returned by the command, unless it was already
// printed to the console while the command was running.
func LogError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var enumErr thumbnail.EnumerationError
	if errors.As(err, &enumErr) {
		return
	}
	logger.Error(ctx, err)
}
