package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/logging"
)

const serviceName = "wager-tracker"

// globalOptions are flags shared by every subcommand. Empty values keep the
// environment configuration.
type globalOptions struct {
	wagersFile string
	timezone   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:          "tracker",
		Short:        "Track football wagers against live fixture data",
		Version:      appVersion,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.wagersFile, "wagers", "", "path to the YAML wager slip (default $WAGERS_FILE or wagers.yaml)")
	cmd.PersistentFlags().StringVar(&opts.timezone, "timezone", "", "IANA zone used to render kickoff times (default $TIMEZONE or Europe/Rome)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored table output")

	cmd.AddCommand(newCheckCmd(opts), newServeCmd(opts))
	return cmd
}

// loadConfig reads the environment and applies the shared flag overrides.
func (o *globalOptions) loadConfig() config.Config {
	cfg := config.Load()
	if o.wagersFile != "" {
		cfg.WagersFile = o.wagersFile
	}
	if o.timezone != "" {
		cfg.Timezone = o.timezone
	}
	return cfg
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return logging.NewLoggerTo(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Service: serviceName,
		Version: appVersion,
	}, w)
}
