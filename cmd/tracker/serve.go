package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/server"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Poll the slip continuously and expose it over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := global.loadConfig()
			if port != "" {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP listen port (default $PORT or 4000)")
	return cmd
}

func runServe(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	slip, err := config.LoadWagers(cfg.WagersFile)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, nil)

	srv, err := server.New(cfg, slip, logger)
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(parent)
	defer stop()
	srv.Run(ctx, stop)
	return nil
}
