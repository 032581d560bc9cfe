package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/poller"
	"github.com/preston-bernstein/wager-tracker/internal/report"
	"github.com/preston-bernstein/wager-tracker/internal/server"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

type checkOptions struct {
	date     string
	window   int
	timeout  time.Duration
	interval time.Duration
	json     bool
	once     bool
}

func newCheckCmd(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve every wager and print the slip",
		Long: "Resolve every wager on the slip against fixture providers and print a table.\n" +
			"Without --once or --json the table is reprinted each cycle until every wager settles.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.apply(cmd, global.loadConfig())
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cfg, opts, !global.noColor, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.date, "date", "", "match date as YYYY-MM-DD (default today in UTC)")
	f.IntVar(&opts.window, "window", 0, "also search this many days either side of the date")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default $REQUEST_TIMEOUT)")
	f.DurationVar(&opts.interval, "interval", 0, "delay between cycles in watch mode (default $POLL_INTERVAL)")
	f.BoolVar(&opts.json, "json", false, "print one cycle as JSON and exit")
	f.BoolVar(&opts.once, "once", false, "print one cycle and exit")
	return cmd
}

// apply layers explicitly set flags over the loaded configuration.
func (o *checkOptions) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	if o.date != "" {
		if _, err := timeutil.ParseDate(o.date); err != nil {
			return cfg, fmt.Errorf("--date: %w", err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("window") {
		if o.window < 0 {
			return cfg, fmt.Errorf("--window must not be negative")
		}
		cfg.Resolve.DateWindow = o.window
	}
	if flags.Changed("timeout") && o.timeout > 0 {
		cfg.Resolve.Timeout = o.timeout
	}
	if flags.Changed("interval") && o.interval > 0 {
		cfg.PollInterval = o.interval
	}
	return cfg, nil
}

func runCheck(ctx context.Context, cfg config.Config, opts *checkOptions, styled bool, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	slip, err := config.LoadWagers(cfg.WagersFile)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, errOut)

	tr, err := server.NewTracker(cfg, slip, logger, nil)
	if err != nil {
		return err
	}

	if opts.json {
		return report.JSON(out, tr.RunCycle(ctx, opts.date))
	}
	if opts.once {
		return report.Table(out, tr.RunCycle(ctx, opts.date), styled)
	}
	return watch(ctx, tr, poller.Config{
		Interval: cfg.PollInterval,
		Date:     opts.date,
		Logger:   logger,
	}, styled, out)
}

// watch reprints the table after every cycle until the slip settles or ctx
// is cancelled.
func watch(ctx context.Context, runner poller.Runner, cfg poller.Config, styled bool, out io.Writer) error {
	var printErr error
	sink := poller.SinkFunc(func(r tracker.Report) {
		if printErr != nil {
			return
		}
		if err := report.Table(out, r, styled); err != nil {
			printErr = err
			return
		}
		_, printErr = fmt.Fprintln(out)
	})

	p := poller.New(runner, sink, cfg)
	p.Start(ctx)

	select {
	case <-p.Done():
	case <-ctx.Done():
		if err := p.Stop(context.Background()); err != nil {
			return err
		}
		<-p.Done()
	}
	return printErr
}
