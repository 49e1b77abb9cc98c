package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsSheets "social-analytics-dashboard/internal/analytics/adapters/sheets"
	analyticsUsecase "social-analytics-dashboard/internal/analytics/core/usecase"
	"social-analytics-dashboard/internal/config"
	"social-analytics-dashboard/internal/dashboard/client"
	"social-analytics-dashboard/internal/dashboard/poller"
	"social-analytics-dashboard/internal/dashboard/tui"
	"social-analytics-dashboard/internal/dashboard/view"
	"social-analytics-dashboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sourceAPI   = "api"
	sourceSheet = "sheet"
)

type options struct {
	configPath string
	source     string
	apiURL     string
	platform   string
	search     string
	interval   time.Duration
	once       bool
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Terminal analytics dashboard",
		Long: `dashboard polls the analytics API (or the published sheet directly)
and renders KPI cards, a per-platform breakdown and the detail table.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"), "Path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Fetch on start and every interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, out)
		},
	}
	watchCmd.Flags().StringVar(&opts.source, "source", sourceAPI, "Row source: api | sheet")
	watchCmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Analytics API base URL (default from config)")
	watchCmd.Flags().StringVar(&opts.platform, "platform", "", "Platform filter: all | Instagram | LinkedIn | YouTube | X")
	watchCmd.Flags().StringVar(&opts.search, "search", "", "Case-insensitive platform search")
	watchCmd.Flags().DurationVar(&opts.interval, "interval", 0, "Poll interval (default from config)")
	watchCmd.Flags().BoolVar(&opts.once, "once", false, "Render a single cycle and exit")

	rootCmd.AddCommand(watchCmd)
	return rootCmd
}

func runWatch(cmd *cobra.Command, opts *options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.apiURL != "" {
		cfg.Dashboard.APIURL = opts.apiURL
	}
	if opts.platform != "" {
		cfg.Dashboard.Platform = opts.platform
	}
	if opts.search != "" {
		cfg.Dashboard.Search = opts.search
	}
	interval := cfg.Dashboard.PollIntervalDuration()
	if opts.interval > 0 {
		interval = opts.interval
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	source, err := buildSource(opts.source, cfg, logger)
	if err != nil {
		return err
	}

	state := view.NewState(source, tui.ToastNotifier{W: out}, logger.Named("view"))
	state.SetPlatform(cfg.Dashboard.Platform)
	state.SetSearch(cfg.Dashboard.Search)

	cycle := func(ctx context.Context) error {
		err := state.Refresh(ctx)
		if renderErr := tui.Render(out, state.Dashboard(), state.Loading(), state.UpdatedAt()); renderErr != nil {
			logger.Error("render failed", zap.Error(renderErr))
		}
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.once {
		return cycle(ctx)
	}

	p, err := poller.New(interval, func(ctx context.Context) { _ = cycle(ctx) })
	if err != nil {
		return err
	}
	if err := p.Start(ctx); err != nil {
		return err
	}
	logger.Info("polling", zap.String("source", opts.source), zap.Duration("interval", interval))

	<-ctx.Done()
	p.Stop()
	return nil
}

func buildSource(name string, cfg *config.Config, logger *zap.Logger) (view.RowSource, error) {
	switch name {
	case sourceAPI:
		return client.New(cfg.Dashboard.APIURL, cfg.Sheet.TimeoutDuration()), nil
	case sourceSheet:
		sheet := analyticsSheets.NewClient(cfg.Sheet.CSVURL, cfg.Sheet.TimeoutDuration(), cfg.Sheet.MaxRedirects)
		uc := analyticsUsecase.NewFetchAnalyticsUseCase(sheet, logger.Named("fetch"))
		return view.RowSourceFunc(uc.Execute), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want %s or %s)", name, sourceAPI, sourceSheet)
	}
}
