package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	analyticsChart "social-analytics-dashboard/internal/analytics/adapters/chart"
	analyticsHttp "social-analytics-dashboard/internal/analytics/adapters/http/fiber"
	analyticsReport "social-analytics-dashboard/internal/analytics/adapters/report"
	analyticsSheets "social-analytics-dashboard/internal/analytics/adapters/sheets"
	analyticsUsecase "social-analytics-dashboard/internal/analytics/core/usecase"
	"social-analytics-dashboard/internal/config"
	"social-analytics-dashboard/internal/logging"
	"social-analytics-dashboard/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "social-analytics-dashboard/docs"
)

// @title Social Analytics Dashboard API
// @version 1.0
// @description Parses the published analytics sheet and serves dashboard aggregates.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Upstream sheet
	sheetSource := analyticsSheets.NewClient(cfg.Sheet.CSVURL, cfg.Sheet.TimeoutDuration(), cfg.Sheet.MaxRedirects)

	// Usecases
	fetchAnalyticsUC := analyticsUsecase.NewFetchAnalyticsUseCase(sheetSource, logger.Named("fetch"))
	getDashboardUC := analyticsUsecase.NewGetDashboardUseCase(fetchAnalyticsUC)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "social-analytics-dashboard",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(analyticsHttp.RequestLogger(logger.Named("http")))
	app.Use(analyticsHttp.CORS())

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(
		fetchAnalyticsUC,
		getDashboardUC,
		analyticsChart.NewRenderer(),
		analyticsReport.WriteXLSX,
	)
	app.Get("/api/analytics", analyticsHandler.FetchAnalytics)
	app.Get("/api/dashboard", analyticsHandler.GetDashboard)
	app.Get("/api/dashboard/charts/:name.png", analyticsHandler.GetChart)
	app.Get("/api/dashboard/report.xlsx", analyticsHandler.DownloadReport)

	// views
	viewHandler := analyticsHttp.NewViewHandler(web.Landing, web.Dashboard)
	app.Get("/", viewHandler.Landing)
	app.Get("/dashboard", viewHandler.Dashboard)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server started", zap.String("addr", cfg.HTTP.Addr))
		return app.Listen(cfg.HTTP.Addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeoutDuration())
		defer cancel()

		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}

	logger.Info("server exiting")
}
