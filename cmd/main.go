package main

//
//  @title           loanquote API
//  @version         1.0
//  @description     Fixed-rate loan quoting: monthly payment, total interest and amortization schedules.
//  @termsOfService  https://github.com/guttosm/loanquote
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/loanquote
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quotes
//  @tag.description Loan quotes, schedules and term comparisons
//
//  @tag.name        products
//  @tag.description Loan products and calculator defaults
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/loanquote/config"
	_ "github.com/guttosm/loanquote/docs" // swagger docs
	"github.com/guttosm/loanquote/internal/app"
	"github.com/guttosm/loanquote/internal/batch"
	"github.com/guttosm/loanquote/internal/domain/models"
	"github.com/guttosm/loanquote/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (DB and cache connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the loanquote application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API.
//   - quote: Prints one quote (and optionally its schedule) as JSON.
//   - batch: Quotes every .csv file in --dir and records the results.
//
// Examples:
//
//	loanquote --mode quote --principal 10000 --rate 5 --term 36
//	loanquote --mode quote --product mortgage --principal 250000 --term 360 --schedule
//	loanquote --mode batch --dir ./data/input --parallel 4 --force
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	fs := flag.CommandLine
	mode := fs.String("mode", "api", "Mode: api, quote or batch")
	port := fs.String("port", config.AppConfig.Server.Port, "Port for API mode")

	product := fs.String("product", models.DefaultProduct, "Loan product (personal, auto, mortgage, business, student)")
	principal := fs.Float64("principal", models.DefaultPrincipal, "Amount borrowed")
	rate := fs.Float64("rate", 0, "Annual interest rate percent (default: the product's rate)")
	term := fs.Int("term", int(models.DefaultTermMonths), "Term in months")
	schedule := fs.Bool("schedule", false, "Include the amortization schedule (quote mode)")
	startDate := fs.String("start", "", "Loan start date YYYY-MM-DD for the schedule (default: today)")
	lang := fs.String("lang", config.AppConfig.Quotes.DefaultLocale, "Display locale (en-US or es)")

	dir := fs.String("dir", "./data/input", "Directory with .csv batch files")
	parallel := fs.Int("parallel", 0, "How many files to process concurrently (0=min(CPU, 8))")
	force := fs.Bool("force", false, "Re-import files already imported (replaces their quotes)")
	flag.Parse()

	switch *mode {
	case "quote":
		// keep stdout for the JSON document
		logger.SetOutput(os.Stderr)

		opts := quoteOptions{
			input:    quoteInputFromFlags(fs, *product, *principal, *rate, *term),
			schedule: *schedule,
			locale:   *lang,
		}
		if *startDate != "" {
			start, err := time.Parse("2006-01-02", *startDate)
			if err != nil {
				logger.L().Fatal().Err(err).Str("start", *startDate).Msg("invalid start date, expected YYYY-MM-DD")
			}
			opts.start = start
		}
		if err := runQuote(ctx, os.Stdout, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("quote failed")
		}

	case "batch":
		logger.L().Info().Str("dir", *dir).Msg("running batch import")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := batch.ProcessDirectory(ctx, *dir, db, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("batch import failed")
		}
		logger.L().Info().Msg("batch import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
