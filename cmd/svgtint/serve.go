package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/svgtint"
	httpAdapter "github.com/aretw0/svgtint/internal/adapters/http"
	"github.com/aretw0/svgtint/internal/config"
	"github.com/aretw0/svgtint/internal/logging"
	"github.com/aretw0/svgtint/internal/observability"
	"github.com/aretw0/svgtint/internal/presentation/tui"
	"github.com/aretw0/svgtint/pkg/adapters/file"
	"github.com/aretw0/svgtint/pkg/adapters/memory"
	redisStore "github.com/aretw0/svgtint/pkg/adapters/redis"
	"github.com/aretw0/svgtint/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the svgtint engine in server mode, exposing a JSON API over HTTP
for extracting specs, applying gradients and storing documents.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if cmd.Flags().Changed("listen") {
			cfg.Listen, _ = cmd.Flags().GetString("listen")
		}
		if cmd.Flags().Changed("mode") {
			cfg.Mode, _ = cmd.Flags().GetString("mode")
		}
		if cmd.Flags().Changed("redis") {
			cfg.Redis, _ = cmd.Flags().GetString("redis")
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
		}
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		reg := prometheus.NewRegistry()
		metrics := observability.New(reg)

		engineOpts := []svgtint.Option{
			svgtint.WithLogger(logger),
			svgtint.WithLifecycleHooks(metrics.Hooks()),
		}
		if cfg.Mode == config.ModeStructural {
			engineOpts = append(engineOpts, svgtint.WithStructuralRewriter())
		}
		engine := svgtint.New(engineOpts...)

		store := newStore(cfg, logger)
		handler := httpAdapter.NewHandler(engine, store, logger, reg)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		tui.PrintBanner()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting svgtint server", "address", srv.Addr, "mode", engine.Mode())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("Server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "error", err)
				}
			}
			logger.Info("svgtint server stopped gracefully")
		}
	},
}

// newStore picks the document store backend from configuration.
// Redis wins over the data directory; the default is in-memory.
func newStore(cfg config.Config, logger *slog.Logger) ports.DocumentStore {
	switch {
	case cfg.Redis != "":
		logger.Info("Using Redis document store", "address", cfg.Redis)
		return redisStore.New(cfg.Redis, "", 0)
	case cfg.DataDir != "":
		logger.Info("Using file document store", "dir", cfg.DataDir)
		return file.New(cfg.DataDir)
	default:
		return memory.NewStore()
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (overrides config)")
	serveCmd.Flags().String("mode", "", "Rewriter mode: 'pattern' or 'structural' (overrides config)")
	serveCmd.Flags().String("redis", "", "Redis address for document storage (overrides config)")
	serveCmd.Flags().String("data-dir", "", "Directory for file document storage (overrides config)")
}
