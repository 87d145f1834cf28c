package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"

	"qsmock/internal/api"
	"qsmock/internal/config"
	"qsmock/internal/middleware"
	"qsmock/internal/registry"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		listenAddr string
		region     string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "qsmock",
		Short:         "In-memory QuickSight control-plane emulator",
		Long:          "Serves the QuickSight admin API (groups, users, folders, data sources) against in-memory state, one isolated store per account and region.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(".env"); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
			}
			cfg := config.LoadFromEnv()

			// Flags win over environment.
			if cmd.Flags().Changed("listen") {
				cfg.ListenAddr = listenAddr
			}
			if cmd.Flags().Changed("region") {
				cfg.DefaultRegion = region
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			return serve(cfg)
		},
	}

	rootCmd.Flags().StringVar(&listenAddr, "listen", ":4566", "address to listen on")
	rootCmd.Flags().StringVar(&region, "region", "us-east-1", "region assumed when a request carries no SigV4 credential scope")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qsmock %s (%s)\n", version, commit)
		},
	}
}

func serve(cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	backends := registry.NewBackendSet()
	handler := api.NewHandler(backends, cfg.DefaultRegion, logger)

	limiter := middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	})

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(limiter)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/", handler.Routes())

	logger.Info("listening", "addr", cfg.ListenAddr, "default_region", cfg.DefaultRegion)
	return http.ListenAndServe(cfg.ListenAddr, r)
}
