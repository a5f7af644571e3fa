// Main entry point for the Ilinden HLS playlist-reshaping gateway
//
// Responsibilities:
// - Parse command line flags
// - Load configuration
// - Set up signal handling for graceful shutdown
// - Initialize logging and metrics
// - Start the server
// - Wait for termination signals
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilijajolevski/ilinden/internal/api"
	"github.com/ilijajolevski/ilinden/internal/cache"
	"github.com/ilijajolevski/ilinden/internal/config"
	"github.com/ilijajolevski/ilinden/internal/engine"
	"github.com/ilijajolevski/ilinden/internal/fetch"
	"github.com/ilijajolevski/ilinden/internal/manifest"
	"github.com/ilijajolevski/ilinden/internal/middleware"
	"github.com/ilijajolevski/ilinden/internal/registry"
	"github.com/ilijajolevski/ilinden/internal/server"
	"github.com/ilijajolevski/ilinden/internal/telemetry"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	metrics := telemetry.NewMetrics()

	manifestCache := cache.New(cache.Options{ShardCount: cfg.Cache.ShardCount})

	fetcher := fetch.NewSingleFlightFetcher(fetch.NewHTTPFetcher(fetch.Options{
		Timeout:               cfg.Origin.Timeout,
		MaxIdleConns:          cfg.Origin.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.Origin.MaxIdleConnsPerHost,
		MaxConnsPerHost:       cfg.Origin.MaxConnsPerHost,
		IdleConnTimeout:       cfg.Origin.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.Origin.TLSHandshakeTimeout,
		ExpectContinueTimeout: cfg.Origin.ExpectContinueTimeout,
	}))

	store := manifest.New(manifestCache, fetcher)
	reg := registry.New(cfg.Registry.DefaultStream, cfg.Registry.Streams)
	eng := engine.New(store, reg)

	gateway := &api.Gateway{Engine: eng, Cache: manifestCache, Logger: logger}

	router := api.NewRouter()
	router.RegisterGateway(gateway)
	router.RegisterVersionEndpoint(version, buildTime, gitCommit)

	chain := middleware.NewChain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Metrics(metrics),
	)

	srv := server.New(server.OptionsFromConfig(cfg.Server), chain.Then(router.Handler()), logger)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	if err := srv.WaitForShutdown(); err != nil {
		logger.Error("shutdown error", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("server stopped")
}
