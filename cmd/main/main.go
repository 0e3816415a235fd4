package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"fieldmap-service/internal/cache"
	"fieldmap-service/internal/config"
	"fieldmap-service/internal/fieldmap/service"
	serverhttp "fieldmap-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger := config.SetupLogger(cfg, os.Stdout)

	store, closeStore, err := cache.Open(cfg.CacheDriver, cfg.CachePath)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.CacheDriver).Msg("cache")
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn().Err(err).Msg("cache close")
		}
	}()

	svc := service.New(store, logger,
		service.WithMappingTTL(cfg.MappingCacheTTL),
		service.WithLearnedTTL(cfg.LearnedCacheTTL),
	)
	r := serverhttp.NewRouter(cfg, svc, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Str("cache", cfg.CacheDriver).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
