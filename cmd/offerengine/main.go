// Command offerengine boots the rental-offer search and aggregation
// service: it loads configuration, wires the engine and its metrics and
// logger, and serves the HTTP surface described in spec.md section 6.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"iaros/offer_engine/internal/config"
	"iaros/offer_engine/internal/engine"
	"iaros/offer_engine/internal/httpapi"
	"iaros/offer_engine/internal/logging"
	"iaros/offer_engine/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		ServiceName: "offer-engine",
		Environment: cfg.Environment,
		Format:      cfg.LogFormat,
	})
	defer logger.Sync()

	m := metrics.New(prometheus.DefaultRegisterer)

	eng := engine.New(engine.Options{
		StoreInitialCapacity: cfg.StoreInitialCap,
		CancelCheckEvery:     cfg.CancelCheckEvery,
		Metrics:              m,
		Logger:               logger,
	})

	router := httpapi.NewRouter(eng, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
