package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groupform-server-go/commentary"
	"groupform-server-go/config"
	"groupform-server-go/db"
	"groupform-server-go/handlers"
	"groupform-server-go/metrics"
	"groupform-server-go/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, closeStore, err := openStore(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	gen, err := commentary.New(cfg.Commentary)
	if err != nil {
		return err
	}
	if gen == nil {
		logger.Warn("commentary disabled", zap.String("provider", cfg.Commentary.Provider))
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg, "groupform")
	if err != nil {
		return err
	}

	// Create API Handler (injecting the store and pipeline)
	svc := pipeline.NewService(gen, collector, logger)
	apiHandler := handlers.NewAPIHandler(store, svc, cfg.Grouping.DefaultSize, logger)

	router := gin.Default()
	handlers.RegisterRoutes(router, apiHandler, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (db.RosterStore, func(), error) {
	if !cfg.Enabled {
		logger.Info("using in-memory roster store")
		return db.NewMemoryStore(), func() {}, nil
	}

	client, err := db.InitializeRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("error closing Redis client", zap.Error(err))
		}
	}
	return db.NewRedisStore(client, cfg.TTL, logger), closeFn, nil
}
