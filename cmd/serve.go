package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/api"
	"github.com/hsiaochiang/ExamWordPrep/internal/catalog"
	"github.com/hsiaochiang/ExamWordPrep/internal/config"
	"github.com/hsiaochiang/ExamWordPrep/internal/quiz"
	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"github.com/hsiaochiang/ExamWordPrep/internal/storage/appdata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Init()
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := appdata.Open(cfg.Storage.DataFile, logger)
	if err != nil {
		return err
	}

	words := catalog.NewLoader(cfg.Catalog.Sources, logger).Load(ctx)

	gen := quiz.NewGenerator(nil, logger)
	services := service.InitServices(words, store, gen, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	handler := api.NewHandler(services, store, logger)

	srv := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.App.Timeout,
		WriteTimeout: cfg.App.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
