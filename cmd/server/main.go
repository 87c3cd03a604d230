package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Palani4051/Bank/app"
	"github.com/Palani4051/Bank/pkg"
)

func main() {
	// Initialize logger
	pkg.InitLogger()
	logger := pkg.Logger

	srv, err := app.NewApp(logger)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	// Start the server in a goroutine to allow signal handling
	go func() {
		logger.Sugar().Infow("Account ledger API started", "addr", srv.Addr)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Handle shutdown signals (SIGINT, SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	// Timeout context for draining connections
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}

	// Flush logs before exit
	_ = logger.Sync()
}
