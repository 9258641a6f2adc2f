package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"quillblog/internal/app"
	"quillblog/internal/config"
	"quillblog/internal/logger"
	"quillblog/internal/router"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(logger.ParseLevel(cfg.LogLevel))

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.UsingDefaultSecret() {
		logger.Warning("SECRET_KEY is not set, sessions are signed with the built-in default")
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Errorf("initialize app: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warningf("close database: %v", err)
		}
	}()

	r, err := router.New(a)
	if err != nil {
		logger.Errorf("build router: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("quillblog listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("listen: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
