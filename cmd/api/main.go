package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diconnect/diconnect/internal/config"
	"github.com/diconnect/diconnect/internal/handler"
	"github.com/diconnect/diconnect/internal/repository"
	"github.com/diconnect/diconnect/internal/router"
	"github.com/diconnect/diconnect/internal/service"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() { _ = db.Close() }()

	groupRepo := repository.NewGroupRepository(db)
	pairUpRepo := repository.NewPairUpRepository(db)

	groupService := service.NewGroupService(groupRepo)
	pairUpService := service.NewPairUpService(pairUpRepo)

	groupHandler := handler.NewGroupHandler(groupService)
	pairUpHandler := handler.NewPairUpHandler(pairUpService)

	r := router.SetupRoutes(groupHandler, pairUpHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Infof("API server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
