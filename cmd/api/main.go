// @title FitFusion API
// @description Activities and goals backend for the FitFusion client
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/fitfusion/internal/api"
	"github.com/limbo/fitfusion/internal/repository"
	"github.com/limbo/fitfusion/internal/service"
	"github.com/limbo/fitfusion/pkg/cleanup"
	"github.com/limbo/fitfusion/pkg/config"
	"github.com/limbo/fitfusion/pkg/validation"
)

func init() {
	validation.Init()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		log.Fatal("connecting to database error: " + err.Error())
	}
	defer cleanup.CleanUp()

	serv := api.New(&api.ServicesList{
		ActivitiesService: service.NewActivitiesService(repository.NewActivitiesRepo(pool)),
		GoalsService:      service.NewGoalsService(repository.NewGoalsRepo(pool)),
	}, slog.Default())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("API_SHUTDOWN_TIMEOUT", 15*time.Second))
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", slog.String("error", err.Error()))
		}
	}()

	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":5000"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
