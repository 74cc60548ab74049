package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drozdovdm/sprint-tracker/internal/config"
	"github.com/drozdovdm/sprint-tracker/internal/db"
	"github.com/drozdovdm/sprint-tracker/internal/handler"
	"github.com/drozdovdm/sprint-tracker/internal/handler/server"
	"github.com/drozdovdm/sprint-tracker/internal/repository/postgres"
	"github.com/drozdovdm/sprint-tracker/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	sprintRepo := postgres.NewSprintRepository(database)
	capacityRepo := postgres.NewCapacityRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	userRepo := postgres.NewUserRepository(database)
	teamRepo := postgres.NewTeamRepository(database)

	sprintService := service.NewSprintService(database, sprintRepo, capacityRepo, userRepo, teamRepo)
	capacityService := service.NewCapacityService(capacityRepo, sprintRepo, userRepo, teamRepo)
	progressService := service.NewProgressService(sprintRepo, capacityRepo, taskRepo)

	h := handler.NewHandler(sprintService, capacityService, progressService)
	srv := server.NewServer(h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
