package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Avis17/karunya-draw-tracker/api/routes"
	"github.com/Avis17/karunya-draw-tracker/internal/config"
	"github.com/Avis17/karunya-draw-tracker/internal/handlers"
	"github.com/Avis17/karunya-draw-tracker/internal/policy"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	mongorepo "github.com/Avis17/karunya-draw-tracker/internal/repositories/mongodb"
	"github.com/Avis17/karunya-draw-tracker/internal/services"
	mongodb "github.com/Avis17/karunya-draw-tracker/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// A malformed slot set or timezone is a deployment error; fail fast.
	slots, err := policy.ParseSlots(cfg.Lottery.SlotTimes)
	if err != nil {
		log.Fatalf("Invalid slot configuration: %v", err)
	}
	loc, err := cfg.Lottery.Location()
	if err != nil {
		log.Fatalf("Invalid timezone configuration: %v", err)
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()
	mongoClient, err := mongodb.NewClient(connectCtx, cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	var resultRepo repositories.ResultRepository = mongorepo.NewResultRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// The unique (drawDate, slotTime) index guarantees one row per slot even
	// under concurrent writes.
	if err := resultRepo.EnsureIndexes(connectCtx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	resultService := services.NewResultService(resultRepo, slots, loc)
	authService := services.NewAuthService(adminRepo, cfg)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		ResultHandler: handlers.NewResultHandler(resultService, loc),
		AdminHandler:  handlers.NewAdminHandler(resultService, loc),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
