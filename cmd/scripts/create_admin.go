// Command create_admin seeds an admin account so results can be published.
//
//	go run ./cmd/scripts -email admin@example.com -password secret -name "Site Admin"
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/config"
	mongorepo "github.com/Avis17/karunya-draw-tracker/internal/repositories/mongodb"
	"github.com/Avis17/karunya-draw-tracker/internal/services"
	mongodb "github.com/Avis17/karunya-draw-tracker/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	name := flag.String("name", "Admin", "display name for the admin user")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	role := flag.String("role", "admin", "role to assign")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(cfg.MongoDB.Database)
	authService := services.NewAuthService(mongorepo.NewAdminUserRepository(db), cfg)

	admin, err := authService.CreateAdmin(ctx, *name, *email, *password, *role)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created admin %s (%s) with role %s", admin.Name, admin.Email, admin.Role)
}
