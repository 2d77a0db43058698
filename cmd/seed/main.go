package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/pabloapp/pablo-api/config"
	"github.com/pabloapp/pablo-api/internal/domain/entity"
	"github.com/pabloapp/pablo-api/internal/infrastructure/mongodb"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewUserRepository(client.Database(cfg.DatabaseName))

	u := &entity.User{
		Email:    "demo@pablo.app",
		MDP:      "password123",
		Name:     "Pablo",
		Filepath: "avatars/oeuf_", // egg stage, served as-is until the first completion
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s mdp=%s\n", u.ID, u.Email, u.MDP)
}
