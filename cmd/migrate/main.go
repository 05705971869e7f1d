package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tailorshop/internal/config"
	"tailorshop/internal/db"
	"tailorshop/internal/migrate"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, 1)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("migrate apply: %v", err)
	}

	logger.Println("migrations applied")
}
