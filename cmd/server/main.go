package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/config"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/server"
	"plantcare.app/leafclinic/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	redisClient := connectRedis(cfg.RedisURL)

	srv := server.New(cfg, db, redisClient)

	// Seed the disease catalog before accepting requests so request
	// handlers never race on the empty-table check.
	if err := srv.Catalog().EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("failed to seed disease catalog: %v", err)
	}

	log.Printf("leafclinic listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.DiagnosisSession{},
		&model.Disease{},
	)
}

func connectRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, catalog cache disabled: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
