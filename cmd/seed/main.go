package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"showcase/internal/config"
	"showcase/internal/domain/models"
	"showcase/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop the projects table before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo projects")
	clearData := flag.Bool("clear-data", false, "Delete all project rows (keep schema)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: no destructive operations against production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: cannot run --drop-tables or --clear-data in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		logger.Info("dropping projects table", "table", tables.Projects)
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop schema: %v", err)
		}
	}

	logger.Info("ensuring schema", "table", tables.Projects)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if *clearData {
		logger.Info("clearing project rows", "table", tables.Projects)
		if err := postgres.ClearData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	if *schemaOnly || *clearData {
		logger.Info("done")
		return
	}

	repo := postgres.NewProjectRepository(&postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	now := time.Now()
	demos := []models.Project{
		{
			ID: uuid.NewString(),
			Author: models.Author{
				ID:          "demo-ada",
				DisplayName: "Ada",
				ImageRef:    "avatars/ada.png",
			},
			Title:       "Weather Station",
			Description: "Solar-powered backyard weather station with a tiny dashboard.",
			Likes:       []string{"demo-grace"},
			Shares:      []string{},
			Comments: []models.Comment{
				{
					ID:         uuid.NewString(),
					AuthorID:   "demo-grace",
					AuthorName: "Grace",
					Text:       "Love the enclosure design!",
					CreatedAt:  now.Add(-2 * time.Hour),
				},
			},
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: uuid.NewString(),
			Author: models.Author{
				ID:          "demo-grace",
				DisplayName: "Grace",
				ImageRef:    "avatars/grace.png",
			},
			Title:       "Pocket Synth",
			Description: "A four-voice synthesizer that fits in a mint tin.",
			Likes:       []string{},
			Shares:      []string{"demo-ada"},
			Comments:    []models.Comment{},
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}

	for i := range demos {
		demos[i].Reconcile()
		if err := repo.Create(ctx, &demos[i]); err != nil {
			log.Fatalf("Failed to seed project %q: %v", demos[i].Title, err)
		}
		logger.Info("seeded project", "id", demos[i].ID, "title", demos[i].Title)
	}

	logger.Info("seeding complete", "projects", len(demos))
}
