// Command main recomputes idea rating aggregates and per-user statistics
// from the ratings table. Run it after bulk imports or to repair drift.
package main

import (
	"context"
	"log"

	"batshit/internal/bootstrap"
	"batshit/internal/config"
	"batshit/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	ctx := context.Background()

	ideaRepo := repository.NewIdeaRepository(db)
	ideas, err := ideaRepo.RebuildAggregates(ctx)
	if err != nil {
		log.Fatalf("Failed to rebuild idea aggregates: %v", err)
	}
	log.Printf("✓ recomputed aggregates for %d ideas", ideas)

	statsRepo := repository.NewStatsRepository(db)
	users, err := statsRepo.RebuildAll(ctx)
	if err != nil {
		log.Fatalf("Failed to rebuild user stats: %v", err)
	}
	log.Printf("✓ recomputed stats for %d users", users)

	log.Println("Rebuild complete")
}
