package bootstrap

import (
	"fmt"

	"batshit/internal/cache"
	"batshit/internal/config"
	"batshit/internal/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis for command-line tools
// that need the same infrastructure as the API server.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Redis is optional; GetClient returns nil when unreachable and
	// callers degrade to uncached operation.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	return db, r, nil
}
