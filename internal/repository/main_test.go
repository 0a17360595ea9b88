package repository

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"batshit/internal/config"
	"batshit/internal/database"
	"batshit/internal/models"

	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	// Set environment to test
	os.Setenv("APP_ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Repository tests skipped: failed to load test config: %v", err)
		os.Exit(0)
	}

	testDB, err = database.Connect(cfg)
	if err != nil {
		log.Printf("Repository tests skipped: test database unavailable: %v", err)
		os.Exit(0)
	}

	code := m.Run()

	cleanTables(testDB)

	os.Exit(code)
}

// newTestUser inserts a user with a unique username for test isolation.
func newTestUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	user := &models.User{
		Username: fmt.Sprintf("%s_%d", prefix, ts),
		Email:    fmt.Sprintf("%s_%d@example.com", prefix, ts),
		Password: "irrelevant",
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func cleanTables(db *gorm.DB) {
	// Tests use timestamped usernames so rows never collide, but wipe
	// everything at the end to keep the shared in-memory DB small.
	for _, table := range []string{"ratings", "ideas", "friendships", "user_stats", "users"} {
		db.Exec("DELETE FROM " + table)
	}
}
