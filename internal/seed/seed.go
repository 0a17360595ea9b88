// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"batshit/internal/models"
	"batshit/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumIdeas    int
	ShouldClean bool
	SkipBcrypt  bool
	DryRun      bool
	MaxDays     int
}

var (
	ideaOpeners = []string{
		"What if we", "Hear me out:", "Nobody asked, but", "Unpopular opinion:",
		"3am thought:", "Serious question: why don't we", "Pitch:",
		"I can't stop thinking about this:", "Startup idea:",
	}

	ideaBodies = []string{
		"put QR codes on gravestones so you can read the person's last tweets",
		"made a dating app that matches people by their browser history",
		"trained pigeons to deliver cold brew during morning commutes",
		"replaced all office chairs with exercise balls that generate electricity",
		"sold subscriptions to a service that calls you to remind you to drink water",
		"built an alarm clock that donates your money to causes you hate until you get up",
		"opened a restaurant where every dish is based on a childhood memory",
		"made houseplants that glow when they need watering",
		"created a social network exclusively for complaining about other social networks",
		"let people rent out their empty parking spots as nap pods",
		"put tiny museums inside elevators so commutes feel cultured",
		"designed shoes with swappable soles for different terrains",
	}

	ideaClosers = []string{
		"This would absolutely work.", "Tell me I'm wrong.", "I've done zero research.",
		"Investors, my inbox is open.", "The market is ready.", "You're welcome.",
		"I will not be taking questions.", "Trust me on this one.",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d ideas...", opts.NumUsers, opts.NumIdeas)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	ideas, err := createIdeas(factory, users, opts.NumIdeas)
	if err != nil {
		return fmt.Errorf("failed to create ideas: %w", err)
	}
	log.Printf("✓ %d ideas created", len(ideas))

	ratingCount, err := createRatings(factory, users, ideas)
	if err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}
	log.Printf("✓ %d ratings created", ratingCount)

	friendCount, err := createFriendships(factory, users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("✓ %d friendships created", friendCount)

	if !opts.DryRun {
		if err := rebuildDerived(db); err != nil {
			return fmt.Errorf("failed to rebuild aggregates: %w", err)
		}
		log.Println("✓ aggregates and user stats rebuilt")
	}

	log.Println("🌱 Seeding complete")
	return nil
}

// rebuildDerived recomputes idea aggregates and per-user stats from the
// seeded ratings so feeds and profiles are consistent from the first request.
func rebuildDerived(db *gorm.DB) error {
	ctx := context.Background()
	ideaRepo := repository.NewIdeaRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	if _, err := ideaRepo.RebuildAggregates(ctx); err != nil {
		return err
	}
	_, err := statsRepo.RebuildAll(ctx)
	return err
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE ratings, ideas, friendships, user_stats, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func generateIdeaText() string {
	//nolint:gosec // Weak random number generator is fine for seeding
	text := fmt.Sprintf("%s %s. %s",
		ideaOpeners[rand.Intn(len(ideaOpeners))],
		ideaBodies[rand.Intn(len(ideaBodies))],
		ideaClosers[rand.Intn(len(ideaClosers))])
	return strings.TrimSpace(text)
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a few fixed accounts so logins are predictable in dev.
	if count >= 3 {
		baseUsers := []string{"alice", "bob", "test"}
		for _, name := range baseUsers {
			username := name
			user, err := factory.CreateUser(func(u *models.User) {
				u.Username = username
				u.Email = fmt.Sprintf("%s@example.com", username)
				u.Bio = "One of the OGs."
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createIdeas(factory *Factory, users []*models.User, count int) ([]*models.Idea, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attribute ideas to")
	}

	ideas := make([]*models.Idea, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		idea, err := factory.CreateIdea(author)
		if err != nil {
			log.Printf("Failed to create idea: %v", err)
			continue
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

// createRatings has each user rate a random subset of other users' ideas.
// Self-ratings and duplicates are skipped so the unique index never trips.
func createRatings(factory *Factory, users []*models.User, ideas []*models.Idea) (int, error) {
	count := 0
	for _, user := range users {
		rated := make(map[uint]bool)
		numRatings := rand.Intn(len(ideas)/2 + 1)
		for i := 0; i < numRatings; i++ {
			idea := ideas[rand.Intn(len(ideas))]
			if idea.UserID == user.ID || rated[idea.ID] {
				continue
			}
			rated[idea.ID] = true

			// skew toward the extremes so feeds look lively
			score := rand.Intn(models.RatingMax) + 1
			if rand.Intn(3) == 0 {
				score = models.RatingMax - rand.Intn(2)
			}
			if _, err := factory.CreateRating(user, idea, score); err != nil {
				continue
			}
			count++
		}
	}
	return count, nil
}

func createFriendships(factory *Factory, users []*models.User) (int, error) {
	count := 0
	seen := make(map[string]bool)
	statuses := []models.FriendshipStatus{
		models.FriendshipStatusAccepted,
		models.FriendshipStatusAccepted,
		models.FriendshipStatusAccepted,
		models.FriendshipStatusPending,
		models.FriendshipStatusRejected,
	}

	target := len(users) * 2
	for i := 0; i < target; i++ {
		requester := users[rand.Intn(len(users))]
		addressee := users[rand.Intn(len(users))]
		if requester.ID == addressee.ID {
			continue
		}
		key := fmt.Sprintf("%d-%d", min(requester.ID, addressee.ID), max(requester.ID, addressee.ID))
		if seen[key] {
			continue
		}
		seen[key] = true

		status := statuses[rand.Intn(len(statuses))]
		if err := factory.CreateFriendship(requester, addressee, status); err != nil {
			continue
		}
		count++
	}
	return count, nil
}
