// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"batshit/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample user account.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(10),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateIdea constructs and persists a sample idea for the given user.
// The category is picked at random unless overridden.
func (f *Factory) CreateIdea(user *models.User, overrides ...func(*models.Idea)) (*models.Idea, error) {
	idea := &models.Idea{
		Text:        generateIdeaText(),
		Category:    models.Categories[rand.Intn(len(models.Categories))],
		UserID:      user.ID,
		IsAnonymous: rand.Intn(10) == 0,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	idea.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(idea)
	}

	if f.opts.DryRun {
		f.nextID++
		idea.ID = f.nextID
		log.Printf("[dry-run] CreateIdea: user=%d category=%s", idea.UserID, idea.Category)
		return idea, nil
	}

	if err := f.db.Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

// CreateRating persists a rating from the given user on the given idea.
// Aggregates are NOT recomputed here; callers seed in bulk and rebuild once.
func (f *Factory) CreateRating(user *models.User, idea *models.Idea, score int) (*models.Rating, error) {
	rating := &models.Rating{
		UserID: user.ID,
		IdeaID: idea.ID,
		Score:  score,
	}

	if f.opts.DryRun {
		f.nextID++
		rating.ID = f.nextID
		return rating, nil
	}

	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// CreateFriendship persists a friendship edge between two users in the given state.
func (f *Factory) CreateFriendship(requester, addressee *models.User, status models.FriendshipStatus) error {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
	}

	if f.opts.DryRun {
		log.Printf("[dry-run] CreateFriendship: %d -> %d (%s)", requester.ID, addressee.ID, status)
		return nil
	}

	return f.db.Create(friendship).Error
}
