// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"batshit/internal/cache"
	"batshit/internal/database"
	"batshit/internal/models"
	"batshit/internal/observability"

	"gorm.io/gorm"
)

// Feed filter modes. Anything else behaves as FilterFresh.
const (
	FilterFresh      = "fresh"
	FilterTrending   = "trending"
	FilterHallOfFame = "hall-of-fame"
)

const (
	// trendingWindow is how far back the trending feed looks. The window
	// slides with evaluation time.
	trendingWindow = 24 * time.Hour
	// hallOfFameMinRatings is the rating count an idea needs before it is
	// eligible for the hall of fame.
	hallOfFameMinRatings = 10
)

// NormalizeFilter maps unrecognized filter values to FilterFresh.
func NormalizeFilter(filter string) string {
	switch filter {
	case FilterTrending, FilterHallOfFame:
		return filter
	default:
		return FilterFresh
	}
}

// IdeaRepository defines persistence operations for ideas.
type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id uint) (*models.Idea, error)
	List(ctx context.Context, filter string, limit, offset int) ([]models.Idea, error)
	ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]models.Idea, error)
	UpdateAggregates(ctx context.Context, ideaID uint, averageRating float64, ratingCount int) error
	RebuildAggregates(ctx context.Context) (int64, error)
}

type ideaRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewIdeaRepository returns a new IdeaRepository implementation.
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *ideaRepository) readDB() *gorm.DB {
	if replica := database.GetReadDB(); replica != nil {
		return replica
	}
	return r.db
}

// redactAnonymous drops the author reference from anonymous ideas.
// Redaction happens here so anonymous authors never leave the data layer.
func redactAnonymous(idea *models.Idea) {
	if idea.IsAnonymous {
		idea.Author = nil
	}
}

func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeeds(ctx)
	return nil
}

func (r *ideaRepository) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea
	key := cache.IdeaKey(id)

	err := cache.Aside(ctx, key, &idea, cache.IdeaTTL, func() error {
		if err := r.readDB().WithContext(ctx).Preload("Author").First(&idea, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Idea", id)
			}
			return models.NewInternalError(err)
		}
		redactAnonymous(&idea)
		return nil
	})

	if err != nil {
		return nil, err
	}
	// Cached entries were redacted before caching, but redact again in
	// case the flag was toggled by a concurrent write.
	redactAnonymous(&idea)
	return &idea, nil
}

func (r *ideaRepository) List(ctx context.Context, filter string, limit, offset int) ([]models.Idea, error) {
	defer r.metrics.TrackQuery("list", "ideas")()

	db := r.readDB().WithContext(ctx).Preload("Author")

	switch NormalizeFilter(filter) {
	case FilterTrending:
		cutoff := time.Now().Add(-trendingWindow)
		db = db.Where("created_at > ?", cutoff).
			Order("rating_count DESC").Order("id DESC")
	case FilterHallOfFame:
		db = db.Where("rating_count >= ?", hallOfFameMinRatings).
			Order("average_rating DESC").Order("id DESC")
	default:
		db = db.Order("created_at DESC").Order("id DESC")
	}

	var ideas []models.Idea
	if err := db.Limit(limit).Offset(offset).Find(&ideas).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range ideas {
		redactAnonymous(&ideas[i])
	}
	return ideas, nil
}

func (r *ideaRepository) ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := r.readDB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&ideas).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ideas, nil
}

func (r *ideaRepository) UpdateAggregates(ctx context.Context, ideaID uint, averageRating float64, ratingCount int) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", ideaID).
		Updates(map[string]any{
			"average_rating": averageRating,
			"rating_count":   ratingCount,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateIdea(ctx, ideaID)
	cache.InvalidateFeeds(ctx)
	return nil
}

// RebuildAggregates recomputes average_rating and rating_count for every
// idea from the raw ratings table. Ideas with no ratings are reset to zero.
// Returns the number of ideas processed.
func (r *ideaRepository) RebuildAggregates(ctx context.Context) (int64, error) {
	defer r.metrics.TrackQuery("rebuild", "ideas")()

	var ideaIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Idea{}).
		Pluck("id", &ideaIDs).Error; err != nil {
		return 0, models.NewInternalError(err)
	}

	for _, id := range ideaIDs {
		var agg struct {
			Avg   float64
			Count int
		}
		if err := r.db.WithContext(ctx).
			Model(&models.Rating{}).
			Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
			Where("idea_id = ?", id).
			Scan(&agg).Error; err != nil {
			return 0, models.NewInternalError(err)
		}
		if err := r.UpdateAggregates(ctx, id, agg.Avg, agg.Count); err != nil {
			return 0, err
		}
	}

	observability.AggregateRecomputes.WithLabelValues("ideas").Add(float64(len(ideaIDs)))
	return int64(len(ideaIDs)), nil
}
