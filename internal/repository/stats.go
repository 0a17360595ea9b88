// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"batshit/internal/cache"
	"batshit/internal/database"
	"batshit/internal/models"
	"batshit/internal/observability"

	"gorm.io/gorm"
)

// StatsRepository defines persistence operations for per-user derived stats.
type StatsRepository interface {
	// GetOrCreate returns the user's stats row, creating an all-zero row
	// on first reference.
	GetOrCreate(ctx context.Context, userID uint) (*models.UserStats, error)
	Save(ctx context.Context, stats *models.UserStats) error
	IncrementIdeasSubmitted(ctx context.Context, userID uint) error
	IncrementRatingsGiven(ctx context.Context, userID uint) error
	// RebuildAll recomputes every user's counters from the ideas and
	// ratings tables. Returns the number of users processed.
	RebuildAll(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewStatsRepository returns a new StatsRepository implementation.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *statsRepository) readDB() *gorm.DB {
	if replica := database.GetReadDB(); replica != nil {
		return replica
	}
	return r.db
}

func (r *statsRepository) GetOrCreate(ctx context.Context, userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.readDB().WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	stats = models.UserStats{UserID: userID, Achievements: []string{}}
	if createErr := r.db.WithContext(ctx).Create(&stats).Error; createErr != nil {
		// A concurrent request may have created the row first.
		if isUniqueConstraintError(createErr) {
			if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
				return nil, models.NewInternalError(err)
			}
			return &stats, nil
		}
		return nil, models.NewInternalError(createErr)
	}
	return &stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats *models.UserStats) error {
	if err := r.db.WithContext(ctx).Save(stats).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.StatsKey(stats.UserID))
	cache.Invalidate(ctx, cache.ProfileKey(stats.UserID))
	return nil
}

func (r *statsRepository) IncrementIdeasSubmitted(ctx context.Context, userID uint) error {
	return r.increment(ctx, userID, "ideas_submitted")
}

func (r *statsRepository) IncrementRatingsGiven(ctx context.Context, userID uint) error {
	return r.increment(ctx, userID, "ratings_given")
}

func (r *statsRepository) increment(ctx context.Context, userID uint, column string) error {
	// Ensure the row exists before incrementing.
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.StatsKey(userID))
	cache.Invalidate(ctx, cache.ProfileKey(userID))
	return nil
}

func (r *statsRepository) RebuildAll(ctx context.Context) (int64, error) {
	defer r.metrics.TrackQuery("rebuild", "user_stats")()

	var userIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Pluck("id", &userIDs).Error; err != nil {
		return 0, models.NewInternalError(err)
	}

	for _, userID := range userIDs {
		stats, err := r.GetOrCreate(ctx, userID)
		if err != nil {
			return 0, err
		}

		var ideasSubmitted int64
		if err := r.db.WithContext(ctx).
			Model(&models.Idea{}).
			Where("user_id = ?", userID).
			Count(&ideasSubmitted).Error; err != nil {
			return 0, models.NewInternalError(err)
		}

		var ratingsGiven int64
		if err := r.db.WithContext(ctx).
			Model(&models.Rating{}).
			Where("user_id = ?", userID).
			Count(&ratingsGiven).Error; err != nil {
			return 0, models.NewInternalError(err)
		}

		var received struct {
			Avg   float64
			Count int
		}
		if err := r.db.WithContext(ctx).
			Model(&models.Rating{}).
			Select("COALESCE(AVG(ratings.score), 0) AS avg, COUNT(*) AS count").
			Joins("JOIN ideas ON ideas.id = ratings.idea_id").
			Where("ideas.user_id = ?", userID).
			Scan(&received).Error; err != nil {
			return 0, models.NewInternalError(err)
		}

		stats.IdeasSubmitted = int(ideasSubmitted)
		stats.RatingsGiven = int(ratingsGiven)
		stats.AverageRatingReceived = received.Avg
		stats.TotalRatingsReceived = received.Count
		stats.Refresh()

		if err := r.Save(ctx, stats); err != nil {
			return 0, err
		}
	}

	observability.AggregateRecomputes.WithLabelValues("user_stats").Add(float64(len(userIDs)))
	return int64(len(userIDs)), nil
}
