// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"batshit/internal/database"
	"batshit/internal/models"
	"batshit/internal/observability"

	"gorm.io/gorm"
)

// RatingAggregate is the full-set aggregate over a group of ratings.
type RatingAggregate struct {
	Average float64
	Count   int
}

// CategoryAverage is the average score given within one idea category.
type CategoryAverage struct {
	Category models.IdeaCategory
	Average  float64
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByUserAndIdea(ctx context.Context, userID, ideaID uint) (*models.Rating, error)
	// AggregateForIdea re-reads the complete rating set for the idea.
	// Aggregates are always recomputed from the full set, never by delta.
	AggregateForIdea(ctx context.Context, ideaID uint) (RatingAggregate, error)
	// AggregateForAuthor aggregates every rating on every idea authored
	// by the user (a second-order aggregate).
	AggregateForAuthor(ctx context.Context, authorID uint) (RatingAggregate, error)
	// AverageGiven returns the mean score the given users handed out.
	// A nil userIDs slice means no user filter (global average).
	AverageGiven(ctx context.Context, userIDs []uint) (float64, error)
	// CategoryAveragesGiven is AverageGiven broken down by idea category.
	CategoryAveragesGiven(ctx context.Context, userIDs []uint) ([]CategoryAverage, error)
}

type ratingRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *ratingRepository) readDB() *gorm.DB {
	if replica := database.GetReadDB(); replica != nil {
		return replica
	}
	return r.db
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) GetByUserAndIdea(ctx context.Context, userID, ideaID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.readDB().WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", userID, ideaID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No rating exists
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

func (r *ratingRepository) AggregateForIdea(ctx context.Context, ideaID uint) (RatingAggregate, error) {
	defer r.metrics.TrackQuery("aggregate", "ratings")()

	var agg struct {
		Avg   float64
		Count int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("idea_id = ?", ideaID).
		Scan(&agg).Error; err != nil {
		return RatingAggregate{}, models.NewInternalError(err)
	}
	return RatingAggregate{Average: agg.Avg, Count: agg.Count}, nil
}

func (r *ratingRepository) AggregateForAuthor(ctx context.Context, authorID uint) (RatingAggregate, error) {
	defer r.metrics.TrackQuery("aggregate_author", "ratings")()

	var agg struct {
		Avg   float64
		Count int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(ratings.score), 0) AS avg, COUNT(*) AS count").
		Joins("JOIN ideas ON ideas.id = ratings.idea_id").
		Where("ideas.user_id = ?", authorID).
		Scan(&agg).Error; err != nil {
		return RatingAggregate{}, models.NewInternalError(err)
	}
	return RatingAggregate{Average: agg.Avg, Count: agg.Count}, nil
}

func (r *ratingRepository) AverageGiven(ctx context.Context, userIDs []uint) (float64, error) {
	db := r.readDB().WithContext(ctx).Model(&models.Rating{})
	if userIDs != nil {
		if len(userIDs) == 0 {
			return 0, nil
		}
		db = db.Where("user_id IN ?", userIDs)
	}

	var avg float64
	if err := db.Select("COALESCE(AVG(score), 0)").Scan(&avg).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return avg, nil
}

func (r *ratingRepository) CategoryAveragesGiven(ctx context.Context, userIDs []uint) ([]CategoryAverage, error) {
	db := r.readDB().WithContext(ctx).
		Model(&models.Rating{}).
		Select("ideas.category AS category, AVG(ratings.score) AS average").
		Joins("JOIN ideas ON ideas.id = ratings.idea_id").
		Group("ideas.category")
	if userIDs != nil {
		if len(userIDs) == 0 {
			return nil, nil
		}
		db = db.Where("ratings.user_id IN ?", userIDs)
	}

	var averages []CategoryAverage
	if err := db.Scan(&averages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return averages, nil
}
