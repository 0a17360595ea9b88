package service

import (
	"context"

	"batshit/internal/models"
	"batshit/internal/repository"
)

// RatingComparison compares the scores a user hands out against their
// friends and the whole site.
type RatingComparison struct {
	UserAverage       float64              `json:"user_average"`
	FriendsAverage    float64              `json:"friends_average"`
	GlobalAverage     float64              `json:"global_average"`
	CategoryBreakdown []CategoryComparison `json:"category_breakdown"`
}

// CategoryComparison is the per-category slice of a RatingComparison.
type CategoryComparison struct {
	Category       models.IdeaCategory `json:"category"`
	UserAverage    float64             `json:"user_average"`
	FriendsAverage float64             `json:"friends_average"`
	GlobalAverage  float64             `json:"global_average"`
}

// RatingService provides rating recording and aggregate recomputation.
type RatingService struct {
	ratingRepo repository.RatingRepository
	ideaRepo   repository.IdeaRepository
	statsRepo  repository.StatsRepository
	friendRepo repository.FriendRepository
}

// NewRatingService returns a new RatingService.
func NewRatingService(
	ratingRepo repository.RatingRepository,
	ideaRepo repository.IdeaRepository,
	statsRepo repository.StatsRepository,
	friendRepo repository.FriendRepository,
) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		ideaRepo:   ideaRepo,
		statsRepo:  statsRepo,
		friendRepo: friendRepo,
	}
}

// RecordRating persists a new rating and recomputes the idea's and the
// author's aggregates from the full rating set. A second rating by the
// same user for the same idea fails with Conflict and leaves every
// aggregate untouched.
func (s *RatingService) RecordRating(ctx context.Context, userID, ideaID uint, score int) (*models.Rating, error) {
	if !models.ValidScore(score) {
		return nil, models.NewValidationError("Rating must be an integer between 1 and 10")
	}

	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndIdea(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You have already rated this idea")
	}

	rating := &models.Rating{
		UserID: userID,
		IdeaID: ideaID,
		Score:  score,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	// Recompute the idea aggregate by re-reading the complete rating set.
	// Concurrent ratings for the same idea race benignly: whichever
	// recompute finishes last read a full, consistent set.
	agg, err := s.ratingRepo.AggregateForIdea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if err := s.ideaRepo.UpdateAggregates(ctx, ideaID, agg.Average, agg.Count); err != nil {
		return nil, err
	}

	if err := s.statsRepo.IncrementRatingsGiven(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.refreshDerived(ctx, userID); err != nil {
		return nil, err
	}

	// The idea author's received aggregates moved too.
	if err := s.recomputeReceived(ctx, idea.UserID); err != nil {
		return nil, err
	}

	return rating, nil
}

// CheckRating returns the user's rating for the idea, or nil when the
// user has not rated it.
func (s *RatingService) CheckRating(ctx context.Context, userID, ideaID uint) (*models.Rating, error) {
	if _, err := s.ideaRepo.GetByID(ctx, ideaID); err != nil {
		return nil, err
	}
	return s.ratingRepo.GetByUserAndIdea(ctx, userID, ideaID)
}

// Comparison builds the user-vs-friends-vs-global rating comparison,
// overall and per category.
func (s *RatingService) Comparison(ctx context.Context, userID uint) (*RatingComparison, error) {
	friendIDs, err := s.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	userAvg, err := s.ratingRepo.AverageGiven(ctx, []uint{userID})
	if err != nil {
		return nil, err
	}
	friendsAvg, err := s.ratingRepo.AverageGiven(ctx, friendIDs)
	if err != nil {
		return nil, err
	}
	globalAvg, err := s.ratingRepo.AverageGiven(ctx, nil)
	if err != nil {
		return nil, err
	}

	userByCat, err := s.ratingRepo.CategoryAveragesGiven(ctx, []uint{userID})
	if err != nil {
		return nil, err
	}
	friendsByCat, err := s.ratingRepo.CategoryAveragesGiven(ctx, friendIDs)
	if err != nil {
		return nil, err
	}
	globalByCat, err := s.ratingRepo.CategoryAveragesGiven(ctx, nil)
	if err != nil {
		return nil, err
	}

	userMap := categoryMap(userByCat)
	friendsMap := categoryMap(friendsByCat)

	// Global averages define which categories have any ratings at all.
	breakdown := make([]CategoryComparison, 0, len(globalByCat))
	for _, g := range globalByCat {
		breakdown = append(breakdown, CategoryComparison{
			Category:       g.Category,
			UserAverage:    userMap[g.Category],
			FriendsAverage: friendsMap[g.Category],
			GlobalAverage:  g.Average,
		})
	}

	return &RatingComparison{
		UserAverage:       userAvg,
		FriendsAverage:    friendsAvg,
		GlobalAverage:     globalAvg,
		CategoryBreakdown: breakdown,
	}, nil
}

func categoryMap(averages []repository.CategoryAverage) map[models.IdeaCategory]float64 {
	m := make(map[models.IdeaCategory]float64, len(averages))
	for _, a := range averages {
		m[a.Category] = a.Average
	}
	return m
}

// recomputeReceived refreshes an author's received-rating aggregates
// from the full rating set over all of their ideas.
func (s *RatingService) recomputeReceived(ctx context.Context, authorID uint) error {
	received, err := s.ratingRepo.AggregateForAuthor(ctx, authorID)
	if err != nil {
		return err
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, authorID)
	if err != nil {
		return err
	}
	stats.AverageRatingReceived = received.Average
	stats.TotalRatingsReceived = received.Count
	stats.Refresh()
	return s.statsRepo.Save(ctx, stats)
}

func (s *RatingService) refreshDerived(ctx context.Context, userID uint) error {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	stats.Refresh()
	return s.statsRepo.Save(ctx, stats)
}
