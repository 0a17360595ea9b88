package service

import (
	"context"
	"strings"

	"batshit/internal/cache"
	"batshit/internal/models"
	"batshit/internal/repository"
	"batshit/internal/validation"
)

// IdeaService provides idea submission and feed selection business logic.
type IdeaService struct {
	ideaRepo  repository.IdeaRepository
	statsRepo repository.StatsRepository
}

// NewIdeaService returns a new IdeaService.
func NewIdeaService(ideaRepo repository.IdeaRepository, statsRepo repository.StatsRepository) *IdeaService {
	return &IdeaService{
		ideaRepo:  ideaRepo,
		statsRepo: statsRepo,
	}
}

// CreateIdea validates and persists a new idea, then updates the
// author's submission counters and achievements.
func (s *IdeaService) CreateIdea(ctx context.Context, userID uint, text, category string, isAnonymous bool) (*models.Idea, error) {
	if err := validation.ValidateIdeaText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCategory(category); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	idea := &models.Idea{
		Text:        strings.TrimSpace(text),
		Category:    models.IdeaCategory(category),
		IsAnonymous: isAnonymous,
		UserID:      userID,
	}
	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	if err := s.statsRepo.IncrementIdeasSubmitted(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.refreshDerived(ctx, userID); err != nil {
		return nil, err
	}

	return s.ideaRepo.GetByID(ctx, idea.ID)
}

// GetIdea returns a single idea with its author (redacted when anonymous).
func (s *IdeaService) GetIdea(ctx context.Context, ideaID uint) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, ideaID)
}

// ListIdeas returns a feed page for the given filter. Unrecognized
// filters fall back to the fresh feed. Pages are briefly cached per
// (filter, limit, offset).
func (s *IdeaService) ListIdeas(ctx context.Context, filter string, limit, offset int) ([]models.Idea, error) {
	filter = repository.NormalizeFilter(filter)

	// The trending window slides with evaluation time, so a cached page
	// could keep serving an idea past the 24h cutoff. Always read it fresh.
	if filter == repository.FilterTrending {
		return s.ideaRepo.List(ctx, filter, limit, offset)
	}

	var ideas []models.Idea
	key := cache.FeedKey(filter, limit, offset)
	err := cache.Aside(ctx, key, &ideas, cache.FeedTTL, func() error {
		var fetchErr error
		ideas, fetchErr = s.ideaRepo.List(ctx, filter, limit, offset)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// ListByAuthor returns the user's own submissions, newest first.
// Anonymity is not redacted: the author is always shown their own ideas.
func (s *IdeaService) ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]models.Idea, error) {
	return s.ideaRepo.ListByAuthor(ctx, userID, limit, offset)
}

// refreshDerived recomputes the achievement list and batshit score
// after a counter change.
func (s *IdeaService) refreshDerived(ctx context.Context, userID uint) error {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	stats.Refresh()
	return s.statsRepo.Save(ctx, stats)
}
