package service

import (
	"context"

	"batshit/internal/models"
	"batshit/internal/repository"
)

// Profile bundles a user with their derived stats.
type Profile struct {
	User  *models.User      `json:"user"`
	Stats *models.UserStats `json:"stats"`
}

// StatsService exposes per-user derived counters and achievements.
type StatsService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
}

// NewStatsService returns a new StatsService.
func NewStatsService(userRepo repository.UserRepository, statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

// GetProfile returns the user together with their stats. The stats row
// is created lazily (all zero) on first reference, and achievements are
// recomputed from the current counters on every read.
func (s *StatsService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.Refresh()

	return &Profile{User: user, Stats: stats}, nil
}

// GetUserStats returns another user's public stats.
func (s *StatsService) GetUserStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.Refresh()
	return stats, nil
}
