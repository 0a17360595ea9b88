// Package models contains data structures for the application's domain models.
package models

import (
	"math"
	"time"
)

// Achievement identifiers unlocked by stat thresholds.
const (
	AchievementFirstTimer        = "first_timer"
	AchievementIdeaMachine       = "idea_machine"
	AchievementJudgeJudy         = "judge_judy"
	AchievementCertifiablyInsane = "certifiably_insane"
)

// UserStats holds per-user derived counters. Every field is a
// rebuildable projection of the ideas and ratings tables; the row is
// created lazily on first access with all counters at zero.
type UserStats struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	IdeasSubmitted        int       `gorm:"default:0" json:"ideas_submitted"`
	RatingsGiven          int       `gorm:"default:0" json:"ratings_given"`
	AverageRatingReceived float64   `gorm:"default:0" json:"average_rating_received"`
	TotalRatingsReceived  int       `gorm:"default:0" json:"total_ratings_received"`
	BatshitScore          int       `gorm:"default:0" json:"batshit_score"`
	Achievements          []string  `gorm:"serializer:json" json:"achievements"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (UserStats) TableName() string {
	return "user_stats"
}

// ComputeAchievements evaluates the achievement predicates against the
// current counters. Achievements are recomputed on every read, not
// stored as independent state.
func (s *UserStats) ComputeAchievements() []string {
	achievements := []string{}
	if s.IdeasSubmitted > 0 {
		achievements = append(achievements, AchievementFirstTimer)
	}
	if s.IdeasSubmitted >= 10 {
		achievements = append(achievements, AchievementIdeaMachine)
	}
	if s.RatingsGiven >= 100 {
		achievements = append(achievements, AchievementJudgeJudy)
	}
	if s.AverageRatingReceived >= 9 && s.TotalRatingsReceived >= 10 {
		achievements = append(achievements, AchievementCertifiablyInsane)
	}
	return achievements
}

// ComputeBatshitScore scales the average rating received to a 0-100
// score. Zero until the user has received at least one rating.
func (s *UserStats) ComputeBatshitScore() int {
	if s.TotalRatingsReceived == 0 {
		return 0
	}
	return int(math.Round(s.AverageRatingReceived * 10))
}

// Refresh recomputes the derived achievement list and batshit score
// from the current counters.
func (s *UserStats) Refresh() {
	s.Achievements = s.ComputeAchievements()
	s.BatshitScore = s.ComputeBatshitScore()
}
