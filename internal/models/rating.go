// Package models contains data structures for the application's domain models.
package models

import "time"

const (
	// RatingMin is the lowest allowed rating score.
	RatingMin = 1
	// RatingMax is the highest allowed rating score.
	RatingMax = 10
)

// Rating is a single user's integer score for one idea. At most one
// rating may exist per (UserID, IdeaID) pair; the repository checks
// for a prior rating before insert rather than relying on a storage
// constraint.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_ratings_user_idea" json:"user_id"`
	IdeaID    uint      `gorm:"not null;index:idx_ratings_user_idea;index" json:"idea_id"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Idea Idea `gorm:"foreignKey:IdeaID" json:"idea,omitempty"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}

// ValidScore reports whether the score is an integer in [RatingMin, RatingMax].
func ValidScore(score int) bool {
	return score >= RatingMin && score <= RatingMax
}
