// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// IdeaCategory is the fixed set of categories an idea can belong to.
type IdeaCategory string

const (
	CategoryTechnology IdeaCategory = "technology"
	CategoryBusiness   IdeaCategory = "business"
	CategoryLifestyle  IdeaCategory = "lifestyle"
	CategoryScience    IdeaCategory = "science"
	CategoryArt        IdeaCategory = "art"
	CategorySocial     IdeaCategory = "social"
	CategoryOther      IdeaCategory = "other"
)

// Categories lists every valid idea category.
var Categories = []IdeaCategory{
	CategoryTechnology,
	CategoryBusiness,
	CategoryLifestyle,
	CategoryScience,
	CategoryArt,
	CategorySocial,
	CategoryOther,
}

// Valid reports whether the category is one of the fixed enumeration.
func (c IdeaCategory) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

const (
	// IdeaTextMinLen is the minimum idea text length in characters.
	IdeaTextMinLen = 10
	// IdeaTextMaxLen is the maximum idea text length in characters.
	IdeaTextMaxLen = 1000
)

// Idea represents a user-submitted idea subject to community rating.
// AverageRating and RatingCount are denormalized projections of the
// ratings table; they are recomputed from the full rating set on every
// write, never adjusted by delta.
type Idea struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Text          string       `gorm:"type:text;not null" json:"text"`
	Category      IdeaCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	IsAnonymous   bool         `gorm:"default:false" json:"is_anonymous"`
	AverageRating float64      `gorm:"default:0;index" json:"average_rating"`
	RatingCount   int          `gorm:"default:0;index" json:"rating_count"`
	UserID        uint         `gorm:"not null;index" json:"-"`
	// Author is nil in API output when IsAnonymous is set.
	Author    *User          `gorm:"foreignKey:UserID" json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Idea) TableName() string {
	return "ideas"
}
