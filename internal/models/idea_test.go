package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdeaCategoryValid(t *testing.T) {
	for _, c := range Categories {
		require.True(t, c.Valid(), "built-in category %q should be valid", c)
	}

	for _, c := range []IdeaCategory{"", "politics", "Technology", "TECH", "misc"} {
		require.False(t, c.Valid(), "category %q should be invalid", c)
	}
}

func TestValidScore(t *testing.T) {
	for score := RatingMin; score <= RatingMax; score++ {
		require.True(t, ValidScore(score))
	}
	for _, score := range []int{0, -3, 11, 42} {
		require.False(t, ValidScore(score))
	}
}
