package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"batshit/internal/models"
)

// ValidateIdeaText enforces the 10-1000 character bounds on idea text.
// Length is measured in characters (runes, not bytes) after trimming
// surrounding whitespace.
func ValidateIdeaText(text string) error {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < models.IdeaTextMinLen {
		return fmt.Errorf("idea text must be at least %d characters long", models.IdeaTextMinLen)
	}
	if length > models.IdeaTextMaxLen {
		return fmt.Errorf("idea text must not exceed %d characters", models.IdeaTextMaxLen)
	}
	return nil
}

// ValidateCategory checks that the category is one of the fixed enumeration.
func ValidateCategory(category string) error {
	if !models.IdeaCategory(category).Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}
