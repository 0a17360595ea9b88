package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdeaText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Exactly Min Length", strings.Repeat("a", 10), false},
		{"Exactly Max Length", strings.Repeat("a", 1000), false},
		{"One Under Min", strings.Repeat("a", 9), true},
		{"One Over Max", strings.Repeat("a", 1001), true},
		{"Empty", "", true},
		{"Whitespace Only", "          ", true},
		{"Padded Short Text", "  short  ", true},
		{"Padded Valid Text", "  a real idea here  ", false},
		// Bounds are in characters, not bytes: each é is 2 bytes.
		{"Multibyte One Under Min", strings.Repeat("é", 9), true},
		{"Multibyte Exactly Min", strings.Repeat("é", 10), false},
		{"Multibyte Under Max", strings.Repeat("é", 600), false},
		{"Multibyte Exactly Max", strings.Repeat("é", 1000), false},
		{"Multibyte One Over Max", strings.Repeat("é", 1001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdeaText(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	t.Parallel()

	for _, category := range []string{"technology", "business", "lifestyle", "science", "art", "social", "other"} {
		assert.NoError(t, ValidateCategory(category))
	}
	for _, category := range []string{"", "Technology", "sports", "misc"} {
		assert.Error(t, ValidateCategory(category))
	}
}
