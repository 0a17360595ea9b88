// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

// Account credential bounds. Passwords are bcrypt-hashed, so the upper
// bound guards against unreasonable inputs rather than storage limits.
const (
	passwordMinLen = 12
	passwordMaxLen = 128
	usernameMinLen = 3
	usernameMaxLen = 30
	emailMaxLen    = 254
)

var (
	digitRE    = regexp.MustCompile(`[0-9]`)
	specialRE  = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRE    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidatePassword checks that an account password meets the policy:
// length bounds plus upper, lower, digit and special characters.
func ValidatePassword(password string) error {
	if len(password) < passwordMinLen {
		return fmt.Errorf("password must be at least %d characters long", passwordMinLen)
	}
	if len(password) > passwordMaxLen {
		return fmt.Errorf("password must not exceed %d characters", passwordMaxLen)
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !digitRE.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}
	if !specialRE.MatchString(password) {
		return fmt.Errorf("password must contain at least one special character (!@#$%%^&*)")
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < usernameMinLen {
		return fmt.Errorf("username must be at least %d characters long", usernameMinLen)
	}
	if len(username) > usernameMaxLen {
		return fmt.Errorf("username must not exceed %d characters", usernameMaxLen)
	}

	if !usernameRE.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	first, last := username[0], username[len(username)-1]
	if first == '_' || first == '-' || last == '_' || last == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRE.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > emailMaxLen {
		return fmt.Errorf("email must not exceed %d characters", emailMaxLen)
	}

	return nil
}
