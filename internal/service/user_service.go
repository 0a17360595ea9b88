package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"batshit/internal/models"
	"batshit/internal/repository"
)

const (
	searchMinQueryLen = 2
	searchMaxResults  = 10
	bioMaxLen         = 500
)

// ProfileUpdate carries the editable profile fields. Nil means
// "leave unchanged"; an empty string clears the field.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Avatar    *string
}

// UserService provides user lookup and search business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns the user by ID.
func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's editable
// profile fields and persists the result.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > bioMaxLen {
		return nil, models.NewValidationError("Bio must not exceed 500 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		user.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Bio != nil {
		user.Bio = strings.TrimSpace(*update.Bio)
	}
	if update.Avatar != nil {
		user.Avatar = strings.TrimSpace(*update.Avatar)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount soft-deletes the user. Their ideas remain but the
// author reference no longer resolves, so feeds show them authorless.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	// Existence check so a stale token gets a 404, not a silent no-op.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// Search finds users by case-insensitive substring over username,
// email and name fields. The requester is excluded from results.
func (s *UserService) Search(ctx context.Context, requesterID uint, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if len(query) < searchMinQueryLen {
		return nil, models.NewValidationError("Search query must be at least 2 characters")
	}
	return s.userRepo.Search(ctx, query, requesterID, searchMaxResults)
}
