package service

import (
	"context"

	"batshit/internal/models"
	"batshit/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest sends a friend request to the target user. A pending or
// accepted edge in either direction blocks the request; a rejected edge
// is terminal and is replaced by the new request.
func (s *FriendService) SendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetFriendshipBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("You are already friends")
		case models.FriendshipStatusPending:
			if existing.RequesterID == userID {
				return nil, models.NewConflictError("Friend request already sent")
			}
			return nil, models.NewConflictError("You already have a pending friend request from this user")
		case models.FriendshipStatusRejected:
			// Terminal state; drop the old record so a fresh request can exist.
			if err := s.friendRepo.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
		}
	}

	friendship := &models.Friendship{
		RequesterID: userID,
		AddresseeID: targetUserID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// RespondToRequest accepts or rejects a pending friend request. Only the
// addressee may respond, and only while the request is pending. Both
// outcomes are terminal; rejected requests are kept, not deleted.
func (s *FriendService) RespondToRequest(ctx context.Context, userID, requestID uint, status models.FriendshipStatus) (*models.Friendship, error) {
	if status != models.FriendshipStatusAccepted && status != models.FriendshipStatusRejected {
		return nil, models.NewValidationError("Status must be 'accepted' or 'rejected'")
	}

	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.AddresseeID != userID {
		return nil, models.NewForbiddenError("You can only respond to friend requests sent to you")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewValidationError("Friend request is not pending")
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	return s.friendRepo.GetByID(ctx, requestID)
}

// GetFriends returns the list of friends for the user.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// GetPendingRequests returns pending friend requests addressed to the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(ctx, userID)
}

// GetSentRequests returns pending friend requests sent by the user.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetSentRequests(ctx, userID)
}

// RemoveFriend deletes an accepted friendship between the two users
// regardless of who originally sent the request. Removing a friendship
// that does not exist is a no-op.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, targetUserID uint) error {
	return s.friendRepo.RemoveAcceptedFriendship(ctx, userID, targetUserID)
}
