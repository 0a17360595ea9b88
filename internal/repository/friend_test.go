package repository

import (
	"context"
	"testing"

	"batshit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRepository_Integration(t *testing.T) {
	repo := NewFriendRepository(testDB)
	ctx := context.Background()

	u1 := newTestUser(t, "fr_one")
	u2 := newTestUser(t, "fr_two")

	t.Run("Create and GetPendingRequests", func(t *testing.T) {
		friendship := &models.Friendship{
			RequesterID: u1.ID,
			AddresseeID: u2.ID,
			Status:      models.FriendshipStatusPending,
		}

		err := repo.Create(ctx, friendship)
		require.NoError(t, err)

		reqs, err := repo.GetPendingRequests(ctx, u2.ID)
		assert.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, u1.ID, reqs[0].RequesterID)

		sent, err := repo.GetSentRequests(ctx, u1.ID)
		assert.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, u2.ID, sent[0].AddresseeID)
	})

	t.Run("GetFriendshipBetweenUsers matches either direction", func(t *testing.T) {
		forward, err := repo.GetFriendshipBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		require.NotNil(t, forward)

		reverse, err := repo.GetFriendshipBetweenUsers(ctx, u2.ID, u1.ID)
		require.NoError(t, err)
		require.NotNil(t, reverse)
		assert.Equal(t, forward.ID, reverse.ID)
	})

	t.Run("UpdateStatus and GetFriends", func(t *testing.T) {
		f, _ := repo.GetFriendshipBetweenUsers(ctx, u1.ID, u2.ID)
		err := repo.UpdateStatus(ctx, f.ID, models.FriendshipStatusAccepted)
		assert.NoError(t, err)

		friends, err := repo.GetFriends(ctx, u1.ID)
		assert.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, u2.Username, friends[0].Username)

		ids, err := repo.FriendIDs(ctx, u2.ID)
		assert.NoError(t, err)
		assert.Equal(t, []uint{u1.ID}, ids)
	})

	t.Run("RemoveAcceptedFriendship deletes the accepted edge", func(t *testing.T) {
		err := repo.RemoveAcceptedFriendship(ctx, u2.ID, u1.ID)
		assert.NoError(t, err)

		friends, _ := repo.GetFriends(ctx, u1.ID)
		assert.Empty(t, friends)
	})

	t.Run("RemoveAcceptedFriendship is a no-op when not friends", func(t *testing.T) {
		err := repo.RemoveAcceptedFriendship(ctx, u1.ID, u2.ID)
		assert.NoError(t, err)
	})

	t.Run("rejected requests stay on record", func(t *testing.T) {
		friendship := &models.Friendship{
			RequesterID: u2.ID,
			AddresseeID: u1.ID,
			Status:      models.FriendshipStatusPending,
		}
		require.NoError(t, repo.Create(ctx, friendship))
		require.NoError(t, repo.UpdateStatus(ctx, friendship.ID, models.FriendshipStatusRejected))

		got, err := repo.GetFriendshipBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.FriendshipStatusRejected, got.Status)

		// Rejected edges never surface as friendships.
		friends, _ := repo.GetFriends(ctx, u1.ID)
		assert.Empty(t, friends)
	})
}
