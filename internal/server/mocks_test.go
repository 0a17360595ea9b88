package server

import (
	"context"

	"batshit/internal/models"
	"batshit/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, excludeUserID uint, limit int) ([]models.User, error) {
	args := m.Called(ctx, query, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockStatsRepository is a mock of the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetOrCreate(ctx context.Context, userID uint) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats *models.UserStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsRepository) IncrementIdeasSubmitted(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStatsRepository) IncrementRatingsGiven(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStatsRepository) RebuildAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockIdeaRepository is a mock of the IdeaRepository interface
type MockIdeaRepository struct {
	mock.Mock
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) List(ctx context.Context, filter string, limit, offset int) ([]models.Idea, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]models.Idea, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}

func (m *MockIdeaRepository) UpdateAggregates(ctx context.Context, ideaID uint, avg float64, count int) error {
	args := m.Called(ctx, ideaID, avg, count)
	return args.Error(0)
}

func (m *MockIdeaRepository) RebuildAggregates(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFriendRepository is a mock of the FriendRepository interface
type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *MockFriendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	args := m.Called(ctx, userID1, userID2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFriendRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Friendship), args.Error(1)
}

func (m *MockFriendRepository) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	args := m.Called(ctx, friendshipID, status)
	return args.Error(0)
}

func (m *MockFriendRepository) Delete(ctx context.Context, friendshipID uint) error {
	args := m.Called(ctx, friendshipID)
	return args.Error(0)
}

func (m *MockFriendRepository) RemoveAcceptedFriendship(ctx context.Context, userID1, userID2 uint) error {
	args := m.Called(ctx, userID1, userID2)
	return args.Error(0)
}

func (m *MockFriendRepository) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockRatingRepository is a mock of the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndIdea(ctx context.Context, userID, ideaID uint) (*models.Rating, error) {
	args := m.Called(ctx, userID, ideaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) AggregateForIdea(ctx context.Context, ideaID uint) (repository.RatingAggregate, error) {
	args := m.Called(ctx, ideaID)
	return args.Get(0).(repository.RatingAggregate), args.Error(1)
}

func (m *MockRatingRepository) AggregateForAuthor(ctx context.Context, authorID uint) (repository.RatingAggregate, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(repository.RatingAggregate), args.Error(1)
}

func (m *MockRatingRepository) AverageGiven(ctx context.Context, userIDs []uint) (float64, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) CategoryAveragesGiven(ctx context.Context, userIDs []uint) ([]repository.CategoryAverage, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryAverage), args.Error(1)
}
