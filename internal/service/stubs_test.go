package service

import (
	"context"

	"batshit/internal/models"
	"batshit/internal/repository"
)

// Hand-written function-field stubs for the repository interfaces. Each
// noop constructor returns a stub whose methods succeed with zero values;
// tests override only the fields they care about.

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	searchFn        func(context.Context, string, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, query string, excludeUserID uint, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, excludeUserID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		searchFn:        func(context.Context, string, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type ideaRepoStub struct {
	createFn            func(context.Context, *models.Idea) error
	getByIDFn           func(context.Context, uint) (*models.Idea, error)
	listFn              func(context.Context, string, int, int) ([]models.Idea, error)
	listByAuthorFn      func(context.Context, uint, int, int) ([]models.Idea, error)
	updateAggregatesFn  func(context.Context, uint, float64, int) error
	rebuildAggregatesFn func(context.Context) (int64, error)
}

func (s *ideaRepoStub) Create(ctx context.Context, idea *models.Idea) error {
	return s.createFn(ctx, idea)
}
func (s *ideaRepoStub) GetByID(ctx context.Context, id uint) (*models.Idea, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ideaRepoStub) List(ctx context.Context, filter string, limit, offset int) ([]models.Idea, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s *ideaRepoStub) ListByAuthor(ctx context.Context, userID uint, limit, offset int) ([]models.Idea, error) {
	return s.listByAuthorFn(ctx, userID, limit, offset)
}
func (s *ideaRepoStub) UpdateAggregates(ctx context.Context, ideaID uint, avg float64, count int) error {
	return s.updateAggregatesFn(ctx, ideaID, avg, count)
}
func (s *ideaRepoStub) RebuildAggregates(ctx context.Context) (int64, error) {
	return s.rebuildAggregatesFn(ctx)
}

func noopIdeaRepo() *ideaRepoStub {
	return &ideaRepoStub{
		createFn:            func(context.Context, *models.Idea) error { return nil },
		getByIDFn:           func(context.Context, uint) (*models.Idea, error) { return &models.Idea{}, nil },
		listFn:              func(context.Context, string, int, int) ([]models.Idea, error) { return nil, nil },
		listByAuthorFn:      func(context.Context, uint, int, int) ([]models.Idea, error) { return nil, nil },
		updateAggregatesFn:  func(context.Context, uint, float64, int) error { return nil },
		rebuildAggregatesFn: func(context.Context) (int64, error) { return 0, nil },
	}
}

type ratingRepoStub struct {
	createFn                func(context.Context, *models.Rating) error
	getByUserAndIdeaFn      func(context.Context, uint, uint) (*models.Rating, error)
	aggregateForIdeaFn      func(context.Context, uint) (repository.RatingAggregate, error)
	aggregateForAuthorFn    func(context.Context, uint) (repository.RatingAggregate, error)
	averageGivenFn          func(context.Context, []uint) (float64, error)
	categoryAveragesGivenFn func(context.Context, []uint) ([]repository.CategoryAverage, error)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) GetByUserAndIdea(ctx context.Context, userID, ideaID uint) (*models.Rating, error) {
	return s.getByUserAndIdeaFn(ctx, userID, ideaID)
}
func (s *ratingRepoStub) AggregateForIdea(ctx context.Context, ideaID uint) (repository.RatingAggregate, error) {
	return s.aggregateForIdeaFn(ctx, ideaID)
}
func (s *ratingRepoStub) AggregateForAuthor(ctx context.Context, authorID uint) (repository.RatingAggregate, error) {
	return s.aggregateForAuthorFn(ctx, authorID)
}
func (s *ratingRepoStub) AverageGiven(ctx context.Context, userIDs []uint) (float64, error) {
	return s.averageGivenFn(ctx, userIDs)
}
func (s *ratingRepoStub) CategoryAveragesGiven(ctx context.Context, userIDs []uint) ([]repository.CategoryAverage, error) {
	return s.categoryAveragesGivenFn(ctx, userIDs)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		createFn:           func(context.Context, *models.Rating) error { return nil },
		getByUserAndIdeaFn: func(context.Context, uint, uint) (*models.Rating, error) { return nil, nil },
		aggregateForIdeaFn: func(context.Context, uint) (repository.RatingAggregate, error) {
			return repository.RatingAggregate{}, nil
		},
		aggregateForAuthorFn: func(context.Context, uint) (repository.RatingAggregate, error) {
			return repository.RatingAggregate{}, nil
		},
		averageGivenFn: func(context.Context, []uint) (float64, error) { return 0, nil },
		categoryAveragesGivenFn: func(context.Context, []uint) ([]repository.CategoryAverage, error) {
			return nil, nil
		},
	}
}

type statsRepoStub struct {
	getOrCreateFn           func(context.Context, uint) (*models.UserStats, error)
	saveFn                  func(context.Context, *models.UserStats) error
	incrementIdeasFn        func(context.Context, uint) error
	incrementRatingsGivenFn func(context.Context, uint) error
	rebuildAllFn            func(context.Context) (int64, error)
}

func (s *statsRepoStub) GetOrCreate(ctx context.Context, userID uint) (*models.UserStats, error) {
	return s.getOrCreateFn(ctx, userID)
}
func (s *statsRepoStub) Save(ctx context.Context, stats *models.UserStats) error {
	return s.saveFn(ctx, stats)
}
func (s *statsRepoStub) IncrementIdeasSubmitted(ctx context.Context, userID uint) error {
	return s.incrementIdeasFn(ctx, userID)
}
func (s *statsRepoStub) IncrementRatingsGiven(ctx context.Context, userID uint) error {
	return s.incrementRatingsGivenFn(ctx, userID)
}
func (s *statsRepoStub) RebuildAll(ctx context.Context) (int64, error) {
	return s.rebuildAllFn(ctx)
}

func noopStatsRepo() *statsRepoStub {
	return &statsRepoStub{
		getOrCreateFn: func(_ context.Context, userID uint) (*models.UserStats, error) {
			return &models.UserStats{UserID: userID}, nil
		},
		saveFn:                  func(context.Context, *models.UserStats) error { return nil },
		incrementIdeasFn:        func(context.Context, uint) error { return nil },
		incrementRatingsGivenFn: func(context.Context, uint) error { return nil },
		rebuildAllFn:            func(context.Context) (int64, error) { return 0, nil },
	}
}

type friendRepoStub struct {
	createFn                    func(context.Context, *models.Friendship) error
	getByIDFn                   func(context.Context, uint) (*models.Friendship, error)
	getFriendshipBetweenUsersFn func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn                func(context.Context, uint) ([]models.User, error)
	getPendingRequestsFn        func(context.Context, uint) ([]models.Friendship, error)
	getSentRequestsFn           func(context.Context, uint) ([]models.Friendship, error)
	updateStatusFn              func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                    func(context.Context, uint) error
	removeAcceptedFn            func(context.Context, uint, uint) error
	friendIDsFn                 func(context.Context, uint) ([]uint, error)
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getFriendshipBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getSentRequestsFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}
func (s *friendRepoStub) RemoveAcceptedFriendship(ctx context.Context, userID1, userID2 uint) error {
	return s.removeAcceptedFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.friendIDsFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:                    func(context.Context, *models.Friendship) error { return nil },
		getByIDFn:                   func(context.Context, uint) (*models.Friendship, error) { return &models.Friendship{}, nil },
		getFriendshipBetweenUsersFn: func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:                func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getPendingRequestsFn:        func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getSentRequestsFn:           func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		updateStatusFn:              func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:                    func(context.Context, uint) error { return nil },
		removeAcceptedFn:            func(context.Context, uint, uint) error { return nil },
		friendIDsFn:                 func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}
