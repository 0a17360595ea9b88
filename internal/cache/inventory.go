package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	IdeaKeyPrefix    = "idea:%d"
	ProfileKeyPrefix = "profile:%d"
	StatsKeyPrefix   = "stats:%d"
	FeedKeyPrefix    = "feed:%s:%d:%d"
)

const (
	UserTTL    = 5 * time.Minute
	IdeaTTL    = 5 * time.Minute
	ProfileTTL = 2 * time.Minute
	// FeedTTL is short: aggregates move on every rating. Trending pages
	// are never cached at all since their 24h window slides with the
	// evaluation time.
	FeedTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func IdeaKey(ideaID uint) string {
	return fmt.Sprintf(IdeaKeyPrefix, ideaID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func StatsKey(userID uint) string {
	return fmt.Sprintf(StatsKeyPrefix, userID)
}

func FeedKey(filter string, limit, offset int) string {
	return fmt.Sprintf(FeedKeyPrefix, filter, limit, offset)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, StatsKey(userID))
}

func InvalidateIdea(ctx context.Context, ideaID uint) {
	Invalidate(ctx, IdeaKey(ideaID))
}

// InvalidateFeeds drops every cached feed page. Feed keys carry the
// filter and pagination, so a pattern scan is required.
func InvalidateFeeds(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
