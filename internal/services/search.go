package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// SearchPreviewLimit caps each half of the combined search preview.
const SearchPreviewLimit = 5

// UserSearcher defines the user substring search.
type UserSearcher interface {
	SearchByUsername(ctx context.Context, query string, cursor *models.Cursor, limit int) ([]models.FeedUserRowDB, error)
}

// TweetLister is the feed-assembly entry point search reuses for tweets.
type TweetLister interface {
	List(ctx context.Context, scope models.FeedScope, cursor *models.Cursor, pageSize int, viewerID uuid.UUID) (*models.TweetPage, error)
}

// SearchResult is the combined preview returned by the search-all view.
type SearchResult struct {
	Users  []models.UserInfo `json:"users"`
	Tweets []models.Tweet    `json:"tweets"`
}

// SearchService implements keyword search over users and tweets.
type SearchService struct {
	users  UserSearcher
	tweets TweetLister
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(users UserSearcher, tweets TweetLister) *SearchService {
	return &SearchService{users: users, tweets: tweets}
}

// Users returns one cursor page of users whose username contains the query.
func (svc *SearchService) Users(ctx context.Context, query string, cursor *models.Cursor, limit int) (*models.UserPage, error) {
	if limit <= 0 {
		limit = models.DefaultPageSize
	}

	rows, err := svc.users.SearchByUsername(ctx, query, cursor, limit+1)
	if err != nil {
		logger.Log.Errorw("failed to search users", "err", err)
		return nil, err
	}

	var nextCursor *models.Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		c := models.NewCursor(last.CreatedAt, last.UserID)
		nextCursor = &c
	}

	items := make([]models.UserInfo, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.UserInfo{
			ID:       row.UserID,
			Username: row.Username,
			Email:    row.Email,
			Profile: models.ProfileSnippet{
				Bio:       row.Bio,
				AvatarURL: row.AvatarURL,
			},
		})
	}

	return &models.UserPage{Items: items, NextCursor: nextCursor}, nil
}

// Tweets returns one cursor page of tweets whose content contains the
// query, sharing the feed-assembly annotation path.
func (svc *SearchService) Tweets(ctx context.Context, query string, cursor *models.Cursor, pageSize int, viewerID uuid.UUID) (*models.TweetPage, error) {
	return svc.tweets.List(ctx, models.MatchingContentScope(query), cursor, pageSize, viewerID)
}

// All returns the fixed-size combined preview: up to five users and five
// tweets, no cursor. It is a preview, not an exhaustive listing.
func (svc *SearchService) All(ctx context.Context, query string, viewerID uuid.UUID) (*SearchResult, error) {
	userPage, err := svc.Users(ctx, query, nil, SearchPreviewLimit)
	if err != nil {
		return nil, err
	}

	tweetPage, err := svc.tweets.List(ctx, models.MatchingContentScope(query), nil, SearchPreviewLimit, viewerID)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Users:  userPage.Items,
		Tweets: tweetPage.Items,
	}, nil
}
