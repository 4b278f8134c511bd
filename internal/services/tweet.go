package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/events"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

var (
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrForbidden      = errors.New("not the author of this tweet")
	ErrEmptyTweet     = errors.New("tweet must have content or images")
	ErrContentTooLong = errors.New("content must be 280 characters or less")
	ErrTooManyImages  = errors.New("maximum is 4 images per tweet")
)

// TweetReader defines read operations over tweets and their annotations.
type TweetReader interface {
	ListFeed(ctx context.Context, scope models.FeedScope, cursor *models.Cursor, limit int, viewerID uuid.UUID) ([]models.FeedRowDB, error)
	GetFeedRowsByIDs(ctx context.Context, tweetIDs []uuid.UUID, viewerID uuid.UUID) ([]models.FeedRowDB, error)
	GetImagesByTweetIDs(ctx context.Context, tweetIDs []uuid.UUID) ([]models.ImgDB, error)
	GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
	CountImages(ctx context.Context, tweetID uuid.UUID) (int, error)
}

// TweetWriter defines write operations over tweets.
type TweetWriter interface {
	Save(ctx context.Context, tweetID, authorID uuid.UUID, content string, parentTweetID *uuid.UUID, imageURLs []string) error
	Update(ctx context.Context, tweetID uuid.UUID, content string, imageURLs []string) error
	Delete(ctx context.Context, tweetID uuid.UUID) error
}

// EventPublisher emits service events; implementations must treat
// publishing as best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

// TweetService implements tweet CRUD and the shared feed assembly.
type TweetService struct {
	reader    TweetReader
	writer    TweetWriter
	uploader  Uploader
	publisher EventPublisher
}

// NewTweetService creates a new TweetService instance.
func NewTweetService(reader TweetReader, writer TweetWriter, uploader Uploader, publisher EventPublisher) *TweetService {
	return &TweetService{
		reader:    reader,
		writer:    writer,
		uploader:  uploader,
		publisher: publisher,
	}
}

// Create validates, uploads attachments and inserts a tweet or reply.
func (svc *TweetService) Create(ctx context.Context, authorID uuid.UUID, content string, parentTweetID *uuid.UUID, images []UploadFile) (*models.Tweet, error) {
	if err := validateTweetContent(content, len(images)); err != nil {
		return nil, err
	}

	if parentTweetID != nil {
		parent, err := svc.reader.GetByID(ctx, *parentTweetID)
		if err != nil {
			logger.Log.Errorw("failed to check parent tweet", "err", err)
			return nil, err
		}
		if parent == nil {
			return nil, ErrTweetNotFound
		}
	}

	imageURLs, err := svc.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	tweetID := uuid.New()
	if err := svc.writer.Save(ctx, tweetID, authorID, content, parentTweetID, imageURLs); err != nil {
		logger.Log.Errorw("failed to save tweet", "err", err, "uploaded_urls", imageURLs)
		return nil, err
	}

	svc.publisher.Publish(ctx, events.Event{
		Type:    events.TypeTweetCreated,
		UserID:  authorID,
		TweetID: tweetID,
	})

	return svc.GetByID(ctx, tweetID, authorID)
}

// GetByID returns one viewer-annotated tweet with one level of parent context.
func (svc *TweetService) GetByID(ctx context.Context, tweetID, viewerID uuid.UUID) (*models.Tweet, error) {
	rows, err := svc.reader.GetFeedRowsByIDs(ctx, []uuid.UUID{tweetID}, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to fetch tweet", "err", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrTweetNotFound
	}

	tweets, err := svc.assemble(ctx, rows, viewerID)
	if err != nil {
		return nil, err
	}
	return &tweets[0], nil
}

// List returns one page of the feed for any scope: global timeline,
// per-author timeline, replies of a tweet, or content search. It fetches
// pageSize+1 rows to learn whether another page exists; the cursor of the
// last kept row becomes the next page token.
func (svc *TweetService) List(ctx context.Context, scope models.FeedScope, cursor *models.Cursor, pageSize int, viewerID uuid.UUID) (*models.TweetPage, error) {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	rows, err := svc.reader.ListFeed(ctx, scope, cursor, pageSize+1, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to list feed", "err", err)
		return nil, err
	}

	var nextCursor *models.Cursor
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		c := models.NewCursor(last.CreatedAt, last.TweetID)
		nextCursor = &c
	}

	items, err := svc.assemble(ctx, rows, viewerID)
	if err != nil {
		return nil, err
	}

	return &models.TweetPage{Items: items, NextCursor: nextCursor}, nil
}

// Update edits a tweet's content and appends uploaded images, author-only.
func (svc *TweetService) Update(ctx context.Context, editorID, tweetID uuid.UUID, content string, images []UploadFile) (*models.Tweet, error) {
	tweet, err := svc.reader.GetByID(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to fetch tweet", "err", err)
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}
	if tweet.AuthorID != editorID {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyTweet
	}
	if utf8.RuneCountInString(content) > models.MaxTweetContentLength {
		return nil, ErrContentTooLong
	}

	existing, err := svc.reader.CountImages(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to count images", "err", err)
		return nil, err
	}
	if existing+len(images) > models.MaxTweetImages {
		return nil, fmt.Errorf("cannot add %d image(s), tweet already has %d image(s): %w", len(images), existing, ErrTooManyImages)
	}

	imageURLs, err := svc.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, tweetID, content, imageURLs); err != nil {
		logger.Log.Errorw("failed to update tweet", "err", err, "uploaded_urls", imageURLs)
		return nil, err
	}

	return svc.GetByID(ctx, tweetID, editorID)
}

// Delete removes a tweet, author-only. Images, likes, retweets and
// replies go with it via FK cascade.
func (svc *TweetService) Delete(ctx context.Context, editorID, tweetID uuid.UUID) error {
	tweet, err := svc.reader.GetByID(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to fetch tweet", "err", err)
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}
	if tweet.AuthorID != editorID {
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, tweetID); err != nil {
		logger.Log.Errorw("failed to delete tweet", "err", err)
		return err
	}

	svc.publisher.Publish(ctx, events.Event{
		Type:    events.TypeTweetDeleted,
		UserID:  editorID,
		TweetID: tweetID,
	})
	return nil
}

// assemble turns annotated rows into API tweets: one batched parent fetch
// (a single level, grandparents are never loaded) and one batched image
// fetch covering page rows and parents.
func (svc *TweetService) assemble(ctx context.Context, rows []models.FeedRowDB, viewerID uuid.UUID) ([]models.Tweet, error) {
	if len(rows) == 0 {
		return []models.Tweet{}, nil
	}

	pageIDs := make([]uuid.UUID, 0, len(rows))
	parentIDSet := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		pageIDs = append(pageIDs, row.TweetID)
		if row.ParentTweetID != nil {
			parentIDSet[*row.ParentTweetID] = struct{}{}
		}
	}

	parentIDs := make([]uuid.UUID, 0, len(parentIDSet))
	for id := range parentIDSet {
		parentIDs = append(parentIDs, id)
	}

	parentRows, err := svc.reader.GetFeedRowsByIDs(ctx, parentIDs, viewerID)
	if err != nil {
		logger.Log.Errorw("failed to fetch parent tweets", "err", err)
		return nil, err
	}
	parents := make(map[uuid.UUID]models.FeedRowDB, len(parentRows))
	for _, row := range parentRows {
		parents[row.TweetID] = row
	}

	imgs, err := svc.reader.GetImagesByTweetIDs(ctx, append(pageIDs, parentIDs...))
	if err != nil {
		logger.Log.Errorw("failed to fetch images", "err", err)
		return nil, err
	}
	imagesByTweet := make(map[uuid.UUID][]models.Img)
	for _, img := range imgs {
		imagesByTweet[img.TweetID] = append(imagesByTweet[img.TweetID], models.Img{ID: img.ImgID, URL: img.URL})
	}

	tweets := make([]models.Tweet, 0, len(rows))
	for _, row := range rows {
		tweet := rowToTweet(row, imagesByTweet)
		if row.ParentTweetID != nil {
			if parentRow, ok := parents[*row.ParentTweetID]; ok {
				parent := rowToTweet(parentRow, imagesByTweet)
				tweet.ParentTweet = &parent
			}
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

func rowToTweet(row models.FeedRowDB, imagesByTweet map[uuid.UUID][]models.Img) models.Tweet {
	images := imagesByTweet[row.TweetID]
	if images == nil {
		images = []models.Img{}
	}
	return models.Tweet{
		ID:            row.TweetID,
		Content:       row.Content,
		ParentTweetID: row.ParentTweetID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		Author: models.Author{
			ID:       row.AuthorID,
			Username: row.Username,
			Email:    row.Email,
			Profile: models.ProfileSnippet{
				Bio:       row.Bio,
				AvatarURL: row.AvatarURL,
			},
		},
		Images:       images,
		LikeCount:    row.LikeCount,
		RetweetCount: row.RetweetCount,
		ReplyCount:   row.ReplyCount,
		UserLiked:    row.ViewerLiked,
	}
}

func (svc *TweetService) uploadImages(ctx context.Context, images []UploadFile) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		path := fmt.Sprintf("tweets/%d_%s", time.Now().UnixMilli(), img.Name)
		url, err := svc.uploader.Upload(ctx, path, img.Data, img.ContentType)
		if err != nil {
			logger.Log.Errorw("failed to upload image", "name", img.Name, "err", err)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func validateTweetContent(content string, imageCount int) error {
	hasContent := strings.TrimSpace(content) != ""
	if !hasContent && imageCount == 0 {
		return ErrEmptyTweet
	}
	// the limit is in characters, not bytes
	if utf8.RuneCountInString(content) > models.MaxTweetContentLength {
		return ErrContentTooLong
	}
	if imageCount > models.MaxTweetImages {
		return ErrTooManyImages
	}
	return nil
}
