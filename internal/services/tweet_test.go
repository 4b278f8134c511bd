package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

func newTweetServiceMocks(t *testing.T) (*services.TweetService, *services.MockTweetReader, *services.MockTweetWriter, *services.MockUploader, *services.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockTweetReader(ctrl)
	writer := services.NewMockTweetWriter(ctrl)
	uploader := services.NewMockUploader(ctrl)
	publisher := services.NewMockEventPublisher(ctrl)

	return services.NewTweetService(reader, writer, uploader, publisher), reader, writer, uploader, publisher
}

func feedRow(tweetID, authorID uuid.UUID, content string, createdAt time.Time) models.FeedRowDB {
	return models.FeedRowDB{
		TweetID:   tweetID,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		AuthorID:  authorID,
		Username:  "john",
		Email:     "john@example.com",
	}
}

func TestTweetService_Create_Validation(t *testing.T) {
	svc, _, _, _, _ := newTweetServiceMocks(t)
	authorID := uuid.New()

	tests := []struct {
		name        string
		content     string
		imageCount  int
		expectedErr error
	}{
		{"empty tweet", "   ", 0, services.ErrEmptyTweet},
		{"content too long", strings.Repeat("a", models.MaxTweetContentLength+1), 0, services.ErrContentTooLong},
		{"content too long in runes", strings.Repeat("ы", models.MaxTweetContentLength+1), 0, services.ErrContentTooLong},
		{"too many images", "hello", models.MaxTweetImages + 1, services.ErrTooManyImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := make([]services.UploadFile, tt.imageCount)
			for i := range images {
				images[i] = services.UploadFile{Name: "a.png", Data: []byte{1}, ContentType: "image/png"}
			}

			tweet, err := svc.Create(context.Background(), authorID, tt.content, nil, images)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, tweet)
		})
	}
}

func TestTweetService_Create_ImagesOnlyIsValid(t *testing.T) {
	svc, reader, writer, uploader, publisher := newTweetServiceMocks(t)

	authorID := uuid.New()
	now := time.Now()

	uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), []byte{1}, "image/png").
		Return("http://storage/tweets/pic.png", nil)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), authorID, "", nil, []string{"http://storage/tweets/pic.png"}).
		Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Any(), authorID).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID, _ uuid.UUID) ([]models.FeedRowDB, error) {
			return []models.FeedRowDB{feedRow(ids[0], authorID, "", now)}, nil
		})
	// parent fetch for an empty id set plus the image fetch
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Len(0), authorID).
		Return(nil, nil)
	reader.EXPECT().
		GetImagesByTweetIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	tweet, err := svc.Create(context.Background(), authorID, "", nil, []services.UploadFile{
		{Name: "pic.png", Data: []byte{1}, ContentType: "image/png"},
	})
	require.NoError(t, err)
	assert.Empty(t, tweet.Content)
}

func TestTweetService_Create_MaxLengthMultibyteContent(t *testing.T) {
	svc, reader, writer, _, publisher := newTweetServiceMocks(t)

	authorID := uuid.New()
	now := time.Now()

	// 280 cyrillic characters are more than 280 bytes but still a valid tweet
	content := strings.Repeat("ы", models.MaxTweetContentLength)

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), authorID, content, nil, gomock.Len(0)).
		Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Any(), authorID).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID, _ uuid.UUID) ([]models.FeedRowDB, error) {
			return []models.FeedRowDB{feedRow(ids[0], authorID, content, now)}, nil
		})
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Len(0), authorID).
		Return(nil, nil)
	reader.EXPECT().
		GetImagesByTweetIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	tweet, err := svc.Create(context.Background(), authorID, content, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, content, tweet.Content)
}

func TestTweetService_Create_UnknownParent(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	parentID := uuid.New()
	reader.EXPECT().
		GetByID(gomock.Any(), parentID).
		Return(nil, nil)

	tweet, err := svc.Create(context.Background(), uuid.New(), "reply", &parentID, nil)
	assert.ErrorIs(t, err, services.ErrTweetNotFound)
	assert.Nil(t, tweet)
}

func TestTweetService_List_Pagination(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	viewerID := uuid.New()
	base := time.Now()

	// 11 rows back for pageSize 10 means another page exists
	rows := make([]models.FeedRowDB, 11)
	for i := range rows {
		rows[i] = feedRow(uuid.New(), viewerID, "tweet", base.Add(-time.Duration(i)*time.Minute))
	}

	reader.EXPECT().
		ListFeed(gomock.Any(), models.AllScope(), nil, 11, viewerID).
		Return(rows, nil)
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Len(0), viewerID).
		Return(nil, nil)
	reader.EXPECT().
		GetImagesByTweetIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	page, err := svc.List(context.Background(), models.AllScope(), nil, 10, viewerID)
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, rows[9].TweetID, page.NextCursor.TweetID)
	assert.True(t, page.NextCursor.CreatedAt.Equal(rows[9].CreatedAt))
}

func TestTweetService_List_LastPage(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	viewerID := uuid.New()
	rows := []models.FeedRowDB{
		feedRow(uuid.New(), viewerID, "only one", time.Now()),
	}

	reader.EXPECT().
		ListFeed(gomock.Any(), models.AllScope(), nil, 11, viewerID).
		Return(rows, nil)
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), gomock.Len(0), viewerID).
		Return(nil, nil)
	reader.EXPECT().
		GetImagesByTweetIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	page, err := svc.List(context.Background(), models.AllScope(), nil, 10, viewerID)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Nil(t, page.NextCursor)
}

func TestTweetService_List_AttachesParent(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	viewerID := uuid.New()
	parentID := uuid.New()
	now := time.Now()

	reply := feedRow(uuid.New(), viewerID, "a reply", now)
	reply.ParentTweetID = &parentID

	reader.EXPECT().
		ListFeed(gomock.Any(), gomock.Any(), nil, 11, viewerID).
		Return([]models.FeedRowDB{reply}, nil)
	reader.EXPECT().
		GetFeedRowsByIDs(gomock.Any(), []uuid.UUID{parentID}, viewerID).
		Return([]models.FeedRowDB{feedRow(parentID, viewerID, "the parent", now.Add(-time.Hour))}, nil)
	reader.EXPECT().
		GetImagesByTweetIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	page, err := svc.List(context.Background(), models.AllScope(), nil, 10, viewerID)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	parent := page.Items[0].ParentTweet
	require.NotNil(t, parent)
	assert.Equal(t, parentID, parent.ID)
	assert.Equal(t, "the parent", parent.Content)
	assert.Nil(t, parent.ParentTweet)
}

func TestTweetService_Update_AuthorOnly(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	tweetID := uuid.New()
	reader.EXPECT().
		GetByID(gomock.Any(), tweetID).
		Return(&models.TweetDB{TweetID: tweetID, AuthorID: uuid.New()}, nil)

	tweet, err := svc.Update(context.Background(), uuid.New(), tweetID, "edited", nil)
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, tweet)
}

func TestTweetService_Update_ContentTooLongInRunes(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	authorID := uuid.New()
	tweetID := uuid.New()
	reader.EXPECT().
		GetByID(gomock.Any(), tweetID).
		Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)

	content := strings.Repeat("ы", models.MaxTweetContentLength+1)
	tweet, err := svc.Update(context.Background(), authorID, tweetID, content, nil)
	assert.ErrorIs(t, err, services.ErrContentTooLong)
	assert.Nil(t, tweet)
}

func TestTweetService_Update_ImageBudget(t *testing.T) {
	svc, reader, _, _, _ := newTweetServiceMocks(t)

	authorID := uuid.New()
	tweetID := uuid.New()

	reader.EXPECT().
		GetByID(gomock.Any(), tweetID).
		Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)
	reader.EXPECT().
		CountImages(gomock.Any(), tweetID).
		Return(3, nil)

	images := []services.UploadFile{
		{Name: "a.png", ContentType: "image/png"},
		{Name: "b.png", ContentType: "image/png"},
	}

	tweet, err := svc.Update(context.Background(), authorID, tweetID, "edited", images)
	assert.ErrorIs(t, err, services.ErrTooManyImages)
	assert.Nil(t, tweet)
}

func TestTweetService_Delete(t *testing.T) {
	svc, reader, writer, _, publisher := newTweetServiceMocks(t)

	authorID := uuid.New()
	tweetID := uuid.New()

	tests := []struct {
		name        string
		editorID    uuid.UUID
		mockSetup   func()
		expectedErr error
	}{
		{
			name:     "success",
			editorID: authorID,
			mockSetup: func() {
				reader.EXPECT().
					GetByID(gomock.Any(), tweetID).
					Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)
				writer.EXPECT().
					Delete(gomock.Any(), tweetID).
					Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "not the author",
			editorID: uuid.New(),
			mockSetup: func() {
				reader.EXPECT().
					GetByID(gomock.Any(), tweetID).
					Return(&models.TweetDB{TweetID: tweetID, AuthorID: authorID}, nil)
			},
			expectedErr: services.ErrForbidden,
		},
		{
			name:     "unknown tweet",
			editorID: authorID,
			mockSetup: func() {
				reader.EXPECT().
					GetByID(gomock.Any(), tweetID).
					Return(nil, nil)
			},
			expectedErr: services.ErrTweetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := svc.Delete(context.Background(), tt.editorID, tweetID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
