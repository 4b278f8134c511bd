package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSearchUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	next := models.NewCursor(time.Now().UTC(), uuid.New())

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockSearcher)
		expectedCode int
		expectedErr  string
		wantUsers    int
		wantCursor   bool
	}{
		{
			name:   "success",
			target: "/search/users?query=al",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					Users(gomock.Any(), "al", nil, models.DefaultPageSize).
					Return(&models.UserPage{
						Items:      []models.UserInfo{{ID: uuid.New(), Username: "alice"}},
						NextCursor: &next,
					}, nil)
			},
			expectedCode: 200,
			wantUsers:    1,
			wantCursor:   true,
		},
		{
			name:   "no hits",
			target: "/search/users?query=zzz",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					Users(gomock.Any(), "zzz", nil, models.DefaultPageSize).
					Return(&models.UserPage{Items: nil}, nil)
			},
			expectedCode: 200,
			wantUsers:    0,
		},
		{
			name:         "missing query",
			target:       "/search/users",
			expectedCode: 400,
			expectedErr:  "Query parameter is required",
		},
		{
			name:         "blank query",
			target:       "/search/users?query=%20%20",
			expectedCode: 400,
			expectedErr:  "Query parameter is required",
		},
		{
			name:         "invalid cursor",
			target:       "/search/users?query=al&cursor=garbage",
			expectedCode: 400,
			expectedErr:  "Invalid cursor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSearcher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSearchUsersHandler(mockSvc)
			req := authedRequest(http.MethodGet, tt.target, viewerID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp UsersResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Users)
			assert.Len(t, resp.Users, tt.wantUsers)
			if tt.wantCursor {
				assert.NotNil(t, resp.NextCursor)
			} else {
				assert.Nil(t, resp.NextCursor)
			}
		})
	}
}

func TestSearchTweetsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	mockSvc := NewMockSearcher(ctrl)
	mockSvc.EXPECT().
		Tweets(gomock.Any(), "golang", nil, 5, viewerID).
		Return(&models.TweetPage{
			Items: []models.Tweet{{ID: uuid.New(), Content: "golang rocks"}},
		}, nil)

	handler := NewSearchTweetsHandler(mockSvc)
	req := authedRequest(http.MethodGet, "/search/tweets?query=golang&pageSize=5", viewerID)

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp TweetsResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Tweets, 1)
	assert.Equal(t, "golang rocks", resp.Tweets[0].Content)
	assert.Nil(t, resp.NextCursor)
}

func TestSearchAllHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockSearcher)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			target: "/search/all?query=go",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					All(gomock.Any(), "go", viewerID).
					Return(&services.SearchResult{
						Users:  []models.UserInfo{{ID: uuid.New(), Username: "gopher"}},
						Tweets: []models.Tweet{{ID: uuid.New(), Content: "go go go"}},
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "empty result normalized",
			target: "/search/all?query=nothing",
			mockSetup: func(m *MockSearcher) {
				m.EXPECT().
					All(gomock.Any(), "nothing", viewerID).
					Return(&services.SearchResult{}, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing query",
			target:       "/search/all",
			expectedCode: 400,
			expectedErr:  "Query parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSearcher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSearchAllHandler(mockSvc)
			req := authedRequest(http.MethodGet, tt.target, viewerID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp SearchAllResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Users)
			assert.NotNil(t, resp.Tweets)
		})
	}
}
