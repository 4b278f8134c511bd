package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	tweetID := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockTweetGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			target: "/tweets/tweet/" + tweetID.String(),
			mockSetup: func(m *MockTweetGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), tweetID, viewerID).
					Return(&models.Tweet{ID: tweetID, Content: "hello", UserLiked: true}, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "malformed id",
			target:       "/tweets/tweet/not-a-uuid",
			expectedCode: 400,
			expectedErr:  "Invalid tweet id",
		},
		{
			name:   "not found",
			target: "/tweets/tweet/" + tweetID.String(),
			mockSetup: func(m *MockTweetGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), tweetID, viewerID).
					Return(nil, services.ErrTweetNotFound)
			},
			expectedCode: 404,
			expectedErr:  "Tweet not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTweetGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Get("/tweets/tweet/{id}", NewGetTweetHandler(mockSvc))

			req := authedRequest(http.MethodGet, tt.target, viewerID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp TweetResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tweetID, resp.Tweet.ID)
			assert.True(t, resp.Tweet.UserLiked)
		})
	}
}
