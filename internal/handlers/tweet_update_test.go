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

func TestPutTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	editorID := uuid.New()
	tweetID := uuid.New()

	tests := []struct {
		name         string
		target       string
		values       map[string]string
		files        map[string][]imagePart
		mockSetup    func(m *MockTweetUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			target: "/tweets/tweet/" + tweetID.String(),
			values: map[string]string{"content": "edited"},
			mockSetup: func(m *MockTweetUpdater) {
				m.EXPECT().
					Update(gomock.Any(), editorID, tweetID, "edited", gomock.Len(0)).
					Return(&models.Tweet{ID: tweetID, Content: "edited"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "malformed id",
			target:       "/tweets/tweet/not-a-uuid",
			values:       map[string]string{"content": "edited"},
			expectedCode: 400,
			expectedErr:  "Invalid tweet id",
		},
		{
			name:   "not the author",
			target: "/tweets/tweet/" + tweetID.String(),
			values: map[string]string{"content": "edited"},
			mockSetup: func(m *MockTweetUpdater) {
				m.EXPECT().
					Update(gomock.Any(), editorID, tweetID, "edited", gomock.Len(0)).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: 403,
			expectedErr:  "Unauthorized to modify this tweet",
		},
		{
			name:   "image budget exceeded",
			target: "/tweets/tweet/" + tweetID.String(),
			values: map[string]string{"content": "edited"},
			files: map[string][]imagePart{
				"tweetPics": {
					{name: "a.png", contentType: "image/png", data: []byte("a")},
					{name: "b.png", contentType: "image/png", data: []byte("b")},
				},
			},
			mockSetup: func(m *MockTweetUpdater) {
				m.EXPECT().
					Update(gomock.Any(), editorID, tweetID, "edited", gomock.Len(2)).
					Return(nil, services.ErrTooManyImages)
			},
			expectedCode: 400,
			expectedErr:  services.ErrTooManyImages.Error(),
		},
		{
			name:   "not found",
			target: "/tweets/tweet/" + tweetID.String(),
			values: map[string]string{"content": "edited"},
			mockSetup: func(m *MockTweetUpdater) {
				m.EXPECT().
					Update(gomock.Any(), editorID, tweetID, "edited", gomock.Len(0)).
					Return(nil, services.ErrTweetNotFound)
			},
			expectedCode: 404,
			expectedErr:  "Tweet not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTweetUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Put("/tweets/tweet/{id}", NewPutTweetHandler(mockSvc))

			body, contentType := multipartBody(t, tt.values, tt.files)
			req := httptest.NewRequest(http.MethodPut, tt.target, body)
			req.Header.Set("Content-Type", contentType)
			req = withIdentity(req, editorID)

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
			assert.Equal(t, "edited", resp.Tweet.Content)
		})
	}
}
