package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserInfoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	bio := "gopher"

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func(m *MockUserInfoGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			authed: true,
			mockSetup: func(m *MockUserInfoGetter) {
				m.EXPECT().
					GetUserInfo(gomock.Any(), userID).
					Return(&models.UserInfo{
						ID:       userID,
						Username: "john_doe",
						Email:    "john@example.com",
						Profile:  models.ProfileSnippet{Bio: &bio},
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "no identity",
			authed:       false,
			expectedCode: 401,
			expectedErr:  "Unauthorized",
		},
		{
			name:   "not found",
			authed: true,
			mockSetup: func(m *MockUserInfoGetter) {
				m.EXPECT().
					GetUserInfo(gomock.Any(), userID).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedErr:  "User not found",
		},
		{
			name:   "internal server error",
			authed: true,
			mockSetup: func(m *MockUserInfoGetter) {
				m.EXPECT().
					GetUserInfo(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserInfoGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUserInfoHandler(mockSvc)

			var req *http.Request
			if tt.authed {
				req = authedRequest(http.MethodGet, "/api/v1/users/userinfo", userID)
			} else {
				req = httptest.NewRequest(http.MethodGet, "/api/v1/users/userinfo", nil)
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp UserInfoResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID, resp.User.ID)
			assert.Equal(t, "john_doe", resp.User.Username)
			assert.Equal(t, &bio, resp.User.Profile.Bio)
		})
	}
}
