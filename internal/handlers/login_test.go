package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      LoginRequest
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedErr  string
		rawBody      bool
	}{
		{
			name:    "success by username",
			reqBody: LoginRequest{Identifier: "john_doe", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return(userID, "JWT_TOKEN", nil)
			},
			expectedCode: 200,
		},
		{
			name:    "success by email",
			reqBody: LoginRequest{Identifier: "john@example.com", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return(userID, "JWT_TOKEN", nil)
			},
			expectedCode: 200,
		},
		{
			name:         "missing fields",
			reqBody:      LoginRequest{Identifier: "john_doe"},
			expectedCode: 400,
			expectedErr:  "Identifier and password are required",
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Identifier: "john_doe", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john_doe", "wrong").
					Return(uuid.Nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: 400,
			expectedErr:  "Invalid credentials",
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Identifier: "john_doe", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return(uuid.Nil, "", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users/login", bytes.NewBuffer(bodyBytes))
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

			var resp LoginResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Login successful", resp.Message)
			assert.Equal(t, userID, resp.UserID)
			assert.Equal(t, "JWT_TOKEN", resp.Token)
		})
	}
}
