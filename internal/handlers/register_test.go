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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123").
					Return(userID, "JWT_TOKEN", nil)
			},
			expectedCode: 201,
		},
		{
			name: "invalid email",
			reqBody: RegisterRequest{
				Username: "john_doe",
				Email:    "not-an-email",
				Password: "secret123",
			},
			expectedCode: 400,
			expectedErr:  "Invalid email",
		},
		{
			name: "short password",
			reqBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "abc",
			},
			expectedCode: 400,
			expectedErr:  "Password must be at least 6 characters",
		},
		{
			name: "short username",
			reqBody: RegisterRequest{
				Username: "jd",
				Email:    "john@example.com",
				Password: "secret123",
			},
			expectedCode: 400,
			expectedErr:  "Username must be at least 3 characters",
		},
		{
			name: "duplicate",
			reqBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123").
					Return(uuid.Nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedErr:  "Email or username already exists",
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "secret123").
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
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewBuffer(bodyBytes))
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

			var resp RegisterResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "User registered successfully", resp.Message)
			assert.Equal(t, userID, resp.UserID)
			assert.Equal(t, "JWT_TOKEN", resp.Token)
		})
	}
}
