package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password string) (uuid.UUID, string, error)
}

// LoginRequest represents the JSON body for login. The identifier matches
// either the username or the email.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// example: john_doe
	Identifier string `json:"identifier"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`

	// Account id
	UserID uuid.UUID `json:"userId"`

	// Signed bearer token
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates by username or email and returns a bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Identifier == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Identifier and password are required"})
			return
		}

		userID, token, err := svc.Login(r.Context(), req.Identifier, req.Password)
		if err != nil {
			switch err {
			case services.ErrInvalidCredentials:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid credentials"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
			UserID:  userID,
			Token:   token,
		})
	}
}
