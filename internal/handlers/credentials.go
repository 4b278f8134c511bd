package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// CredentialsChanger defines the account-maintenance operations of the service.
type CredentialsChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error
	UpdateUsername(ctx context.Context, userID uuid.UUID, newUsername string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword"`

	// New password, at least 6 characters
	// required: true
	NewPassword string `json:"newPassword"`
}

// ChangeEmailRequest represents the JSON body for an email change
// swagger:model ChangeEmailRequest
type ChangeEmailRequest struct {
	// New email
	// required: true
	NewEmail string `json:"newEmail"`
}

// ChangeUsernameRequest represents the JSON body for a username change
// swagger:model ChangeUsernameRequest
type ChangeUsernameRequest struct {
	// New username, at least 3 characters
	// required: true
	NewUsername string `json:"newUsername"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.MessageResponse "Password changed successfully"
// @Failure 400 {object} handlers.ErrorResponse "Old password is incorrect / validation failed"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/change-password [put]
// @Security BearerAuth
func NewChangePasswordHandler(svc CredentialsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.OldPassword == "" || len(req.NewPassword) < 6 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "New password must be at least 6 characters"})
			return
		}

		err := svc.ChangePassword(ctx, claims.UserID, req.OldPassword, req.NewPassword)
		if err != nil {
			switch err {
			case services.ErrWrongOldPassword:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Old password is incorrect"})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Password changed successfully"})
	}
}

// NewChangeEmailHandler returns an HTTP handler for email changes.
// @Summary Change email
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ChangeEmailRequest true "Email change request"
// @Success 200 {object} handlers.MessageResponse "Email updated successfully"
// @Failure 400 {object} handlers.ErrorResponse "Email already in use / validation failed"
// @Router /users/change-email [put]
// @Security BearerAuth
func NewChangeEmailHandler(svc CredentialsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ChangeEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if !strings.Contains(req.NewEmail, "@") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid email"})
			return
		}

		if err := svc.UpdateEmail(ctx, claims.UserID, req.NewEmail); err != nil {
			switch err {
			case services.ErrEmailTaken:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Email already in use"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Email updated successfully"})
	}
}

// NewChangeUsernameHandler returns an HTTP handler for username changes.
// @Summary Change username
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.ChangeUsernameRequest true "Username change request"
// @Success 200 {object} handlers.MessageResponse "Username updated successfully"
// @Failure 400 {object} handlers.ErrorResponse "Username already in use / validation failed"
// @Router /users/change-username [put]
// @Security BearerAuth
func NewChangeUsernameHandler(svc CredentialsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ChangeUsernameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if len(req.NewUsername) < 3 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Username must be at least 3 characters"})
			return
		}

		if err := svc.UpdateUsername(ctx, claims.UserID, req.NewUsername); err != nil {
			switch err {
			case services.ErrUsernameTaken:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username already in use"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Username updated successfully"})
	}
}

// NewDeleteAccountHandler returns an HTTP handler for account deletion.
// @Summary Delete account
// @Description Removes the account; profile, tweets, likes and retweets cascade.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Account deleted successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc CredentialsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.DeleteAccount(ctx, claims.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Account deleted successfully"})
	}
}
