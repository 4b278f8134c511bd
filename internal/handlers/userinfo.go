package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// UserInfoGetter defines the interface that the service must implement.
type UserInfoGetter interface {
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error)
}

// UserInfoResponse wraps the public account view
// swagger:model UserInfoResponse
type UserInfoResponse struct {
	User models.UserInfo `json:"user"`
}

// NewUserInfoHandler returns an HTTP handler for the caller's account view.
// @Summary Get caller account info
// @Description Returns id, username, email and profile snippet of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserInfoResponse "User info"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/userinfo [get]
// @Security BearerAuth
func NewUserInfoHandler(svc UserInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetUserInfo(ctx, claims.UserID)
		if err != nil {
			switch err {
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
		json.NewEncoder(w).Encode(UserInfoResponse{User: *user})
	}
}
