package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string, expireAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Log out
// @Description Revokes the presented bearer token for its remaining lifetime.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out successfully"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		token := middlewares.GetTokenFromContext(ctx)
		if claims == nil || token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(ctx, token, claims.ExpireAt); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Logged out successfully"})
	}
}
