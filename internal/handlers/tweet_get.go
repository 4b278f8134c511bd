package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// TweetGetter defines the interface that the service must implement.
type TweetGetter interface {
	GetByID(ctx context.Context, tweetID uuid.UUID, viewerID uuid.UUID) (*models.Tweet, error)
}

// NewGetTweetHandler returns an HTTP handler that fetches a single tweet
// by id, annotated for the authenticated viewer.
// @Summary Get tweet by id
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet id"
// @Success 200 {object} handlers.TweetResponse "Tweet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid tweet id"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/tweet/{id} [get]
// @Security BearerAuth
func NewGetTweetHandler(svc TweetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		tweetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid tweet id"})
			return
		}

		tweet, err := svc.GetByID(ctx, tweetID, claims.UserID)
		if err != nil {
			writeTweetError(w, err, "Tweet not found")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TweetResponse{Tweet: *tweet})
	}
}
