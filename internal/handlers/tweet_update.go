package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// TweetUpdater defines the interface that the service must implement.
type TweetUpdater interface {
	Update(ctx context.Context, editorID uuid.UUID, tweetID uuid.UUID, content string, images []services.UploadFile) (*models.Tweet, error)
}

// NewPutTweetHandler returns an HTTP handler that edits a tweet's content
// and appends new images, author only.
// @Summary Update tweet
// @Tags tweets
// @Accept mpfd
// @Produce json
// @Param id path string true "Tweet id"
// @Param content formData string false "New tweet text, 280 characters max"
// @Param tweetPics formData file false "Images to append, 4 per tweet max"
// @Success 200 {object} handlers.TweetResponse "Updated tweet"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/tweet/{id} [put]
// @Security BearerAuth
func NewPutTweetHandler(svc TweetUpdater) http.HandlerFunc {
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

		images, err := readMultipartFiles(r, "tweetPics")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		tweet, err := svc.Update(ctx, claims.UserID, tweetID, multipartValue(r, "content"), images)
		if err != nil {
			writeTweetError(w, err, "Tweet not found")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TweetResponse{Tweet: *tweet})
	}
}
