package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
)

// TweetDeleter defines the interface that the service must implement.
type TweetDeleter interface {
	Delete(ctx context.Context, editorID uuid.UUID, tweetID uuid.UUID) error
}

// NewDeleteTweetHandler returns an HTTP handler that deletes a tweet
// together with its images, replies and interactions, author only.
// @Summary Delete tweet
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet id"
// @Success 200 {object} handlers.MessageResponse "Tweet deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid tweet id"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /tweets/tweet/{id} [delete]
// @Security BearerAuth
func NewDeleteTweetHandler(svc TweetDeleter) http.HandlerFunc {
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

		if err := svc.Delete(ctx, claims.UserID, tweetID); err != nil {
			writeTweetError(w, err, "Tweet not found")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Tweet deleted successfully"})
	}
}
