package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// TweetCreator defines the interface that the service must implement.
type TweetCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, content string, parentTweetID *uuid.UUID, images []services.UploadFile) (*models.Tweet, error)
}

// TweetResponse wraps a single tweet payload
// swagger:model TweetResponse
type TweetResponse struct {
	Tweet models.Tweet `json:"tweet"`
}

// NewPostTweetHandler returns an HTTP handler that creates a tweet or
// reply from a multipart form: content, optional parentTweetId, and up to
// four images under tweetPics.
// @Summary Create tweet
// @Tags tweets
// @Accept mpfd
// @Produce json
// @Param content formData string false "Tweet text, 280 characters max"
// @Param parentTweetId formData string false "Parent tweet id when replying"
// @Param tweetPics formData file false "Up to 4 images"
// @Success 201 {object} handlers.TweetResponse "Created tweet"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Parent tweet not found"
// @Router /tweets/tweet [post]
// @Security BearerAuth
func NewPostTweetHandler(svc TweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		images, err := readMultipartFiles(r, "tweetPics")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		content := multipartValue(r, "content")

		var parentTweetID *uuid.UUID
		if raw := multipartValue(r, "parentTweetId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid parentTweetId"})
				return
			}
			parentTweetID = &id
		}

		tweet, err := svc.Create(ctx, claims.UserID, content, parentTweetID, images)
		if err != nil {
			writeTweetError(w, err, "Parent tweet not found")
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TweetResponse{Tweet: *tweet})
	}
}

// writeTweetError maps tweet service sentinels to HTTP statuses.
func writeTweetError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrTweetNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: notFoundMessage})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized to modify this tweet"})
	case errors.Is(err, services.ErrEmptyTweet),
		errors.Is(err, services.ErrContentTooLong),
		errors.Is(err, services.ErrTooManyImages):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}
