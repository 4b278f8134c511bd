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

// InteractionToggler defines the interface that the service must implement.
type InteractionToggler interface {
	Toggle(ctx context.Context, kind models.InteractionKind, userID uuid.UUID, tweetID uuid.UUID) (models.InteractionAction, bool, error)
}

// ToggleRequest represents the payload for toggling a like or retweet
// swagger:model ToggleRequest
type ToggleRequest struct {
	TweetID string `json:"tweetId" example:"5c8f9a44-12f0-41f6-9b71-0c1a0a9f7a10"`
}

var toggleMessages = map[models.InteractionAction]string{
	models.ActionLiked:       "Tweet liked",
	models.ActionUnliked:     "Tweet unliked",
	models.ActionRetweeted:   "Tweet retweeted",
	models.ActionUnretweeted: "Tweet unretweeted",
}

// NewToggleLikeHandler returns an HTTP handler that likes a tweet, or
// removes the like when one already exists.
// @Summary Toggle like
// @Tags interactions
// @Accept json
// @Produce json
// @Param request body handlers.ToggleRequest true "Tweet to like or unlike"
// @Success 200 {object} handlers.MessageResponse "Like removed"
// @Success 201 {object} handlers.MessageResponse "Like created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid tweetId"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /interactions/like [post]
// @Security BearerAuth
func NewToggleLikeHandler(svc InteractionToggler) http.HandlerFunc {
	return newToggleHandler(svc, models.InteractionLike)
}

// NewToggleRetweetHandler returns an HTTP handler that retweets a tweet,
// or removes the retweet when one already exists.
// @Summary Toggle retweet
// @Tags interactions
// @Accept json
// @Produce json
// @Param request body handlers.ToggleRequest true "Tweet to retweet or unretweet"
// @Success 200 {object} handlers.MessageResponse "Retweet removed"
// @Success 201 {object} handlers.MessageResponse "Retweet created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid tweetId"
// @Failure 404 {object} handlers.ErrorResponse "Tweet not found"
// @Router /interactions/retweet [post]
// @Security BearerAuth
func NewToggleRetweetHandler(svc InteractionToggler) http.HandlerFunc {
	return newToggleHandler(svc, models.InteractionRetweet)
}

func newToggleHandler(svc InteractionToggler, kind models.InteractionKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ToggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request payload"})
			return
		}
		if req.TweetID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "tweetId is required"})
			return
		}
		tweetID, err := uuid.Parse(req.TweetID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid tweetId"})
			return
		}

		action, created, err := svc.Toggle(ctx, kind, claims.UserID, tweetID)
		if err != nil {
			if errors.Is(err, services.ErrTweetNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Tweet not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if created {
			w.WriteHeader(http.StatusCreated)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(MessageResponse{Message: toggleMessages[action]})
	}
}
