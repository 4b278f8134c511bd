package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// FeedLister defines the interface that the service must implement.
type FeedLister interface {
	List(ctx context.Context, scope models.FeedScope, cursor *models.Cursor, pageSize int, viewerID uuid.UUID) (*models.TweetPage, error)
}

// TweetsResponse is a page of tweets with an opaque pagination cursor
// swagger:model TweetsResponse
type TweetsResponse struct {
	Tweets     []models.Tweet `json:"tweets"`
	NextCursor *string        `json:"nextCursor"`
}

// RepliesResponse is a page of replies with an opaque pagination cursor
// swagger:model RepliesResponse
type RepliesResponse struct {
	Replies    []models.Tweet `json:"replies"`
	NextCursor *string        `json:"nextCursor"`
}

// NewGetFeedHandler returns an HTTP handler that lists the global feed,
// newest first, paginated by an opaque cursor.
// @Summary List feed
// @Tags tweets
// @Produce json
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param pageSize query int false "Page size, defaults to 10"
// @Success 200 {object} handlers.TweetsResponse "Page of tweets"
// @Failure 400 {object} handlers.ErrorResponse "Invalid cursor"
// @Router /tweets/tweets [get]
// @Security BearerAuth
func NewGetFeedHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listFeed(w, r, svc, models.AllScope(), false)
	}
}

// NewGetUserTweetsHandler returns an HTTP handler that lists the tweets
// of a single author.
// @Summary List tweets by author
// @Tags tweets
// @Produce json
// @Param userId path string true "Author user id"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param pageSize query int false "Page size, defaults to 10"
// @Success 200 {object} handlers.TweetsResponse "Page of tweets"
// @Failure 400 {object} handlers.ErrorResponse "Invalid cursor or user id"
// @Router /tweets/tweets/user/{userId} [get]
// @Security BearerAuth
func NewGetUserTweetsHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user id"})
			return
		}
		listFeed(w, r, svc, models.ByAuthorScope(userID), false)
	}
}

// NewGetRepliesHandler returns an HTTP handler that lists direct replies
// to a tweet.
// @Summary List replies
// @Tags tweets
// @Produce json
// @Param parentTweetId path string true "Parent tweet id"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param pageSize query int false "Page size, defaults to 10"
// @Success 200 {object} handlers.RepliesResponse "Page of replies"
// @Failure 400 {object} handlers.ErrorResponse "Invalid cursor or tweet id"
// @Router /tweets/tweets/replies/{parentTweetId} [get]
// @Security BearerAuth
func NewGetRepliesHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID, err := uuid.Parse(chi.URLParam(r, "parentTweetId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid tweet id"})
			return
		}
		listFeed(w, r, svc, models.RepliesOfScope(parentID), true)
	}
}

func listFeed(w http.ResponseWriter, r *http.Request, svc FeedLister, scope models.FeedScope, asReplies bool) {
	ctx := r.Context()

	claims := middlewares.GetClaimsFromContext(ctx)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return
	}

	cursor, err := models.ParseCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid cursor"})
		return
	}

	pageSize := models.DefaultPageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid pageSize"})
			return
		}
		pageSize = n
	}

	page, err := svc.List(ctx, scope, cursor, pageSize, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCursor) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid cursor"})
			return
		}
		writeTweetError(w, err, "Tweet not found")
		return
	}

	items := page.Items
	if items == nil {
		items = []models.Tweet{}
	}

	w.WriteHeader(http.StatusOK)
	if asReplies {
		json.NewEncoder(w).Encode(RepliesResponse{Replies: items, NextCursor: cursorString(page.NextCursor)})
		return
	}
	json.NewEncoder(w).Encode(TweetsResponse{Tweets: items, NextCursor: cursorString(page.NextCursor)})
}

func cursorString(c *models.Cursor) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
