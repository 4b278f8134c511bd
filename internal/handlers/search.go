package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/middlewares"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// Searcher defines the interface that the service must implement.
type Searcher interface {
	Users(ctx context.Context, query string, cursor *models.Cursor, limit int) (*models.UserPage, error)
	Tweets(ctx context.Context, query string, cursor *models.Cursor, pageSize int, viewerID uuid.UUID) (*models.TweetPage, error)
	All(ctx context.Context, query string, viewerID uuid.UUID) (*services.SearchResult, error)
}

// UsersResponse is a page of user search hits with a pagination cursor
// swagger:model UsersResponse
type UsersResponse struct {
	Users      []models.UserInfo `json:"users"`
	NextCursor *string           `json:"nextCursor"`
}

// SearchAllResponse is the combined users and tweets search preview
// swagger:model SearchAllResponse
type SearchAllResponse struct {
	Users  []models.UserInfo `json:"users"`
	Tweets []models.Tweet    `json:"tweets"`
}

// NewSearchUsersHandler returns an HTTP handler that searches users by
// username substring, case-insensitive, paginated by cursor.
// @Summary Search users
// @Tags search
// @Produce json
// @Param query query string true "Substring to match against usernames"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param pageSize query int false "Page size, defaults to 10"
// @Success 200 {object} handlers.UsersResponse "Page of users"
// @Failure 400 {object} handlers.ErrorResponse "Missing query or invalid cursor"
// @Router /search/users [get]
// @Security BearerAuth
func NewSearchUsersHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		query, cursor, pageSize, ok := searchParams(w, r)
		if !ok {
			return
		}

		page, err := svc.Users(ctx, query, cursor, pageSize)
		if err != nil {
			writeSearchError(w, err)
			return
		}

		items := page.Items
		if items == nil {
			items = []models.UserInfo{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{Users: items, NextCursor: cursorString(page.NextCursor)})
	}
}

// NewSearchTweetsHandler returns an HTTP handler that searches tweets by
// content substring, case-insensitive, paginated by cursor.
// @Summary Search tweets
// @Tags search
// @Produce json
// @Param query query string true "Substring to match against tweet content"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param pageSize query int false "Page size, defaults to 10"
// @Success 200 {object} handlers.TweetsResponse "Page of tweets"
// @Failure 400 {object} handlers.ErrorResponse "Missing query or invalid cursor"
// @Router /search/tweets [get]
// @Security BearerAuth
func NewSearchTweetsHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		query, cursor, pageSize, ok := searchParams(w, r)
		if !ok {
			return
		}

		page, err := svc.Tweets(ctx, query, cursor, pageSize, claims.UserID)
		if err != nil {
			writeSearchError(w, err)
			return
		}

		items := page.Items
		if items == nil {
			items = []models.Tweet{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TweetsResponse{Tweets: items, NextCursor: cursorString(page.NextCursor)})
	}
}

// NewSearchAllHandler returns an HTTP handler that returns a combined
// preview of up to five matching users and five matching tweets.
// @Summary Search users and tweets
// @Tags search
// @Produce json
// @Param query query string true "Substring to match"
// @Success 200 {object} handlers.SearchAllResponse "Combined preview"
// @Failure 400 {object} handlers.ErrorResponse "Missing query"
// @Router /search/all [get]
// @Security BearerAuth
func NewSearchAllHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("query"))
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Query parameter is required"})
			return
		}

		result, err := svc.All(ctx, query, claims.UserID)
		if err != nil {
			writeSearchError(w, err)
			return
		}

		resp := SearchAllResponse{Users: result.Users, Tweets: result.Tweets}
		if resp.Users == nil {
			resp.Users = []models.UserInfo{}
		}
		if resp.Tweets == nil {
			resp.Tweets = []models.Tweet{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func searchParams(w http.ResponseWriter, r *http.Request) (query string, cursor *models.Cursor, pageSize int, ok bool) {
	query = strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Query parameter is required"})
		return "", nil, 0, false
	}

	cursor, err := models.ParseCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid cursor"})
		return "", nil, 0, false
	}

	pageSize = models.DefaultPageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid pageSize"})
			return "", nil, 0, false
		}
		pageSize = n
	}

	return query, cursor, pageSize, true
}

func writeSearchError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
}
