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

// ProfileGetter defines the read interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileUpserter defines the write interface that the service must implement.
type ProfileUpserter interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, bio *string, avatar *services.UploadFile) (*models.ProfileDB, bool, error)
}

// ProfileResponse wraps the profile payload
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Success message, set on writes
	Message string `json:"message,omitempty"`

	Profile models.ProfileDB `json:"profile"`
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /users/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		profile, err := svc.GetProfile(ctx, claims.UserID)
		if err != nil {
			switch err {
			case services.ErrProfileNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{Profile: *profile})
	}
}

// NewPostProfileHandler returns an HTTP handler that creates or updates
// the caller's profile from a multipart form (bio + optional avatar file).
// @Summary Create or update profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Param bio formData string false "Profile bio"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} handlers.ProfileResponse "Profile updated"
// @Success 201 {object} handlers.ProfileResponse "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid upload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/profile [post]
// @Security BearerAuth
func NewPostProfileHandler(svc ProfileUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		avatars, err := readMultipartFiles(r, "avatar")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}
		var avatar *services.UploadFile
		if len(avatars) > 0 {
			avatar = &avatars[0]
		}

		var bio *string
		if v := multipartValue(r, "bio"); v != "" {
			bio = &v
		}

		profile, created, err := svc.UpsertProfile(ctx, claims.UserID, bio, avatar)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		message := "Profile updated"
		status := http.StatusOK
		if created {
			message = "Profile created"
			status = http.StatusCreated
		}

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ProfileResponse{Message: message, Profile: *profile})
	}
}
