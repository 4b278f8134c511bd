package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrWrongOldPassword = errors.New("old password is incorrect")
	ErrEmailTaken       = errors.New("email already in use")
	ErrUsernameTaken    = errors.New("username already in use")
)

// UploadFile is one in-memory file received from a multipart form.
type UploadFile struct {
	Name        string
	Data        []byte
	ContentType string
}

// Uploader stores a blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// ProfileReader defines profile read operations.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// UserService handles account info, profiles and credential changes.
type UserService struct {
	reader        UserReader
	writer        UserWriter
	profileReader ProfileReader
	profileWriter ProfileWriter
	uploader      Uploader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, profileReader ProfileReader, profileWriter ProfileWriter, uploader Uploader) *UserService {
	return &UserService{
		reader:        reader,
		writer:        writer,
		profileReader: profileReader,
		profileWriter: profileWriter,
		uploader:      uploader,
	}
}

// GetUserInfo returns the public view of an account with its profile snippet.
func (svc *UserService) GetUserInfo(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error) {
	info, err := svc.reader.GetInfoByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user info", "err", err)
		return nil, err
	}
	if info == nil {
		return nil, ErrUserNotFound
	}
	return info, nil
}

// GetProfile returns the caller's profile row.
func (svc *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	profile, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpsertProfile updates the existing profile or creates one, uploading a
// new avatar first when provided. The returned bool is true when a profile
// was created rather than updated.
func (svc *UserService) UpsertProfile(ctx context.Context, userID uuid.UUID, bio *string, avatar *UploadFile) (*models.ProfileDB, bool, error) {
	var avatarURL *string
	if avatar != nil {
		path := fmt.Sprintf("avatars/%s_%d_%s", userID, time.Now().UnixMilli(), avatar.Name)
		url, err := svc.uploader.Upload(ctx, path, avatar.Data, avatar.ContentType)
		if err != nil {
			logger.Log.Errorw("failed to upload avatar", "err", err)
			return nil, false, err
		}
		avatarURL = &url
	}

	existing, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return nil, false, err
	}

	if existing != nil {
		profile, err := svc.profileWriter.Update(ctx, userID, bio, avatarURL)
		if err != nil {
			logger.Log.Errorw("failed to update profile", "err", err)
			return nil, false, err
		}
		return profile, false, nil
	}

	profile, err := svc.profileWriter.Save(ctx, userID, bio, avatarURL)
	if err != nil {
		logger.Log.Errorw("failed to create profile", "err", err)
		return nil, false, err
	}
	return profile, true, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (svc *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}
	return nil
}

// UpdateEmail stores a new email address.
func (svc *UserService) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	if err := svc.writer.UpdateEmail(ctx, userID, newEmail); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		logger.Log.Errorw("failed to update email", "err", err)
		return err
	}
	return nil
}

// UpdateUsername stores a new username.
func (svc *UserService) UpdateUsername(ctx context.Context, userID uuid.UUID, newUsername string) error {
	if err := svc.writer.UpdateUsername(ctx, userID, newUsername); err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to update username", "err", err)
		return err
	}
	return nil
}

// DeleteAccount removes the account. Profiles, tweets and interaction
// rows disappear via FK cascade.
func (svc *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete account", "err", err)
		return err
	}
	return nil
}
