package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/sbilibin2017/gw-social-network/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userServiceMocks struct {
	reader        *services.MockUserReader
	writer        *services.MockUserWriter
	profileReader *services.MockProfileReader
	profileWriter *services.MockProfileWriter
	uploader      *services.MockUploader
}

func newUserServiceMocks(t *testing.T) (*services.UserService, userServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userServiceMocks{
		reader:        services.NewMockUserReader(ctrl),
		writer:        services.NewMockUserWriter(ctrl),
		profileReader: services.NewMockProfileReader(ctrl),
		profileWriter: services.NewMockProfileWriter(ctrl),
		uploader:      services.NewMockUploader(ctrl),
	}
	svc := services.NewUserService(m.reader, m.writer, m.profileReader, m.profileWriter, m.uploader)
	return svc, m
}

func TestUserService_GetUserInfo(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.reader.EXPECT().
		GetInfoByID(gomock.Any(), userID).
		Return(&models.UserInfo{ID: userID, Username: "alice"}, nil)

	info, err := svc.GetUserInfo(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
}

func TestUserService_GetUserInfo_NotFound(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.reader.EXPECT().
		GetInfoByID(gomock.Any(), userID).
		Return(nil, nil)

	info, err := svc.GetUserInfo(context.Background(), userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Nil(t, info)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.profileReader.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(nil, nil)

	profile, err := svc.GetProfile(context.Background(), userID)
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
	assert.Nil(t, profile)
}

func TestUserService_UpsertProfile_CreatesWhenMissing(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()
	bio := "hello"

	m.profileReader.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(nil, nil)
	m.profileWriter.EXPECT().
		Save(gomock.Any(), userID, &bio, nil).
		Return(&models.ProfileDB{UserID: userID, Bio: &bio}, nil)

	profile, created, err := svc.UpsertProfile(context.Background(), userID, &bio, nil)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, &bio, profile.Bio)
}

func TestUserService_UpsertProfile_UpdatesExisting(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()
	bio := "updated"

	m.profileReader.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(&models.ProfileDB{UserID: userID}, nil)
	m.profileWriter.EXPECT().
		Update(gomock.Any(), userID, &bio, nil).
		Return(&models.ProfileDB{UserID: userID, Bio: &bio}, nil)

	profile, created, err := svc.UpsertProfile(context.Background(), userID, &bio, nil)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, &bio, profile.Bio)
}

func TestUserService_UpsertProfile_UploadsAvatar(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()
	avatar := &services.UploadFile{
		Name:        "me.png",
		Data:        []byte("png bytes"),
		ContentType: "image/png",
	}
	uploadedURL := "http://minio/bucket/avatars/me.png"

	m.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), avatar.Data, "image/png").
		Return(uploadedURL, nil)
	m.profileReader.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(&models.ProfileDB{UserID: userID}, nil)
	m.profileWriter.EXPECT().
		Update(gomock.Any(), userID, nil, &uploadedURL).
		Return(&models.ProfileDB{UserID: userID, AvatarURL: &uploadedURL}, nil)

	profile, created, err := svc.UpsertProfile(context.Background(), userID, nil, avatar)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, &uploadedURL, profile.AvatarURL)
}

func TestUserService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("oldpass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		oldPassword string
		mockSetup   func(m userServiceMocks)
		wantErr     error
	}{
		{
			name:        "Success",
			oldPassword: "oldpass123",
			mockSetup: func(m userServiceMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
				m.writer.EXPECT().
					UpdatePassword(gomock.Any(), userID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:        "WrongOldPassword",
			oldPassword: "notit",
			mockSetup: func(m userServiceMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, PasswordHash: string(hashed)}, nil)
			},
			wantErr: services.ErrWrongOldPassword,
		},
		{
			name:        "UnknownUser",
			oldPassword: "oldpass123",
			mockSetup: func(m userServiceMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserServiceMocks(t)
			tt.mockSetup(m)

			err := svc.ChangePassword(context.Background(), userID, tt.oldPassword, "newpass123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_UpdateEmail_Taken(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.writer.EXPECT().
		UpdateEmail(gomock.Any(), userID, "taken@example.com").
		Return(&pgconn.PgError{Code: "23505"})

	err := svc.UpdateEmail(context.Background(), userID, "taken@example.com")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUserService_UpdateUsername_Taken(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.writer.EXPECT().
		UpdateUsername(gomock.Any(), userID, "taken").
		Return(&pgconn.PgError{Code: "23505"})

	err := svc.UpdateUsername(context.Background(), userID, "taken")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestUserService_DeleteAccount(t *testing.T) {
	svc, m := newUserServiceMocks(t)
	userID := uuid.New()

	m.writer.EXPECT().
		Delete(gomock.Any(), userID).
		Return(nil)

	assert.NoError(t, svc.DeleteAccount(context.Background(), userID))
}
