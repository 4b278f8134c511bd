package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	userID := insertTestUser(t, db, "grace")

	bio := "first bio"
	saved, err := writeRepo.Save(ctx, userID, &bio, nil)
	assert.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, &bio, saved.Bio)
	assert.Nil(t, saved.AvatarURL)

	got, err := readRepo.GetByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, saved.ProfileID, got.ProfileID)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewProfileReadRepository(db)

	userID := insertTestUser(t, db, "noprofile")

	got, err := readRepo.GetByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepository_Update_KeepsAvatarWhenNil(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db, nil)
	ctx := context.Background()

	userID := insertTestUser(t, db, "heidi")

	bio := "old bio"
	avatarURL := "http://minio/bucket/avatars/heidi.png"
	_, err := writeRepo.Save(ctx, userID, &bio, &avatarURL)
	assert.NoError(t, err)

	newBio := "new bio"
	updated, err := writeRepo.Update(ctx, userID, &newBio, nil)
	assert.NoError(t, err)
	assert.Equal(t, &newBio, updated.Bio)
	// COALESCE keeps the stored avatar when no new one was uploaded
	assert.NotNil(t, updated.AvatarURL)
	assert.Equal(t, avatarURL, *updated.AvatarURL)

	newAvatar := "http://minio/bucket/avatars/heidi2.png"
	updated, err = writeRepo.Update(ctx, userID, &newBio, &newAvatar)
	assert.NoError(t, err)
	assert.Equal(t, newAvatar, *updated.AvatarURL)
}
