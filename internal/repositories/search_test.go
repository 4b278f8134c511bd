package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/stretchr/testify/assert"
)

func insertTestUserAt(t *testing.T, db *sqlx.DB, username string, createdAt time.Time) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(
		`INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, 'hash', $4, $4)`,
		userID, username, username+"@example.com", createdAt,
	)
	assert.NoError(t, err)
	return userID
}

func TestUserSearchRepository_SearchByUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserSearchRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	oldest := insertTestUserAt(t, db, "walter", base.Add(-3*time.Minute))
	middle := insertTestUserAt(t, db, "Walther", base.Add(-2*time.Minute))
	newest := insertTestUserAt(t, db, "walt_jr", base.Add(-time.Minute))
	insertTestUserAt(t, db, "skyler", base)

	t.Run("CaseInsensitiveNewestFirst", func(t *testing.T) {
		rows, err := repo.SearchByUsername(ctx, "WALT", nil, 10)
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, newest, rows[0].UserID)
		assert.Equal(t, middle, rows[1].UserID)
		assert.Equal(t, oldest, rows[2].UserID)
	})

	t.Run("CursorPagination", func(t *testing.T) {
		rows, err := repo.SearchByUsername(ctx, "walt", nil, 2)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		cursor := models.NewCursor(rows[1].CreatedAt, rows[1].UserID)
		rest, err := repo.SearchByUsername(ctx, "walt", &cursor, 2)
		assert.NoError(t, err)
		assert.Len(t, rest, 1)
		assert.Equal(t, oldest, rest[0].UserID)
	})

	t.Run("NoHits", func(t *testing.T) {
		rows, err := repo.SearchByUsername(ctx, "heisenberg", nil, 10)
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUserSearchRepository_IncludesProfileSnippet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserSearchRepository(db)
	ctx := context.Background()

	userID := insertTestUser(t, db, "xavier")
	_, err := db.Exec(
		`INSERT INTO profiles (profile_id, user_id, bio, avatar_url) VALUES ($1, $2, 'reads minds', 'http://minio/bucket/avatars/x.png')`,
		uuid.New(), userID,
	)
	assert.NoError(t, err)

	rows, err := repo.SearchByUsername(ctx, "xavier", nil, 10)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NotNil(t, rows[0].Bio)
	assert.Equal(t, "reads minds", *rows[0].Bio)
	assert.NotNil(t, rows[0].AvatarURL)
}
