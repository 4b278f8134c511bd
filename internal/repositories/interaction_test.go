package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-social-network/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInteractionWriteRepository_Toggle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewInteractionWriteRepository(db, nil)
	ctx := context.Background()

	userID := insertTestUser(t, db, "rupert")
	tweetID := insertTestTweet(t, db, userID, "toggle me", nil, time.Now().UTC())

	for _, kind := range []models.InteractionKind{models.InteractionLike, models.InteractionRetweet} {
		t.Run(string(kind), func(t *testing.T) {
			table := "likes"
			if kind == models.InteractionRetweet {
				table = "retweets"
			}

			created, err := repo.Toggle(ctx, kind, userID, tweetID)
			assert.NoError(t, err)
			assert.True(t, created)

			var count int
			assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+table+" WHERE user_id=$1 AND tweet_id=$2", userID, tweetID))
			assert.Equal(t, 1, count)

			created, err = repo.Toggle(ctx, kind, userID, tweetID)
			assert.NoError(t, err)
			assert.False(t, created)

			assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+table+" WHERE user_id=$1 AND tweet_id=$2", userID, tweetID))
			assert.Zero(t, count)

			created, err = repo.Toggle(ctx, kind, userID, tweetID)
			assert.NoError(t, err)
			assert.True(t, created)
		})
	}
}

func TestInteractionWriteRepository_Toggle_IndependentPerUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewInteractionWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "sybil")
	otherID := insertTestUser(t, db, "trent")
	tweetID := insertTestTweet(t, db, authorID, "popular", nil, time.Now().UTC())

	created, err := repo.Toggle(ctx, models.InteractionLike, authorID, tweetID)
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Toggle(ctx, models.InteractionLike, otherID, tweetID)
	assert.NoError(t, err)
	assert.True(t, created)

	// removing one user's like leaves the other's in place
	created, err = repo.Toggle(ctx, models.InteractionLike, authorID, tweetID)
	assert.NoError(t, err)
	assert.False(t, created)

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM likes WHERE tweet_id=$1", tweetID))
	assert.Equal(t, 1, count)
}

func TestInteractionWriteRepository_UnknownKind(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewInteractionWriteRepository(db, nil)

	userID := insertTestUser(t, db, "victor")
	tweetID := insertTestTweet(t, db, userID, "x", nil, time.Now().UTC())

	_, err := repo.Toggle(context.Background(), models.InteractionKind("bookmark"), userID, tweetID)
	assert.Error(t, err)
}
