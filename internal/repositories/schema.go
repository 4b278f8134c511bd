package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema returns the DDL for every table of the service. Child tables
// cascade on delete so removing a user or tweet removes its dependents.
func Schema() string {
	return `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS profiles (
		profile_id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
		bio TEXT,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS tweets (
		tweet_id UUID PRIMARY KEY,
		author_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		content VARCHAR(280) NOT NULL DEFAULT '',
		parent_tweet_id UUID REFERENCES tweets(tweet_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_tweets_feed ON tweets (created_at DESC, tweet_id DESC);
	CREATE INDEX IF NOT EXISTS idx_tweets_author ON tweets (author_id);
	CREATE INDEX IF NOT EXISTS idx_tweets_parent ON tweets (parent_tweet_id);

	CREATE TABLE IF NOT EXISTS imgs (
		img_id UUID PRIMARY KEY,
		tweet_id UUID NOT NULL REFERENCES tweets(tweet_id) ON DELETE CASCADE,
		url TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_imgs_tweet ON imgs (tweet_id);

	CREATE TABLE IF NOT EXISTS follows (
		follow_id UUID PRIMARY KEY,
		follower_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		following_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (follower_id, following_id)
	);

	CREATE TABLE IF NOT EXISTS likes (
		like_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		tweet_id UUID NOT NULL REFERENCES tweets(tweet_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, tweet_id)
	);
	CREATE INDEX IF NOT EXISTS idx_likes_tweet ON likes (tweet_id);

	CREATE TABLE IF NOT EXISTS retweets (
		retweet_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		tweet_id UUID NOT NULL REFERENCES tweets(tweet_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, tweet_id)
	);
	CREATE INDEX IF NOT EXISTS idx_retweets_tweet ON retweets (tweet_id);
	`
}

// ApplySchema creates all tables if they do not exist yet.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema())
	return err
}
