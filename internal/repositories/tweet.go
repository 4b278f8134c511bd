package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// feedSelect is the shared viewer-annotated projection: tweet joined with
// author and profile, counters, and whether the viewer ($1) liked it.
const feedSelect = `
	SELECT t.tweet_id, t.content, t.parent_tweet_id, t.created_at, t.updated_at,
	       u.user_id AS author_id, u.username, u.email, p.bio, p.avatar_url,
	       (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.tweet_id) AS like_count,
	       (SELECT COUNT(*) FROM retweets rt WHERE rt.tweet_id = t.tweet_id) AS retweet_count,
	       (SELECT COUNT(*) FROM tweets c WHERE c.parent_tweet_id = t.tweet_id) AS reply_count,
	       EXISTS (SELECT 1 FROM likes vl WHERE vl.tweet_id = t.tweet_id AND vl.user_id = $1) AS viewer_liked
	FROM tweets t
	JOIN users u ON u.user_id = t.author_id
	LEFT JOIN profiles p ON p.user_id = u.user_id
`

type TweetReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTweetReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TweetReadRepository {
	return &TweetReadRepository{db: db, txGetter: txGetter}
}

// executor prefers the request transaction so that reads issued after a
// write in the same request see the uncommitted rows.
func (r *TweetReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListFeed returns up to limit annotated rows for the given scope,
// strictly ordered by (created_at, tweet_id) descending. The cursor, when
// present, excludes every row at or after the cursor position; the
// composite comparison keeps the order total even for equal timestamps.
func (r *TweetReadRepository) ListFeed(
	ctx context.Context,
	scope models.FeedScope,
	cursor *models.Cursor,
	limit int,
	viewerID uuid.UUID,
) ([]models.FeedRowDB, error) {
	args := []any{viewerID}
	var conds []string

	switch scope.Kind {
	case models.FeedByAuthor:
		args = append(args, scope.AuthorID)
		conds = append(conds, fmt.Sprintf("t.author_id = $%d", len(args)))
	case models.FeedRepliesOf:
		args = append(args, scope.ParentTweetID)
		conds = append(conds, fmt.Sprintf("t.parent_tweet_id = $%d", len(args)))
	case models.FeedMatchingContent:
		args = append(args, scope.Query)
		conds = append(conds, fmt.Sprintf("t.content ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if cursor != nil {
		if cursor.HasTweetID {
			args = append(args, cursor.CreatedAt, cursor.TweetID)
			conds = append(conds, fmt.Sprintf("(t.created_at, t.tweet_id) < ($%d, $%d)", len(args)-1, len(args)))
		} else {
			args = append(args, cursor.CreatedAt)
			conds = append(conds, fmt.Sprintf("t.created_at < $%d", len(args)))
		}
	}

	query := feedSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY t.created_at DESC, t.tweet_id DESC LIMIT $%d", len(args))

	var rows []models.FeedRowDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// GetFeedRowsByIDs returns annotated rows for the given tweet ids, used
// for single-tweet fetches and the one-level parent context of replies.
func (r *TweetReadRepository) GetFeedRowsByIDs(ctx context.Context, tweetIDs []uuid.UUID, viewerID uuid.UUID) ([]models.FeedRowDB, error) {
	if len(tweetIDs) == 0 {
		return nil, nil
	}

	// sqlx.In expands ? bindvars only, so the viewer placeholder switches
	// from $1 to ? before Rebind restores the pgx form.
	query, args, err := sqlx.In(strings.Replace(feedSelect, "$1", "?", 1)+" WHERE t.tweet_id IN (?)", viewerID, tweetIDs)
	if err != nil {
		return nil, err
	}

	executor := r.executor(ctx)
	query = executor.Rebind(query)

	var rows []models.FeedRowDB
	err = sqlx.SelectContext(ctx, executor, &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// GetImagesByTweetIDs loads attachments for a batch of tweets in one query.
func (r *TweetReadRepository) GetImagesByTweetIDs(ctx context.Context, tweetIDs []uuid.UUID) ([]models.ImgDB, error) {
	if len(tweetIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT img_id, tweet_id, url FROM imgs WHERE tweet_id IN (?)`, tweetIDs)
	if err != nil {
		return nil, err
	}

	executor := r.executor(ctx)
	query = executor.Rebind(query)

	var imgs []models.ImgDB
	err = sqlx.SelectContext(ctx, executor, &imgs, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(imgs),
		"error", err,
	)

	return imgs, err
}

// GetByID returns the bare tweet row or nil when it does not exist.
func (r *TweetReadRepository) GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error) {
	const query = `
		SELECT tweet_id, author_id, content, parent_tweet_id, created_at, updated_at
		FROM tweets
		WHERE tweet_id = $1
	`

	var tweet models.TweetDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &tweet, query, tweetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tweetID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// CountImages reports how many attachments a tweet already has. The
// four-image cap is enforced at write time against this count.
func (r *TweetReadRepository) CountImages(ctx context.Context, tweetID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM imgs WHERE tweet_id = $1`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, tweetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tweetID},
		"result", count,
		"error", err,
	)

	return count, err
}

type TweetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTweetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TweetWriteRepository {
	return &TweetWriteRepository{db: db, txGetter: txGetter}
}

func (r *TweetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts the tweet and its image rows.
func (r *TweetWriteRepository) Save(ctx context.Context, tweetID, authorID uuid.UUID, content string, parentTweetID *uuid.UUID, imageURLs []string) error {
	query := `
		INSERT INTO tweets (tweet_id, author_id, content, parent_tweet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	executor := r.executor(ctx)
	_, err := executor.ExecContext(ctx, query, tweetID, authorID, content, parentTweetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tweetID, authorID, parentTweetID},
		"error", err,
	)

	if err != nil {
		return err
	}

	return r.insertImages(ctx, executor, tweetID, imageURLs)
}

// Update changes the content and appends any newly uploaded images.
func (r *TweetWriteRepository) Update(ctx context.Context, tweetID uuid.UUID, content string, imageURLs []string) error {
	query := `
		UPDATE tweets
		SET content = $1, updated_at = NOW()
		WHERE tweet_id = $2
	`

	executor := r.executor(ctx)
	res, err := executor.ExecContext(ctx, query, content, tweetID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tweetID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return r.insertImages(ctx, executor, tweetID, imageURLs)
}

// Delete removes the tweet; imgs, likes, retweets and replies cascade.
func (r *TweetWriteRepository) Delete(ctx context.Context, tweetID uuid.UUID) error {
	query := `DELETE FROM tweets WHERE tweet_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, tweetID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tweetID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *TweetWriteRepository) insertImages(ctx context.Context, executor sqlx.ExtContext, tweetID uuid.UUID, imageURLs []string) error {
	const query = `INSERT INTO imgs (img_id, tweet_id, url) VALUES ($1, $2, $3)`

	for _, url := range imageURLs {
		if _, err := executor.ExecContext(ctx, query, uuid.New(), tweetID, url); err != nil {
			logger.Log.Infow(
				"query", query,
				"args", []any{tweetID, url},
				"error", err,
			)
			return err
		}
	}
	return nil
}
