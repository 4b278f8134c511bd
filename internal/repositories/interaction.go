package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// interactionTables maps a kind to its fixed table and id column. SQL is
// only ever assembled from these constants, never from request input.
var interactionTables = map[models.InteractionKind]struct {
	table string
	idCol string
}{
	models.InteractionLike:    {table: "likes", idCol: "like_id"},
	models.InteractionRetweet: {table: "retweets", idCol: "retweet_id"},
}

type InteractionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInteractionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InteractionWriteRepository {
	return &InteractionWriteRepository{db: db, txGetter: txGetter}
}

// Toggle flips the (user, tweet) membership row for the given kind and
// reports whether a row was created. Delete-then-insert runs on a single
// transaction; the unique constraint plus ON CONFLICT DO NOTHING makes a
// losing concurrent insert a successful no-op instead of an error.
func (r *InteractionWriteRepository) Toggle(ctx context.Context, kind models.InteractionKind, userID, tweetID uuid.UUID) (bool, error) {
	names, ok := interactionTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown interaction kind %q", kind)
	}

	var executor sqlx.ExtContext
	var ownTx *sqlx.Tx
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	if executor == nil {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return false, err
		}
		ownTx = tx
		executor = tx
		defer ownTx.Rollback()
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND tweet_id = $2`, names.table)
	res, err := executor.ExecContext(ctx, deleteQuery, userID, tweetID)

	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(deleteQuery), " "),
		"args", []any{userID, tweetID},
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	created := false
	if deleted == 0 {
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, user_id, tweet_id, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (user_id, tweet_id) DO NOTHING
		`, names.table, names.idCol)

		_, err = executor.ExecContext(ctx, insertQuery, uuid.New(), userID, tweetID)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"args", []any{userID, tweetID},
			"error", err,
		)

		if err != nil {
			return false, err
		}
		created = true
	}

	if ownTx != nil {
		if err := ownTx.Commit(); err != nil {
			return false, err
		}
	}
	return created, nil
}
