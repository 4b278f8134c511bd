package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type UserSearchRepository struct {
	db *sqlx.DB
}

func NewUserSearchRepository(db *sqlx.DB) *UserSearchRepository {
	return &UserSearchRepository{db: db}
}

// SearchByUsername returns up to limit users whose username contains the
// query, case-insensitively, newest accounts first. The cursor follows the
// same (created_at, id) convention as the tweet feed.
func (r *UserSearchRepository) SearchByUsername(
	ctx context.Context,
	query string,
	cursor *models.Cursor,
	limit int,
) ([]models.FeedUserRowDB, error) {
	args := []any{query}
	conds := []string{"u.username ILIKE '%' || $1 || '%'"}

	if cursor != nil {
		if cursor.HasTweetID {
			args = append(args, cursor.CreatedAt, cursor.TweetID)
			conds = append(conds, fmt.Sprintf("(u.created_at, u.user_id) < ($%d, $%d)", len(args)-1, len(args)))
		} else {
			args = append(args, cursor.CreatedAt)
			conds = append(conds, fmt.Sprintf("u.created_at < $%d", len(args)))
		}
	}

	args = append(args, limit)
	sqlQuery := fmt.Sprintf(`
		SELECT u.user_id, u.username, u.email, u.created_at, p.bio, p.avatar_url
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.user_id
		WHERE %s
		ORDER BY u.created_at DESC, u.user_id DESC
		LIMIT $%d
	`, strings.Join(conds, " AND "), len(args))

	var rows []models.FeedUserRowDB
	err := r.db.SelectContext(ctx, &rows, sqlQuery, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(sqlQuery), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
