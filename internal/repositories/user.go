package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user row or nil when the account does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier matches the identifier against username or email,
// the way the login form accepts either.
func (r *UserReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, identifier)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{identifier},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetInfoByID returns the public user view joined with its profile snippet.
func (r *UserReadRepository) GetInfoByID(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, p.bio, p.avatar_url
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.user_id
		WHERE u.user_id = $1
	`

	var row struct {
		UserID    uuid.UUID `db:"user_id"`
		Username  string    `db:"username"`
		Email     string    `db:"email"`
		Bio       *string   `db:"bio"`
		AvatarURL *string   `db:"avatar_url"`
	}
	err := r.db.GetContext(ctx, &row, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.UserInfo{
		ID:       row.UserID,
		Username: row.Username,
		Email:    row.Email,
		Profile: models.ProfileSnippet{
			Bio:       row.Bio,
			AvatarURL: row.AvatarURL,
		},
	}, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new account row. A unique-constraint violation on
// username or email propagates to the caller unwrapped.
func (r *UserWriteRepository) Save(ctx context.Context, userID uuid.UUID, username, email, passwordHash string) error {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{userID, username, email, passwordHash}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, email},
		"error", err,
	)

	return err
}

// UpdatePassword stores a new password hash for the account.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return r.updateColumn(ctx, userID, "password_hash", passwordHash)
}

// UpdateEmail stores a new email. Unique violations propagate.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	return r.updateColumn(ctx, userID, "email", email)
}

// UpdateUsername stores a new username. Unique violations propagate.
func (r *UserWriteRepository) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error {
	return r.updateColumn(ctx, userID, "username", username)
}

func (r *UserWriteRepository) updateColumn(ctx context.Context, userID uuid.UUID, column, value string) error {
	// column comes from a fixed call-site set, never from request input
	query := `UPDATE users SET ` + column + ` = $1, updated_at = NOW() WHERE user_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, value, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the account; profiles, tweets, likes, retweets and
// follows go with it via FK cascade.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM users WHERE user_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
