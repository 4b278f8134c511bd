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

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile row or nil when none exists.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, user_id, bio, avatar_url, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

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
	return &profile, nil
}

type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates a profile for the user. Registration calls this with empty
// fields so every account owns exactly one profile from the start.
func (r *ProfileWriteRepository) Save(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.ProfileDB, error) {
	query := `
		INSERT INTO profiles (profile_id, user_id, bio, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING profile_id, user_id, bio, avatar_url, created_at, updated_at
	`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &profile, query, uuid.New(), userID, bio, avatarURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update changes the bio and, when a new avatar was uploaded, the avatar URL.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.ProfileDB, error) {
	query := `
		UPDATE profiles
		SET bio = $1,
		    avatar_url = COALESCE($2, avatar_url),
		    updated_at = NOW()
		WHERE user_id = $3
		RETURNING profile_id, user_id, bio, avatar_url, created_at, updated_at
	`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &profile, query, bio, avatarURL, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
