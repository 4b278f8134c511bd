package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
	GetInfoByID(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, email, passwordHash string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ProfileWriter defines profile write operations needed by registration.
type ProfileWriter interface {
	Save(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.ProfileDB, error)
	Update(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.ProfileDB, error)
}

// TokenIssuer defines an interface for generating JWT tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// TokenRevoker stores logged-out tokens until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	profileWriter ProfileWriter
	jwt           TokenIssuer
	revoker       TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, profileWriter ProfileWriter, jwt TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		profileWriter: profileWriter,
		jwt:           jwt,
		revoker:       revoker,
	}
}

// Register creates a new account with an empty profile and returns the
// user id plus a signed token. Duplicate usernames or emails surface as
// ErrUserAlreadyExists via the unique constraints.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, "", err
	}

	userID := uuid.New()
	if err := svc.writer.Save(ctx, userID, username, email, string(hashedPassword)); err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return uuid.Nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, "", err
	}

	if _, err := svc.profileWriter.Save(ctx, userID, nil, nil); err != nil {
		logger.Log.Errorw("failed to create profile", "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, userID, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return uuid.Nil, "", err
	}

	return userID, token, nil
}

// Login authenticates by username or email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (uuid.UUID, string, error) {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "identifier", identifier)
		return uuid.Nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "identifier", identifier)
		return uuid.Nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return uuid.Nil, "", err
	}

	return user.UserID, token, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (svc *AuthService) Logout(ctx context.Context, token string, expireAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, token, time.Until(expireAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "err", err)
		return err
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
