package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social-network/internal/jwt"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenString string) (bool, error)
}

// AuthMiddleware returns a middleware that validates the bearer token,
// rejects revoked tokens and stores the caller identity in the request context.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					writeUnauthorized(w)
					return
				}
				if revoked {
					logger.Log.Errorw("revoked token presented", "user_id", claims.UserID)
					writeUnauthorized(w)
					return
				}
			}

			ctx = SetClaimsToContext(ctx, claims)
			ctx = SetTokenToContext(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// claimsKey is an unexported type for context keys of this package.
type claimsKey struct{}

type tokenKey struct{}

var (
	claimsCtxKey = claimsKey{}
	tokenCtxKey  = tokenKey{}
)

// SetClaimsToContext stores caller identity claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// GetClaimsFromContext retrieves caller identity claims from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsCtxKey).(*jwt.Claims)
	return claims
}

// SetTokenToContext stores the raw bearer token in the context for logout.
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey).(string)
	return token
}
