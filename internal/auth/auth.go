package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// UserStore is the user collaborator as seen by authentication.
type UserStore interface {
	GetByUsername(username string) (*user.User, error)
	GetByID(id string) (*user.User, error)
	UpdatePassword(userID, passwordHash string, mustChange bool) error
}

// TokenGenerator creates and validates tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is what the login flow hands back to the UI: tokens plus the
// forced-password-change flag.
type LoginResult struct {
	Tokens             AuthTokens `json:"tokens"`
	MustChangePassword bool       `json:"must_change_password"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

type userCtxKey string

const userKey userCtxKey = "currentUser"

func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}
