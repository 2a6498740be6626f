package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/core/datamodel/user"
)

// Service is the main auth service with dependencies
type Service struct {
	users          UserStore
	hasher         *Hasher
	tokenGenerator TokenGenerator
}

func NewService(users UserStore, hasher *Hasher, tokenGen TokenGenerator) *Service {
	return &Service{
		users:          users,
		hasher:         hasher,
		tokenGenerator: tokenGen,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * 7 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns tokens. Inactive accounts
// are rejected with the same message as bad credentials to avoid leaking
// account state.
func (s *Service) Authenticate(dto LoginDTO) (LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := s.users.GetByUsername(dto.Username)
	if err != nil {
		return LoginResult{}, internal.ErrInvalidCredentials
	}

	if !u.Active {
		return LoginResult{}, internal.ErrInvalidCredentials
	}

	if !s.hasher.Verify(dto.Password, u.PasswordHash) {
		return LoginResult{}, internal.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Tokens:             tokens,
		MustChangePassword: u.MustChangePassword,
	}, nil
}

// ChangePassword verifies the old password before storing the new hash and
// clearing the forced-change flag.
func (s *Service) ChangePassword(userID string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return internal.ErrUserNotFound
	}

	if !s.hasher.Verify(dto.OldPassword, u.PasswordHash) {
		return internal.NewValidationError("Parola veche este incorectă.", internal.ErrCodeInvalidCredentials)
	}

	if err := s.users.UpdatePassword(u.ID, s.hasher.Hash(dto.NewPassword), false); err != nil {
		return internal.NewInternalError("A apărut o eroare la schimbarea parolei.", err)
	}

	return nil
}

// RefreshTokens validates a refresh token and returns a new pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	return s.issueTokens(claims.UserID)
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// CurrentUser resolves token claims to the full roster record.
func (s *Service) CurrentUser(claims *Claims) (*user.User, error) {
	u, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	if !u.Active {
		return nil, internal.ErrUserInactive
	}
	return u, nil
}

func (s *Service) issueTokens(userID string) (AuthTokens, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(userID)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(userID string) (string, error) {
	return j.signed(userID, j.AccessTokenTTL, j.AccessTokenSecret)
}

// GenerateRefreshToken creates a new refresh token
func (j *JWTTokenGenerator) GenerateRefreshToken(userID string) (string, error) {
	return j.signed(userID, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) signed(userID string, ttl time.Duration, secret []byte) (string, error) {
	expiresAt := time.Now().Add(ttl)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Tokens that outlive the access TTL can only be refresh tokens.
		if claims, ok := token.Claims.(*Claims); ok {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
