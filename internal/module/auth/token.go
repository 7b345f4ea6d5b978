package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aegisx/platform/internal/middleware"
)

// tokenClaims are the JWT claims carried by issued tokens. The role travels
// in the token so permission checks need no user lookup per request.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. It implements
// middleware.TokenVerifier.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token for the given user and role. It returns the compact
// token string and its expiry time.
func (s *TokenService) Issue(userID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates a token string and returns the identity it
// carries. Expired, malformed, or wrongly-signed tokens fail.
func (s *TokenService) Verify(tokenString string) (middleware.Identity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return middleware.Identity{}, err
	}
	if !token.Valid {
		return middleware.Identity{}, errors.New("invalid token")
	}

	return middleware.Identity{
		UserID: claims.Subject,
		Role:   claims.Role,
	}, nil
}
