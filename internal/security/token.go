package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// SubjectClaims defines the claims carried by an access token
type SubjectClaims struct {
	jwt.RegisteredClaims
}

type TokenManager interface {
	IssueAccessToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*SubjectClaims, error)
}

type tokenManager struct {
	secret []byte
}

// NewTokenManager returns an HS256 token manager. The secret is process-wide
// configuration, loaded once at startup and never rotated at runtime.
func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) IssueAccessToken(subject string, ttl time.Duration) (string, error) {
	claims := SubjectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*SubjectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SubjectClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SubjectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
