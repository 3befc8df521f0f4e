package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"joke-api/internal/domain"
	"joke-api/internal/logger"
	"joke-api/internal/repository"
	"joke-api/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) GetUser(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmailOrID(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser reports failure in-band: an empty token and zero expiry,
// never an error, so callers cannot distinguish a bad password from an
// unknown user.
func (s *authService) AuthenticateUser(ctx context.Context, usernameOrEmail, password string) (*AuthResult, error) {
	user, err := s.GetUser(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &AuthResult{}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return &AuthResult{}, nil
	}

	token, err := s.tokens.IssueAccessToken(user.Email, s.tokenTTL)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err)
		return nil, err
	}

	return &AuthResult{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}
