// Package auth provides credential checks and JWT issuance for the login
// endpoint.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/repository"
	"github.com/Forgos-ynov/Vault-API/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Service authenticates users and signs access tokens.
type Service struct {
	users  repository.UserRepository
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(users repository.UserRepository, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Login verifies the credentials and returns the authenticated user.
// Unknown usernames, deactivated users and wrong passwords all map to
// domain.ErrUserUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	log := s.logger.With("context", "Login", "username", username)
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	const dummyHash = "$2a$14$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"
	if u == nil || !u.Status {
		// Always check a hash to keep lookup timing flat.
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Error("Login failed", "error", domain.ErrUserUnauthorized)
		return nil, domain.ErrUserUnauthorized
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		log.Error("Login failed", "error", domain.ErrUserUnauthorized)
		return nil, domain.ErrUserUnauthorized
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token carrying the user identity, the
// effective roles and an expiry from config.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = fmt.Sprintf("%d", u.ID)
	claims["username"] = u.Username
	claims["roles"] = u.Roles.Effective()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}
