package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
	"github.com/iggarsaudev/reservas-padel/pkg/auth"
)

type AuthSvc struct {
	users  UserStore
	tokens *auth.Manager
}

func NewAuthSvc(users UserStore, tokens *auth.Manager) *AuthSvc {
	return &AuthSvc{users: users, tokens: tokens}
}

// Login merges "unknown email" and "wrong password" into one failure so the
// response never reveals whether the account exists.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Sign(u.ID, u.Email, string(u.Role))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
