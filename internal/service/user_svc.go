package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByID(ctx context.Context, id uint) (*domain.User, error)
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserSvc struct{ users UserStore }

func NewUserSvc(users UserStore) *UserSvc { return &UserSvc{users: users} }

// UpdateUserInput carries a partial update; nil means "leave untouched".
type UpdateUserInput struct {
	Name     *string
	Surnames *string
	Email    *string
	Password *string
	Role     *string
	Avatar   *string
}

// Register always creates a plain user; roles are only granted later by an
// admin through Update.
func (s *UserSvc) Register(ctx context.Context, name, surnames, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:     name,
		Surnames: surnames,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserSvc) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserSvc) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.ByID(ctx, id)
}

func (s *UserSvc) Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Surnames != nil {
		fields["surnames"] = *in.Surnames
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	if in.Avatar != nil {
		fields["avatar"] = *in.Avatar
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if len(fields) == 0 {
		return s.users.ByID(ctx, id)
	}
	return s.users.UpdateFields(ctx, id, fields)
}

func (s *UserSvc) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// ChangePassword verifies the current password first; a mismatch is a distinct
// failure from login since the caller is already authenticated.
func (s *UserSvc) ChangePassword(ctx context.Context, id uint, currentPassword, newPassword string) error {
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)) != nil {
		return domain.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.users.UpdateFields(ctx, id, map[string]any{"password": string(hash)})
	return err
}
