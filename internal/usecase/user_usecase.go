package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name  string
	Email string
	Role  string
	// Actor is the authenticated caller, nil when anonymous.
	Actor *user.User
}

type UserUsecase interface {
	List(ctx context.Context, role string) ([]user.User, error)
	Create(ctx context.Context, in CreateUserInput) (user.User, error)
	Get(ctx context.Context, id string) (user.User, error)
}

type User struct {
	users user.Repository
	now   func() time.Time
}

func NewUserUsecase(users user.Repository) *User {
	return &User{users: users, now: time.Now}
}

// List filters by exact role; an unknown role simply matches nobody.
func (u *User) List(ctx context.Context, role string) ([]user.User, error) {
	list, err := u.users.List(ctx, user.Role(strings.TrimSpace(role)))
	if err != nil {
		return nil, ErrInternal
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

func (u *User) Create(ctx context.Context, in CreateUserInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return user.User{}, invalid("name and email are required")
	}

	role := user.RoleApplicant
	if r := strings.TrimSpace(in.Role); r != "" {
		role = user.Role(r)
		if !role.Valid() {
			return user.User{}, invalid("role must be applicant, employer, or admin if provided")
		}
	}
	if role == user.RoleAdmin && (in.Actor == nil || in.Actor.Role != user.RoleAdmin) {
		return user.User{}, ErrAdminRoleDenied
	}

	usr := user.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: u.now().UTC(),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *User) Get(ctx context.Context, id string) (user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}
