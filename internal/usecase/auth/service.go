package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobmatch/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("User with this email already exists")
	ErrInvalidCredentials     = errors.New("Invalid credentials")
	ErrRegisterFieldsRequired = errors.New("name, email and password are required")
	ErrLoginFieldsRequired    = errors.New("email and password are required")
	ErrInvalidRole            = errors.New("role must be applicant or employer if provided")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service checks credentials against the user collection. It knows nothing
// about tokens.
type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return user.User{}, ErrRegisterFieldsRequired
	}

	role := user.RoleApplicant
	if r := strings.TrimSpace(in.Role); r != "" {
		role = user.Role(r)
		if role != user.RoleApplicant && role != user.RoleEmployer {
			return user.User{}, ErrInvalidRole
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(u), nil
}

// Login accepts any non-empty password for non-admin accounts that were
// seeded or created without one. An admin account always needs its hash.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrLoginFieldsRequired
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	switch {
	case u.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
			return user.User{}, ErrInvalidCredentials
		}
	case u.Role == user.RoleAdmin:
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
