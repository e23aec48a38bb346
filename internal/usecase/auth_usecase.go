package usecase

import (
	"context"
	"errors"
	"log"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/pkg/jwt"
	ucauth "jobmatch/internal/usecase/auth"
)

const TokenTypeBearer = "Bearer"

type Session struct {
	User      user.User
	Token     string
	TokenType string
	ExpiresIn int
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (Session, error)
	Login(ctx context.Context, in ucauth.LoginInput) (Session, error)
	// Authenticate resolves a bearer token to its user. The token must be
	// correctly signed and issued by this process.
	Authenticate(ctx context.Context, token string) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	tokens  user.TokenRepository
	jwt     jwt.Service
	logger  *log.Logger
}

func NewAuthUsecase(users user.Repository, tokens user.TokenRepository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	if logger == nil {
		logger = log.Default()
	}
	return &Auth{
		authSvc: ucauth.NewService(users),
		users:   users,
		tokens:  tokens,
		jwt:     jwtSvc,
		logger:  logger,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (Session, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(ctx, usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (Session, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return Session{}, err
	}
	return u.issue(ctx, usr)
}

func (u *Auth) Authenticate(ctx context.Context, token string) (user.User, error) {
	if token == "" {
		return user.User{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return user.User{}, ErrUnauthorized
	}

	userID, err := u.tokens.UserID(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrTokenUnknown) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	if userID != claims.UserID {
		return user.User{}, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Auth) issue(ctx context.Context, usr user.User) (Session, error) {
	token, err := u.jwt.GenerateAccessToken(usr.ID, string(usr.Role))
	if err != nil {
		return Session{}, ErrInternal
	}
	if err := u.tokens.Save(ctx, token, usr.ID); err != nil {
		u.logger.Printf("[Auth] save token failed user_id=%s err=%v", usr.ID, err)
		return Session{}, ErrInternal
	}

	return Session{
		User:      usr,
		Token:     token,
		TokenType: TokenTypeBearer,
		ExpiresIn: int(u.jwt.ExpiresIn().Seconds()),
	}, nil
}
