package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobmatch/internal/pkg/jwt"
	ucauth "jobmatch/internal/usecase/auth"

	"github.com/stretchr/testify/require"
)

func newAuthForTest(t *testing.T) (*Auth, jwt.Service) {
	t.Helper()
	s := newSeededStore(t)
	svc, err := jwt.NewHMACService("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthUsecase(s.Users(), s.Tokens(), svc, nil), svc
}

func TestAuth_LoginSeededUserAcceptsAnyPassword(t *testing.T) {
	uc, _ := newAuthForTest(t)
	ctx := context.Background()

	sess, err := uc.Login(ctx, ucauth.LoginInput{Email: "Alice@Example.com", Password: "whatever"})
	require.NoError(t, err)
	require.Equal(t, "u1", sess.User.ID)
	require.Equal(t, "Bearer", sess.TokenType)
	require.Equal(t, 3600, sess.ExpiresIn)
	require.NotEmpty(t, sess.Token)

	usr, err := uc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, "u1", usr.ID)
}

func TestAuth_LoginErrors(t *testing.T) {
	uc, _ := newAuthForTest(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, ucauth.LoginInput{Email: "alice@example.com"})
	require.ErrorIs(t, err, ucauth.ErrLoginFieldsRequired)

	_, err = uc.Login(ctx, ucauth.LoginInput{Email: "nobody@example.com", Password: "x"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestAuth_LoginRefusesAdminWithoutPasswordHash(t *testing.T) {
	uc, _ := newAuthForTest(t)

	_, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "admin@example.com", Password: "anything"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestAuth_RegisterHashesPassword(t *testing.T) {
	uc, _ := newAuthForTest(t)
	ctx := context.Background()

	sess, err := uc.Register(ctx, ucauth.RegisterInput{Name: "Dana", Email: "dana@example.com", Password: "s3cret", Role: "employer"})
	require.NoError(t, err)
	require.Equal(t, "employer", string(sess.User.Role))
	require.Empty(t, sess.User.PasswordHash)

	_, err = uc.Login(ctx, ucauth.LoginInput{Email: "dana@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	again, err := uc.Login(ctx, ucauth.LoginInput{Email: "dana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, again.User.ID)
	require.NotEqual(t, sess.Token, again.Token)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc, _ := newAuthForTest(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ucauth.RegisterInput
		want error
	}{
		{"missing name", ucauth.RegisterInput{Email: "x@example.com", Password: "p"}, ucauth.ErrRegisterFieldsRequired},
		{"admin role", ucauth.RegisterInput{Name: "X", Email: "x@example.com", Password: "p", Role: "admin"}, ucauth.ErrInvalidRole},
		{"taken email", ucauth.RegisterInput{Name: "X", Email: "alice@example.com", Password: "p"}, ucauth.ErrEmailAlreadyRegistered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuth_AuthenticateRejectsUnregisteredToken(t *testing.T) {
	uc, svc := newAuthForTest(t)
	ctx := context.Background()

	// Correctly signed but never issued through Login/Register.
	tok, err := svc.GenerateAccessToken("u1", "applicant")
	require.NoError(t, err)

	_, err = uc.Authenticate(ctx, tok)
	require.True(t, errors.Is(err, ErrUnauthorized))

	_, err = uc.Authenticate(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "mock-token-123")
	require.ErrorIs(t, err, ErrUnauthorized)
}
