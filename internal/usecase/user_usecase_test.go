package usecase

import (
	"context"
	"testing"

	"jobmatch/internal/domain/user"

	"github.com/stretchr/testify/require"
)

func TestUsers_CreateDefaultsToApplicant(t *testing.T) {
	uc := NewUserUsecase(newSeededStore(t).Users())
	uc.now = fixedClock

	u, err := uc.Create(context.Background(), CreateUserInput{Name: "Finn", Email: " Finn@Example.com "})
	require.NoError(t, err)
	require.Equal(t, user.RoleApplicant, u.Role)
	require.Equal(t, "finn@example.com", u.Email)
	require.Equal(t, fixedNow, u.CreatedAt)

	_, err = uc.Create(context.Background(), CreateUserInput{Name: "Finn", Email: "finn@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUsers_CreateAdminNeedsAdminActor(t *testing.T) {
	uc := NewUserUsecase(newSeededStore(t).Users())
	ctx := context.Background()

	tests := []struct {
		name  string
		actor *user.User
		err   error
	}{
		{name: "anonymous", actor: nil, err: ErrAdminRoleDenied},
		{name: "applicant", actor: &user.User{ID: "u1", Role: user.RoleApplicant}, err: ErrAdminRoleDenied},
		{name: "employer", actor: &user.User{ID: "u2", Role: user.RoleEmployer}, err: ErrAdminRoleDenied},
		{name: "admin", actor: &user.User{ID: "admin", Role: user.RoleAdmin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := uc.Create(ctx, CreateUserInput{Name: "Root", Email: "new-" + tt.name + "@example.com", Role: "admin", Actor: tt.actor})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, user.RoleAdmin, u.Role)
		})
	}
}
