package auth

import (
	"context"
	"testing"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/auth"
	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"github.com/prakura/hrms-backend-go/internal/pkg/jwt"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/repository/accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	repo, err := accounts.NewUserRepository(accounts.DemoAccounts(), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	return NewAuthService(repo, jwtService), jwtService
}

func TestLogin_DemoAccounts(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		email, password string
		role            user.Role
	}{
		{"admin@prakura.in", "admin123", user.RoleSuperAdmin},
		{"hr@prakura.in", "hr123", user.RoleHR},
		{"emp@prakura.in", "emp123", user.RoleEmployee},
	}
	for _, c := range cases {
		t.Run(c.email, func(t *testing.T) {
			res, err := svc.Login(ctx, auth.LoginRequest{Email: c.email, Password: c.password})
			require.NoError(t, err)
			assert.Equal(t, c.role, res.User.Role)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.NotEmpty(t, res.AccessToken)

			tok, err := jwtService.JWTAuth().Decode(res.AccessToken)
			require.NoError(t, err)
			role, _ := tok.Get("role")
			assert.Equal(t, string(c.role), role)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@prakura.in", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "ghost@prakura.in", Password: "admin123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: ""})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, auth.LoginRequest{Email: "hr@prakura.in", Password: "hr123"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(res.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), auth.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc, _ := newTestAuthService(t)
	u, err := svc.Me(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "hr@prakura.in", u.Email)

	_, err = svc.Me(context.Background(), "42")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
