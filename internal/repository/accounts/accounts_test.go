package accounts

import (
	"context"
	"testing"

	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUserRepository(DemoAccounts(), bcrypt.MinCost)
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, " HR@prakura.in ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hr123")))
	assert.NotEqual(t, "hr123", u.PasswordHash)

	emp, err := repo.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, emp.EmployeeID)
	assert.Equal(t, "1", *emp.EmployeeID)

	_, err = repo.GetByEmail(ctx, "nobody@prakura.in")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	_, err = repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
