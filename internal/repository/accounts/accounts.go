package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// Account is a demo login before its password is hashed.
type Account struct {
	User     user.User
	Password string
}

// DemoAccounts are the built-in sign-ins of the Prakura demo.
// The employee login acts as seeded employee 1.
func DemoAccounts() []Account {
	employeeID := "1"
	return []Account{
		{User: user.User{ID: "1", Email: "admin@prakura.in", Role: user.RoleSuperAdmin, FirstName: "System", LastName: "Admin"}, Password: "admin123"},
		{User: user.User{ID: "2", Email: "hr@prakura.in", Role: user.RoleHR, FirstName: "Neha", LastName: "Sharma"}, Password: "hr123"},
		{User: user.User{ID: "3", Email: "emp@prakura.in", Role: user.RoleEmployee, FirstName: "Rahul", LastName: "Verma", EmployeeID: &employeeID}, Password: "emp123"},
	}
}

type userRepositoryImpl struct {
	byEmail map[string]user.User
	byID    map[string]user.User
}

// NewUserRepository hashes every password with bcrypt at the given cost and
// keeps the resulting users in memory.
func NewUserRepository(accounts []Account, cost int) (user.UserRepository, error) {
	r := &userRepositoryImpl{
		byEmail: make(map[string]user.User, len(accounts)),
		byID:    make(map[string]user.User, len(accounts)),
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.User.Email, err)
		}
		u := a.User
		u.PasswordHash = string(hash)
		r.byEmail[strings.ToLower(u.Email)] = u
		r.byID[u.ID] = u
	}
	return r, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
