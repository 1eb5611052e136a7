//go:build unit || e2e

package builder

import (
	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserBuilder builds the read-side and session views of a signed-in user.
type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     user.Role
	Provider string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@example.com",
		Role:     user.RoleUser,
		Provider: "credentials",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		Provider: u.Provider,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildSession() session.Session {
	return session.Session{
		UserID: u.ID,
		Role:   u.Role,
		Name:   u.Name,
		Email:  u.Email,
	}
}
