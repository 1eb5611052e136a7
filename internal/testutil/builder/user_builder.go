//go:build unit || e2e

package builder

import (
	"time"

	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Provider     string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "สมชาย ใจดี",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuO6vQ3hV4n5WmQn1yq2m3n4o5p6q7r8s",
		Role:         string(user.RoleUser),
		Provider:     string(user.ProviderCredentials),
		IsActive:     true,
		Now:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = string(user.RoleAdmin)
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	return user.Reconstruct(user.Params{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		Provider:     b.Provider,
		IsActive:     b.IsActive,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	})
}

func (b *UserBuilder) MustBuildDomain() *user.User {
	u, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return u
}

func (b *UserBuilder) BuildInfra() query.Users {
	return query.Users{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		PasswordHash: pgconv.OptionalStringToPgtype(b.PasswordHash),
		Role:         b.Role,
		Provider:     b.Provider,
		IsActive:     b.IsActive,
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}
