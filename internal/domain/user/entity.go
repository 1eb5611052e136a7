package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id              uuid.UUID
	name            Name
	email           Email
	passwordHash    string
	role            Role
	provider        Provider
	providerSubject string
	lastLogin       *time.Time
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

// NewUser builds a credentials account. New accounts are always RoleUser;
// admins are promoted out of band.
func NewUser(name Name, email Email, passwordHash string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         RoleUser,
		provider:     ProviderCredentials,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// NewSocialUser builds an account for a first sign-in through an external provider.
// It has no password and can only sign in through that provider.
func NewSocialUser(name Name, email Email, provider Provider, subject string, now time.Time) *User {
	return &User{
		id:              uuid.New(),
		name:            name,
		email:           email,
		role:            RoleUser,
		provider:        provider,
		providerSubject: subject,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}
}

type Params struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	Provider        string
	ProviderSubject string
	LastLogin       *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct rebuilds a user from storage, re-validating the stored values.
func Reconstruct(p Params) (*User, error) {
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	role, err := NewRole(p.Role)
	if err != nil {
		return nil, err
	}
	return &User{
		id:              p.ID,
		name:            name,
		email:           email,
		passwordHash:    p.PasswordHash,
		role:            role,
		provider:        Provider(p.Provider),
		providerSubject: p.ProviderSubject,
		lastLogin:       p.LastLogin,
		isActive:        p.IsActive,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

// CanUsePassword is false for accounts created through a social provider.
func (u *User) CanUsePassword() bool {
	return u.passwordHash != ""
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Name() Name              { return u.name }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) Provider() Provider      { return u.provider }
func (u *User) ProviderSubject() string { return u.providerSubject }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
