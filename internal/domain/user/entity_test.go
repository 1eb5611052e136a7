//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("reconstructs a stored user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Test@Example.COM ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.CanUsePassword())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.co.th") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing at", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid.example.com") }, errIs: user.ErrInvalidEmail},
			{name: "missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("user@") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "thai name", mutate: func(b *builder.UserBuilder) { b.WithName("เชษฐา") }},
			{name: "blank", mutate: func(b *builder.UserBuilder) { b.WithName("   ") }, errIs: user.ErrInvalidName},
			{name: "too long", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("ก", 101)) }, errIs: user.ErrInvalidName},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.AsAdmin() }},
			{name: "lower case is rejected", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }, errIs: user.ErrInvalidRole},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("GUEST") }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	name, err := user.NewName("สมหญิง")
	require.NoError(t, err)
	email, err := user.NewEmail("somying@example.com")
	require.NoError(t, err)

	t.Run("credentials account", func(t *testing.T) {
		u := user.NewUser(name, email, "hash", now)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Equal(t, user.ProviderCredentials, u.Provider())
		assert.True(t, u.CanUsePassword())
		if diff := cmp.Diff(now, u.CreatedAt()); diff != "" {
			t.Errorf("createdAt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("social account has no password", func(t *testing.T) {
		u := user.NewSocialUser(name, email, user.ProviderGoogle, "google-sub-1", now)

		assert.Equal(t, user.ProviderGoogle, u.Provider())
		assert.Equal(t, "google-sub-1", u.ProviderSubject())
		assert.False(t, u.CanUsePassword())
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			u, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, u)
		})
	}
}
