package converter

import (
	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) query.CreateUserParams {
	return query.CreateUserParams{
		ID:              u.ID(),
		Name:            u.Name().Value(),
		Email:           u.Email().Value(),
		PasswordHash:    pgconv.OptionalStringToPgtype(u.PasswordHash()),
		Role:            u.Role().String(),
		Provider:        string(u.Provider()),
		ProviderSubject: pgconv.OptionalStringToPgtype(u.ProviderSubject()),
		IsActive:        u.IsActive(),
		CreatedAt:       pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToDomain(row query.Users) (*user.User, error) {
	return user.Reconstruct(user.Params{
		ID:              row.ID,
		Name:            row.Name,
		Email:           row.Email,
		PasswordHash:    pgconv.StringFromPgtype(row.PasswordHash),
		Role:            row.Role,
		Provider:        row.Provider,
		ProviderSubject: pgconv.StringFromPgtype(row.ProviderSubject),
		LastLogin:       pgconv.TimePtrFromPgtype(row.LastLogin),
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	})
}
