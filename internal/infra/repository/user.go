package repository

import (
	"context"

	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.Users, error)
	FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	FindUserByProviderSubject(ctx context.Context, db query.DBTX, provider, subject string) (query.Users, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserQueries
	db      query.DBTX
}

func NewUserRepository(queries UserQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	return r.toDomain(row, err, "by email")
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	return r.toDomain(row, err, "by ID")
}

func (r *UserRepository) FindByProviderSubject(ctx context.Context, provider user.Provider, subject string) (*user.User, error) {
	row, err := r.queries.FindUserByProviderSubject(ctx, r.db, string(provider), subject)
	return r.toDomain(row, err, "by provider subject")
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) toDomain(row query.Users, err error, by string) (*user.User, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user "+by, err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err)
	}
	return u, nil
}
