package repository

import (
	"context"

	"elearning-storefront/internal/domain/enrollment"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
)

type EnrollmentWriteQueries interface {
	GrantEnrollment(ctx context.Context, db query.DBTX, arg query.GrantEnrollmentParams) (int64, error)
}

type EnrollmentRepository struct {
	queries EnrollmentWriteQueries
	db      query.DBTX
}

func NewEnrollmentRepository(queries EnrollmentWriteQueries, db query.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EnrollmentRepository) Grant(ctx context.Context, e *enrollment.Enrollment) (bool, error) {
	affected, err := r.queries.GrantEnrollment(ctx, r.db, query.GrantEnrollmentParams{
		ID:        e.ID(),
		UserID:    e.UserID(),
		ItemType:  e.ItemType().String(),
		ItemID:    e.ItemID(),
		OrderID:   pgconv.UUIDPtrToPgtype(e.OrderID()),
		GrantedAt: e.GrantedAt(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to grant enrollment", err)
	}
	return affected > 0, nil
}
