package readstore

import (
	"context"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrollmentReadQueries interface {
	ListEnrollmentsByUser(ctx context.Context, db query.DBTX, userID uuid.UUID, itemType string) ([]query.EnrollmentWithItem, error)
	GetEnrollment(ctx context.Context, db query.DBTX, userID uuid.UUID, itemType string, itemID uuid.UUID) (query.EnrollmentWithItem, error)
}

type EnrollmentReadStore struct {
	queries EnrollmentReadQueries
	db      query.DBTX
}

func NewEnrollmentReadStore(queries EnrollmentReadQueries, db query.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EnrollmentReadStore) ListByUser(ctx context.Context, userID uuid.UUID, itemType string) ([]queries.EnrollmentView, error) {
	rows, err := r.queries.ListEnrollmentsByUser(ctx, r.db, userID, itemType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	return mapRows(rows, toEnrollmentView), nil
}

func (r *EnrollmentReadStore) Find(ctx context.Context, userID uuid.UUID, itemType catalog.ItemType, itemID uuid.UUID) (*queries.EnrollmentView, error) {
	row, err := r.queries.GetEnrollment(ctx, r.db, userID, itemType.String(), itemID)
	if err != nil {
		return nil, lookupErr("enrollment", err)
	}
	v := toEnrollmentView(row)
	return &v, nil
}

func toEnrollmentView(row query.EnrollmentWithItem) queries.EnrollmentView {
	return queries.EnrollmentView{
		ID:            row.ID,
		UserID:        row.UserID,
		ItemType:      row.ItemType,
		ItemID:        row.ItemID,
		ItemTitle:     pgconv.StringFromPgtype(row.ItemTitle),
		CoverImageURL: pgconv.StringFromPgtype(row.CoverImageUrl),
		OrderID:       pgconv.UUIDPtrFromPgtype(row.OrderID),
		GrantedAt:     row.GrantedAt,
	}
}
