package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queries

import (
	"context"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"

	"github.com/google/uuid"
)

type EnrollmentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, itemType string) ([]EnrollmentView, error)
	Find(ctx context.Context, userID uuid.UUID, itemType catalog.ItemType, itemID uuid.UUID) (*EnrollmentView, error)
}

type AccessCheck struct {
	Enrolled   bool            `json:"enrolled"`
	Enrollment *EnrollmentView `json:"enrollment"`
}

type EnrollmentQueries interface {
	// ListMine lists the caller's items; an empty itemType means all.
	ListMine(ctx context.Context, sess session.Session, itemType string) ([]EnrollmentView, error)
	HasAccess(ctx context.Context, sess session.Session, itemType catalog.ItemType, itemID uuid.UUID) (*AccessCheck, error)
}

type enrollmentQueriesImpl struct {
	store EnrollmentReadStore
}

func NewEnrollmentQueries(store EnrollmentReadStore) EnrollmentQueries {
	return &enrollmentQueriesImpl{store: store}
}

func (q *enrollmentQueriesImpl) ListMine(ctx context.Context, sess session.Session, itemType string) ([]EnrollmentView, error) {
	if itemType != "" {
		if _, err := catalog.NewItemType(itemType); err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}
	items, err := q.store.ListByUser(ctx, sess.UserID, itemType)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []EnrollmentView{}
	}
	return items, nil
}

func (q *enrollmentQueriesImpl) HasAccess(ctx context.Context, sess session.Session, itemType catalog.ItemType, itemID uuid.UUID) (*AccessCheck, error) {
	e, err := q.store.Find(ctx, sess.UserID, itemType, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &AccessCheck{Enrolled: false}, nil
		}
		return nil, err
	}
	return &AccessCheck{Enrolled: true, Enrollment: e}, nil
}
