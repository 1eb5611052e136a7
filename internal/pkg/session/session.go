package session

import (
	"context"

	"elearning-storefront/internal/domain/user"

	"github.com/google/uuid"
)

// Session is the authenticated caller for one request.
type Session struct {
	UserID uuid.UUID
	Role   user.Role
	Name   string
	Email  string
}

func (s Session) IsAdmin() bool {
	return s.Role.IsAdmin()
}

// CanAccessOwnedBy reports whether the caller may read a record owned by owner.
func (s Session) CanAccessOwnedBy(owner uuid.UUID) bool {
	return s.UserID == owner || s.IsAdmin()
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
