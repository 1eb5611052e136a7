package enrollment

import (
	"time"

	"elearning-storefront/internal/domain/catalog"

	"github.com/google/uuid"
)

// Enrollment grants a user access to a course or ebook. At most one exists per
// (user, item type, item); granting twice is a no-op.
type Enrollment struct {
	id        uuid.UUID
	userID    uuid.UUID
	itemType  catalog.ItemType
	itemID    uuid.UUID
	orderID   *uuid.UUID
	grantedAt time.Time
}

func Grant(userID uuid.UUID, itemType catalog.ItemType, itemID uuid.UUID, orderID *uuid.UUID, now time.Time) *Enrollment {
	return &Enrollment{
		id:        uuid.New(),
		userID:    userID,
		itemType:  itemType,
		itemID:    itemID,
		orderID:   orderID,
		grantedAt: now,
	}
}

func (e *Enrollment) ID() uuid.UUID              { return e.id }
func (e *Enrollment) UserID() uuid.UUID          { return e.userID }
func (e *Enrollment) ItemType() catalog.ItemType { return e.itemType }
func (e *Enrollment) ItemID() uuid.UUID          { return e.itemID }
func (e *Enrollment) OrderID() *uuid.UUID        { return e.orderID }
func (e *Enrollment) GrantedAt() time.Time       { return e.grantedAt }
