package coupon

import (
	"slices"
	"time"

	"elearning-storefront/internal/domain/catalog"

	"github.com/google/uuid"
)

type Coupon struct {
	id                  uuid.UUID
	code                Code
	discount            Discount
	validFrom           *time.Time
	validTo             *time.Time
	maxRedemptions      *int
	perUserLimit        *int
	applicableItemTypes []catalog.ItemType
	redemptionCount     int
	isActive            bool
}

type Params struct {
	ID                  uuid.UUID
	Code                string
	Discount            Discount
	ValidFrom           *time.Time
	ValidTo             *time.Time
	MaxRedemptions      *int
	PerUserLimit        *int
	ApplicableItemTypes []catalog.ItemType
	RedemptionCount     int
	IsActive            bool
}

// Reconstruct rebuilds a coupon from storage.
func Reconstruct(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}
	for _, t := range p.ApplicableItemTypes {
		if !t.IsValid() {
			return nil, catalog.ErrInvalidItemType
		}
	}

	return &Coupon{
		id:                  p.ID,
		code:                code,
		discount:            p.Discount,
		validFrom:           p.ValidFrom,
		validTo:             p.ValidTo,
		maxRedemptions:      p.MaxRedemptions,
		perUserLimit:        p.PerUserLimit,
		applicableItemTypes: slices.Clone(p.ApplicableItemTypes),
		redemptionCount:     p.RedemptionCount,
		isActive:            p.IsActive,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

// AppliesTo reports whether the coupon can be used for itemType.
// An empty list means every item type.
func (c *Coupon) AppliesTo(itemType catalog.ItemType) bool {
	if len(c.applicableItemTypes) == 0 {
		return true
	}
	return slices.Contains(c.applicableItemTypes, itemType)
}

func (c *Coupon) ID() uuid.UUID                           { return c.id }
func (c *Coupon) Code() Code                              { return c.code }
func (c *Coupon) Discount() Discount                      { return c.discount }
func (c *Coupon) ValidFrom() *time.Time                   { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time                     { return c.validTo }
func (c *Coupon) MaxRedemptions() *int                    { return c.maxRedemptions }
func (c *Coupon) PerUserLimit() *int                      { return c.perUserLimit }
func (c *Coupon) ApplicableItemTypes() []catalog.ItemType { return slices.Clone(c.applicableItemTypes) }
func (c *Coupon) RedemptionCount() int                    { return c.redemptionCount }
func (c *Coupon) IsActive() bool                          { return c.isActive }
