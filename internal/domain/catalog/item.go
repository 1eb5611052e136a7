package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a purchasable catalog record: exactly one of Course or Ebook.
// Callers switch on Type() instead of probing optional fields.
type Item interface {
	ID() uuid.UUID
	Type() ItemType
	Title() string
	// Subtotal is the price an order for this item starts from.
	Subtotal() decimal.Decimal
	isItem()
}

type Course struct {
	id     uuid.UUID
	title  string
	price  decimal.Decimal
	isFree bool
}

func NewCourse(id uuid.UUID, title string, price decimal.Decimal, isFree bool) (*Course, error) {
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &Course{id: id, title: title, price: price, isFree: isFree}, nil
}

func (c *Course) ID() uuid.UUID          { return c.id }
func (c *Course) Type() ItemType         { return ItemTypeCourse }
func (c *Course) Title() string          { return c.title }
func (c *Course) Price() decimal.Decimal { return c.price }
func (c *Course) IsFree() bool           { return c.isFree }
func (*Course) isItem()                  {}

func (c *Course) Subtotal() decimal.Decimal {
	if c.isFree {
		return decimal.Zero
	}
	return c.price
}

type Ebook struct {
	id            uuid.UUID
	title         string
	price         decimal.Decimal
	discountPrice *decimal.Decimal
	isFree        bool
}

func NewEbook(id uuid.UUID, title string, price decimal.Decimal, discountPrice *decimal.Decimal, isFree bool) (*Ebook, error) {
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if discountPrice != nil && discountPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &Ebook{id: id, title: title, price: price, discountPrice: discountPrice, isFree: isFree}, nil
}

func (e *Ebook) ID() uuid.UUID                   { return e.id }
func (e *Ebook) Type() ItemType                  { return ItemTypeEbook }
func (e *Ebook) Title() string                   { return e.title }
func (e *Ebook) Price() decimal.Decimal          { return e.price }
func (e *Ebook) DiscountPrice() *decimal.Decimal { return e.discountPrice }
func (e *Ebook) IsFree() bool                    { return e.isFree }
func (*Ebook) isItem()                           {}

// Subtotal uses the discount price when one is set and lower than the list price.
func (e *Ebook) Subtotal() decimal.Decimal {
	if e.isFree {
		return decimal.Zero
	}
	if e.discountPrice != nil && e.discountPrice.LessThan(e.price) {
		return *e.discountPrice
	}
	return e.price
}
