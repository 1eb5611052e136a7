//go:build unit || e2e

package builder

import (
	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseBuilder struct {
	ID     uuid.UUID
	Title  string
	Price  decimal.Decimal
	IsFree bool
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:    uuid.New(),
		Title: "Go for Backend Engineers",
		Price: decimal.NewFromInt(1000),
	}
}

func (b *CourseBuilder) WithPrice(price int64) *CourseBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *CourseBuilder) AsFree() *CourseBuilder {
	b.Price = decimal.Zero
	b.IsFree = true
	return b
}

func (b *CourseBuilder) BuildDomain() *catalog.Course {
	c, err := catalog.NewCourse(b.ID, b.Title, b.Price, b.IsFree)
	if err != nil {
		panic(err)
	}
	return c
}

type EbookBuilder struct {
	ID            uuid.UUID
	Title         string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	IsFree        bool
}

func NewEbookBuilder() *EbookBuilder {
	return &EbookBuilder{
		ID:    uuid.New(),
		Title: "Concurrency in Practice",
		Price: decimal.NewFromInt(450),
	}
}

func (b *CourseBuilder) BuildInfra() query.Courses {
	return query.Courses{
		ID:          b.ID,
		Title:       b.Title,
		Price:       b.Price,
		IsFree:      b.IsFree,
		IsPublished: true,
	}
}

func (b *EbookBuilder) WithDiscountPrice(price int64) *EbookBuilder {
	d := decimal.NewFromInt(price)
	b.DiscountPrice = &d
	return b
}

func (b *EbookBuilder) BuildDomain() *catalog.Ebook {
	e, err := catalog.NewEbook(b.ID, b.Title, b.Price, b.DiscountPrice, b.IsFree)
	if err != nil {
		panic(err)
	}
	return e
}

func (b *EbookBuilder) BuildInfra() query.Ebooks {
	row := query.Ebooks{
		ID:          b.ID,
		Title:       b.Title,
		Price:       b.Price,
		IsFree:      b.IsFree,
		IsPublished: true,
	}
	if b.DiscountPrice != nil {
		row.DiscountPrice = decimal.NullDecimal{Decimal: *b.DiscountPrice, Valid: true}
	}
	return row
}
