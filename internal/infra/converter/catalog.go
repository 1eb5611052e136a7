package converter

import (
	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra/query"
)

func CourseToDomain(row query.Courses) (*catalog.Course, error) {
	return catalog.NewCourse(row.ID, row.Title, row.Price, row.IsFree)
}

func EbookToDomain(row query.Ebooks) (*catalog.Ebook, error) {
	if row.DiscountPrice.Valid {
		dp := row.DiscountPrice.Decimal
		return catalog.NewEbook(row.ID, row.Title, row.Price, &dp, row.IsFree)
	}
	return catalog.NewEbook(row.ID, row.Title, row.Price, nil, row.IsFree)
}
