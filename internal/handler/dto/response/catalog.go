package response

import (
	"time"

	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseResponse struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	IsFree        bool                 `json:"isFree"`
	Category      *queries.CategoryRef `json:"category,omitempty"`
	CoverImageURL string               `json:"coverImageUrl"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type EbookResponse struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Author        string               `json:"author"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	DiscountPrice *float64             `json:"discountPrice,omitempty" copier:"-"`
	IsFree        bool                 `json:"isFree"`
	Category      *queries.CategoryRef `json:"category,omitempty"`
	CoverImageURL string               `json:"coverImageUrl"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type ExamResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    *queries.CategoryRef   `json:"category,omitempty"`
	IsActive    bool                   `json:"isActive"`
	Files       []queries.ExamFileView `json:"files,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

type PageResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination queries.Pagination `json:"pagination"`
}

func FromCourseView(v *queries.CourseView) (CourseResponse, error) {
	var r CourseResponse
	err := copyInto(&r, v)
	return r, err
}

func FromEbookView(v *queries.EbookView) (EbookResponse, error) {
	var r EbookResponse
	if err := copyInto(&r, v); err != nil {
		return r, err
	}
	r.DiscountPrice = money(v.DiscountPrice)
	return r, nil
}

func FromExamView(v *queries.ExamView) (ExamResponse, error) {
	var r ExamResponse
	err := copyInto(&r, v)
	return r, err
}

// FromPage maps every item of a listing page with conv.
func FromPage[V, R any](p *queries.Page[V], conv func(*V) (R, error)) (PageResponse[R], error) {
	out := PageResponse[R]{Items: make([]R, 0, len(p.Items)), Pagination: p.Pagination}
	for i := range p.Items {
		r, err := conv(&p.Items[i])
		if err != nil {
			return PageResponse[R]{}, err
		}
		out.Items = append(out.Items, r)
	}
	return out, nil
}
