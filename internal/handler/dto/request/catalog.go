package request

import (
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListQuery binds catalog listing query strings. Out-of-range paging is clamped, not rejected.
type ListQuery struct {
	CategoryID string `form:"categoryId"`
	Search     string `form:"search" binding:"max=100"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

func (q *ListQuery) ToParams() (queries.ListParams, error) {
	p := queries.ListParams{Search: q.Search, Page: q.Page, Limit: q.Limit}
	if q.CategoryID != "" {
		id, err := uuid.Parse(q.CategoryID)
		if err != nil {
			return queries.ListParams{}, err
		}
		p.CategoryID = &id
	}
	return p.Normalize(), nil
}
