//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/queries"
	"elearning-storefront/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	routerSuite
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func courseView() queries.CourseView {
	return queries.CourseView{
		ID:            uuid.New(),
		Title:         "ฟิสิกส์ ม.5",
		Description:   "กลศาสตร์และคลื่น",
		Price:         decimal.RequireFromString("1290.00"),
		Category:      &queries.CategoryRef{ID: uuid.New(), Name: "วิทยาศาสตร์"},
		CoverImageURL: "https://cdn.example.com/courses/physics.jpg",
		CreatedAt:     time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *CatalogHandlerTestSuite) TestListCourses() {
	s.Run("success: paging is normalized before the query", func() {
		categoryID := uuid.New()
		want := queries.ListParams{CategoryID: &categoryID, Search: "ฟิสิกส์", Page: 1, Limit: queries.MaxPageLimit}
		page := &queries.Page[queries.CourseView]{
			Items:      []queries.CourseView{courseView()},
			Pagination: queries.NewPagination(want, 1),
		}
		s.mockCatalogQ.EXPECT().ListCourses(gomock.Any(), want).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/courses?categoryId="+categoryID.String()+"&search=%E0%B8%9F%E0%B8%B4%E0%B8%AA%E0%B8%B4%E0%B8%81%E0%B8%AA%E0%B9%8C&page=0&limit=500", nil, "")

		var body resdto.PageResponse[resdto.CourseResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(1290.0, body.Items[0].Price)
		s.Equal(int64(1), body.Pagination.Total)
		s.Equal(1, body.Pagination.TotalPages)
	})

	s.Run("success: defaults apply without query strings", func() {
		want := queries.ListParams{Page: 1, Limit: queries.DefaultPageLimit}
		s.mockCatalogQ.EXPECT().ListCourses(gomock.Any(), want).
			Return(&queries.Page[queries.CourseView]{Items: []queries.CourseView{}, Pagination: queries.NewPagination(want, 0)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses", nil, "")

		var body resdto.PageResponse[resdto.CourseResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("error: 400 for a malformed category id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses?categoryId=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func (s *CatalogHandlerTestSuite) TestGetCourse() {
	s.Run("success", func() {
		view := courseView()
		s.mockCatalogQ.EXPECT().GetCourse(gomock.Any(), view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses/"+view.ID.String(), nil, "")

		var body resdto.CourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Title, body.Title)
	})

	s.Run("error: 404 for unpublished or missing course", func() {
		s.mockCatalogQ.EXPECT().GetCourse(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrCourseNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses/"+uuid.NewString(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "COURSE_NOT_FOUND")
	})
}

func (s *CatalogHandlerTestSuite) TestGetEbook() {
	discount := decimal.RequireFromString("199.00")
	view := queries.EbookView{
		ID:            uuid.New(),
		Title:         "สรุปชีววิทยา",
		Author:        "ครูพี่หมอ",
		Price:         decimal.RequireFromString("259.00"),
		DiscountPrice: &discount,
	}
	s.mockCatalogQ.EXPECT().GetEbook(gomock.Any(), view.ID).Return(&view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/ebooks/"+view.ID.String(), nil, "")

	var body resdto.EbookResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(259.0, body.Price)
	s.Require().NotNil(body.DiscountPrice)
	s.Equal(199.0, *body.DiscountPrice)
}

func (s *CatalogHandlerTestSuite) TestGetExam() {
	s.Run("success: files are listed with the exam", func() {
		view := queries.ExamView{
			ID:       uuid.New(),
			Title:    "O-NET คณิตศาสตร์ 2567",
			IsActive: true,
			Files: []queries.ExamFileView{
				{ID: uuid.New(), FileName: "ข้อสอบ.pdf", FileURL: "https://cdn.example.com/exams/a.pdf", FileType: "application/pdf", FileSize: 2048},
			},
		}
		view.Files[0].ExamID = view.ID
		s.mockCatalogQ.EXPECT().GetExam(gomock.Any(), view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/exams/"+view.ID.String(), nil, "")

		var body resdto.ExamResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Files, 1)
		s.Equal("ข้อสอบ.pdf", body.Files[0].FileName)
	})

	s.Run("error: 404 when the exam is missing", func() {
		s.mockCatalogQ.EXPECT().GetExam(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrExamNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/exams/"+uuid.NewString(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "EXAM_NOT_FOUND")
	})
}

func (s *CatalogHandlerTestSuite) TestListCategories() {
	s.Run("success", func() {
		cats := []queries.CategoryView{{ID: uuid.New(), Kind: "ebook", Name: "หนังสือเตรียมสอบ"}}
		s.mockCatalogQ.EXPECT().ListCategories(gomock.Any(), "ebook").Return(cats, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/categories?kind=ebook", nil, "")

		var body []queries.CategoryView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(cats, body)
	})

	s.Run("error: 400 for an unknown kind", func() {
		s.mockCatalogQ.EXPECT().ListCategories(gomock.Any(), "music").
			Return(nil, errs.Mark(queries.ErrInvalidCategoryKind, errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/categories?kind=music", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_CATEGORY_KIND")
	})
}
