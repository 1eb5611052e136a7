package api

import (
	"net/http"

	reqdto "elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

func bindList(c *gin.Context) (queries.ListParams, bool) {
	var query reqdto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return queries.ListParams{}, false
	}
	p, err := query.ToParams()
	if err != nil {
		badRequest(c, err)
		return queries.ListParams{}, false
	}
	return p, true
}

// @Summary List courses
// @Description List published courses with optional category filter and title search
// @Tags catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param search query string false "Title search"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Success 200 {object} httperr.Response{data=resdto.PageResponse[resdto.CourseResponse]}
// @Failure 400 {object} httperr.Response
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	p, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.q.ListCourses(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPage(page, resdto.FromCourseView)
	mapped(c, http.StatusOK, res, err)
}

// @Summary Get course
// @Tags catalog
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} httperr.Response{data=resdto.CourseResponse}
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCourse(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCourseView(view)
	mapped(c, http.StatusOK, res, err)
}

// @Summary List ebooks
// @Tags catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param search query string false "Title search"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Success 200 {object} httperr.Response{data=resdto.PageResponse[resdto.EbookResponse]}
// @Router /ebooks [get]
func (h *CatalogHandler) ListEbooks(c *gin.Context) {
	p, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.q.ListEbooks(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPage(page, resdto.FromEbookView)
	mapped(c, http.StatusOK, res, err)
}

// @Summary Get ebook
// @Tags catalog
// @Produce json
// @Param id path string true "Ebook ID"
// @Success 200 {object} httperr.Response{data=resdto.EbookResponse}
// @Failure 404 {object} httperr.Response
// @Router /ebooks/{id} [get]
func (h *CatalogHandler) GetEbook(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetEbook(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromEbookView(view)
	mapped(c, http.StatusOK, res, err)
}

// @Summary List exams
// @Tags catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param search query string false "Title search"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Success 200 {object} httperr.Response{data=resdto.PageResponse[resdto.ExamResponse]}
// @Router /exams [get]
func (h *CatalogHandler) ListExams(c *gin.Context) {
	p, ok := bindList(c)
	if !ok {
		return
	}
	page, err := h.q.ListExams(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPage(page, resdto.FromExamView)
	mapped(c, http.StatusOK, res, err)
}

// @Summary Get exam with its files
// @Tags catalog
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} httperr.Response{data=resdto.ExamResponse}
// @Failure 404 {object} httperr.Response
// @Router /exams/{id} [get]
func (h *CatalogHandler) GetExam(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetExam(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromExamView(view)
	mapped(c, http.StatusOK, res, err)
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Param kind query string false "course | ebook | exam"
// @Success 200 {object} httperr.Response{data=[]queries.CategoryView}
// @Failure 400 {object} httperr.Response
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.q.ListCategories(c.Request.Context(), c.Query("kind"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, cats)
}
