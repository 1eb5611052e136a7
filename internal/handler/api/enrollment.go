package api

import (
	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	q queries.EnrollmentQueries
}

func NewEnrollmentHandler(q queries.EnrollmentQueries) *EnrollmentHandler {
	return &EnrollmentHandler{q: q}
}

// @Summary List my enrollments or check one course
// @Description With courseId, answers whether the caller is enrolled in that course.
// @Tags enrollments
// @Produce json
// @Param courseId query string false "Course ID"
// @Param itemType query string false "course | ebook"
// @Success 200 {object} httperr.Response{data=[]queries.EnrollmentView}
// @Success 200 {object} httperr.Response{data=queries.AccessCheck}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	if raw := c.Query("courseId"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		check, err := h.q.HasAccess(c.Request.Context(), sess, catalog.ItemTypeCourse, courseID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		httperr.OK(c, check)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), sess, c.Query("itemType"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, views)
}

// @Summary List my courses
// @Tags enrollments
// @Produce json
// @Success 200 {object} httperr.Response{data=[]queries.EnrollmentView}
// @Failure 401 {object} httperr.Response
// @Router /my-courses [get]
func (h *EnrollmentHandler) MyCourses(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), sess, string(catalog.ItemTypeCourse))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, views)
}
