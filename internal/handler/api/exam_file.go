package api

import (
	"net/http"

	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgExamIDRequired   = "กรุณาระบุ ID ข้อสอบ"
	msgExamFileRequired = "กรุณาเลือกไฟล์และระบุ ID ข้อสอบ"
	msgExamFileUploaded = "อัพโหลดไฟล์สำเร็จ"
)

type ExamFileHandler struct {
	cmds     commands.ExamFileCommands
	q        queries.ExamFileQueries
	settings commands.UploadSettings
}

func NewExamFileHandler(cmds commands.ExamFileCommands, q queries.ExamFileQueries, settings commands.UploadSettings) *ExamFileHandler {
	return &ExamFileHandler{cmds: cmds, q: q, settings: settings}
}

type examFileUploadResponse struct {
	Message string                  `json:"message"`
	File    resdto.ExamFileResponse `json:"file"`
}

// @Summary Upload exam file
// @Description Admin only. PDF, Word or image, at most 10 MiB.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param examId formData string true "Exam ID"
// @Param file formData file true "Exam file"
// @Success 201 {object} httperr.Response{data=examFileUploadResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/exam-files [post]
func (h *ExamFileHandler) Upload(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok || !limitUpload(c, h.settings.ExamFile) {
		return
	}
	examID, err := uuid.Parse(c.PostForm("examId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgExamFileRequired, "EXAM_FILE_REQUIRED")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgExamFileRequired, "EXAM_FILE_REQUIRED")
		return
	}
	file, closeFile, ok := openFile(c, fh)
	if !ok {
		return
	}
	defer closeFile()

	result, err := h.cmds.Upload(c.Request.Context(), sess, commands.UploadExamFileInput{
		ExamID: examID,
		File:   file,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.Created(c, examFileUploadResponse{
		Message: msgExamFileUploaded,
		File:    resdto.FromExamFileResult(result),
	})
}

// @Summary List exam files
// @Tags admin
// @Produce json
// @Param examId query string true "Exam ID"
// @Success 200 {object} httperr.Response{data=[]queries.ExamFileView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/exam-files [get]
func (h *ExamFileHandler) List(c *gin.Context) {
	examID, err := uuid.Parse(c.Query("examId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgExamIDRequired, "EXAM_ID_REQUIRED")
		return
	}
	files, err := h.q.ListByExam(c.Request.Context(), examID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, files)
}
