package api

import (
	"mime/multipart"
	"net/http"

	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/handler/middleware"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest = "ข้อมูลไม่ถูกต้อง"
	msgFileRequired   = "กรุณาเลือกไฟล์"
	msgResponseFailed = "เกิดข้อผิดพลาด"
)

const (
	// multipartSlack covers boundaries, part headers and small text fields.
	multipartSlack  = 64 << 10
	multipartMemory = 32 << 20
)

func requireSession(c *gin.Context) (session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Fail(c, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
		return session.Session{}, false
	}
	return sess, true
}

func badRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, "INVALID_REQUEST")
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// mapped writes a response DTO, or a 500 envelope when mapping fails.
func mapped[T any](c *gin.Context, status int, v T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgResponseFailed, "INTERNAL_ERROR")
		return
	}
	httperr.Respond(c, status, v)
}

// limitUpload caps the request body at the policy limit and parses the form
// before any field is read. Parse errors other than an oversized body are left
// to the caller's own missing-field checks.
func limitUpload(c *gin.Context, policy upload.Policy) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, policy.MaxBytes()+multipartSlack)
	err := c.Request.ParseMultipartForm(multipartMemory)
	var tooLarge *http.MaxBytesError
	if err != nil && errs.As(err, &tooLarge) {
		httperr.Abort(c, errs.Mark(errs.Mark(upload.ErrFileTooLarge, commands.ErrInvalidUpload), errs.ErrValidation))
		return false
	}
	return true
}

// formFile opens a multipart file. The caller must call the returned close func.
func formFile(c *gin.Context, field string) (commands.FileInput, func(), bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgFileRequired, "FILE_REQUIRED")
		return commands.FileInput{}, nil, false
	}
	return openFile(c, fh)
}

func openFile(c *gin.Context, fh *multipart.FileHeader) (commands.FileInput, func(), bool) {
	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return commands.FileInput{}, nil, false
	}
	in := commands.FileInput{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}
	return in, func() { _ = f.Close() }, true
}
