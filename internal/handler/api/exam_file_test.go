//go:build unit

package api_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"
	"elearning-storefront/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExamFileHandlerTestSuite struct {
	routerSuite
}

func TestExamFileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExamFileHandlerTestSuite))
}

type examFileUploadBody struct {
	Message string `json:"message"`
	File    struct {
		ID           uuid.UUID `json:"id"`
		ExamID       uuid.UUID `json:"examId"`
		FileName     string    `json:"fileName"`
		FileURL      string    `json:"fileUrl"`
		ResourceType string    `json:"resourceType"`
	} `json:"file"`
}

func examPDF() httptest.FormFile {
	return httptest.FormFile{Field: "file", Name: "ข้อสอบ ชุดที่ 1.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7 exam")}
}

// ================================================================================
// TestUpload
// ================================================================================

func (s *ExamFileHandlerTestSuite) TestUpload() {
	path := "/api/admin/exam-files"

	s.Run("success: returns 201 with the stored file", func() {
		admin, token := s.adminToken()
		examID := uuid.New()
		s.mockExamFileCmds.EXPECT().Upload(gomock.Any(), admin, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, in commands.UploadExamFileInput) (*commands.ExamFileResult, error) {
				s.Equal(examID, in.ExamID)
				s.Equal("ข้อสอบ ชุดที่ 1.pdf", in.File.Name)
				return &commands.ExamFileResult{
					ID:         uuid.New(),
					ExamID:     examID,
					FileName:   in.File.Name,
					FileURL:    "https://cdn.example.com/exams/x.pdf",
					FileType:   in.File.ContentType,
					FileSize:   in.File.Size,
					Kind:       upload.KindRaw,
					UploadedAt: time.Now(),
				}, nil
			})

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
			map[string]string{"examId": examID.String()}, []httptest.FormFile{examPDF()}, s.sessionCookie(token))

		var body examFileUploadBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("อัพโหลดไฟล์สำเร็จ", body.Message)
		s.Equal(examID, body.File.ExamID)
		s.Equal(string(upload.KindRaw), body.File.ResourceType)
	})

	s.Run("error: 400 when exam id or file is missing", func() {
		_, token := s.adminToken()

		noFile := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
			map[string]string{"examId": uuid.NewString()}, nil, s.sessionCookie(token))
		noExam := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
			nil, []httptest.FormFile{examPDF()}, s.sessionCookie(token))

		httptest.AssertErrorResponse(s.T(), noFile, http.StatusBadRequest, "EXAM_FILE_REQUIRED")
		httptest.AssertErrorResponse(s.T(), noExam, http.StatusBadRequest, "EXAM_FILE_REQUIRED")
	})

	s.Run("error: 400 when the body exceeds the exam file cap", func() {
		_, token := s.adminToken()
		big := examPDF()
		big.Content = bytes.Repeat([]byte("%"), 11<<20)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
			map[string]string{"examId": uuid.NewString()}, []httptest.FormFile{big}, s.sessionCookie(token))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "FILE_TOO_LARGE")
	})

	s.Run("error: 403 for a regular user", func() {
		_, token := s.userToken()

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
			map[string]string{"examId": uuid.NewString()}, []httptest.FormFile{examPDF()}, s.sessionCookie(token))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("error: use case failures map to their reason", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectErr  string
		}{
			{name: "unknown exam", err: errs.Mark(queries.ErrExamNotFound, errs.ErrNotFound), expectCode: http.StatusNotFound, expectErr: "EXAM_NOT_FOUND"},
			{name: "zip archive", err: errs.Mark(upload.ErrInvalidFileType, errs.ErrValidation), expectCode: http.StatusBadRequest, expectErr: "INVALID_FILE_TYPE"},
			{name: "storage down", err: errs.Mark(commands.ErrUploadFailed, errs.ErrUpstream), expectCode: http.StatusBadGateway, expectErr: "UPLOAD_FAILED"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, token := s.adminToken()
				s.mockExamFileCmds.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, path,
					map[string]string{"examId": uuid.NewString()}, []httptest.FormFile{examPDF()}, s.sessionCookie(token))

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ExamFileHandlerTestSuite) TestList() {
	s.Run("success", func() {
		_, token := s.adminToken()
		examID := uuid.New()
		files := []queries.ExamFileView{{ID: uuid.New(), ExamID: examID, FileName: "a.pdf", FileURL: "https://cdn.example.com/a.pdf"}}
		s.mockExamFileQ.EXPECT().ListByExam(gomock.Any(), examID).Return(files, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/exam-files?examId="+examID.String(), nil, token)

		var body []queries.ExamFileView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("a.pdf", body[0].FileName)
	})

	s.Run("error: 400 without exam id", func() {
		_, token := s.adminToken()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/exam-files", nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "EXAM_ID_REQUIRED")
	})
}
