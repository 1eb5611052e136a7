package response

import (
	"time"

	"elearning-storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type ExamFileResponse struct {
	ID         uuid.UUID `json:"id"`
	ExamID     uuid.UUID `json:"examId"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Kind       string    `json:"resourceType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func FromExamFileResult(res *commands.ExamFileResult) ExamFileResponse {
	return ExamFileResponse{
		ID:         res.ID,
		ExamID:     res.ExamID,
		FileName:   res.FileName,
		FileURL:    res.FileURL,
		FileType:   res.FileType,
		FileSize:   res.FileSize,
		Kind:       string(res.Kind),
		UploadedAt: res.UploadedAt,
	}
}
