package exam

import (
	"errors"
	"strings"
	"time"

	"elearning-storefront/internal/domain/upload"

	"github.com/google/uuid"
)

var ErrInvalidExamFile = errors.New("exam file requires a name and a stored path")

// File is an attachment stored on the media host. Files are append-only.
type File struct {
	id         uuid.UUID
	examID     uuid.UUID
	fileName   string
	filePath   string
	fileType   string
	fileSize   int64
	kind       upload.Kind
	uploadedAt time.Time
}

func NewFile(examID uuid.UUID, fileName, filePath, fileType string, fileSize int64, kind upload.Kind, now time.Time) (*File, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" || filePath == "" || fileSize <= 0 {
		return nil, ErrInvalidExamFile
	}
	return &File{
		id:         uuid.New(),
		examID:     examID,
		fileName:   fileName,
		filePath:   filePath,
		fileType:   upload.NormalizeContentType(fileType),
		fileSize:   fileSize,
		kind:       kind,
		uploadedAt: now,
	}, nil
}

func (f *File) ID() uuid.UUID         { return f.id }
func (f *File) ExamID() uuid.UUID     { return f.examID }
func (f *File) FileName() string      { return f.fileName }
func (f *File) FilePath() string      { return f.filePath }
func (f *File) FileType() string      { return f.fileType }
func (f *File) FileSize() int64       { return f.fileSize }
func (f *File) Kind() upload.Kind     { return f.kind }
func (f *File) UploadedAt() time.Time { return f.uploadedAt }

// Folder is where exam attachments live on the media host.
const Folder = "exams"
