package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commands

import (
	"context"
	"log/slog"
	"time"

	"elearning-storefront/internal/domain/exam"
	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/queries"
	"elearning-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrExamUploadRequiresRole = errs.New("exam file upload requires an admin")

type UploadExamFileInput struct {
	ExamID uuid.UUID
	File   FileInput
}

type ExamFileResult struct {
	ID         uuid.UUID
	ExamID     uuid.UUID
	FileName   string
	FileURL    string
	FileType   string
	FileSize   int64
	Kind       upload.Kind
	UploadedAt time.Time
}

type ExamFileCommands interface {
	Upload(ctx context.Context, sess session.Session, in UploadExamFileInput) (*ExamFileResult, error)
}

type examFileCommandsImpl struct {
	uow      shared.UnitOfWork
	store    shared.MediaStore
	settings UploadSettings
	clock    clock.Clock
}

func NewExamFileCommands(uow shared.UnitOfWork, store shared.MediaStore, settings UploadSettings, clk clock.Clock) ExamFileCommands {
	return &examFileCommandsImpl{
		uow:      uow,
		store:    store,
		settings: settings,
		clock:    clk,
	}
}

func (c *examFileCommandsImpl) Upload(ctx context.Context, sess session.Session, in UploadExamFileInput) (*ExamFileResult, error) {
	if !sess.IsAdmin() {
		return nil, errs.Mark(ErrExamUploadRequiresRole, errs.ErrForbidden)
	}

	kind, err := c.settings.ExamFile.Check(in.File.ContentType, in.File.Size)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidUpload), errs.ErrValidation)
	}

	// Inactive exams still accept files so they can be prepared before launch.
	if _, err := c.uow.CommandReads().ExamByID(ctx, in.ExamID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(queries.ErrExamNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	now := c.clock.Now()
	contentType := upload.NormalizeContentType(in.File.ContentType)

	stored, err := uploadWithTimeout(ctx, c.store, c.settings.Timeout, shared.UploadRequest{
		Key:          upload.ObjectKey(exam.Folder, in.ExamID.String(), in.File.Name, now),
		Reader:       in.File.Reader,
		ContentType:  contentType,
		Size:         in.File.Size,
		CacheControl: cacheControlFor(kind),
		Metadata: map[string]string{
			"exam-id":       in.ExamID.String(),
			"resource-type": string(kind),
		},
	})
	if err != nil {
		return nil, err
	}

	f, err := exam.NewFile(in.ExamID, in.File.Name, stored.URL, contentType, in.File.Size, kind, now)
	if err != nil {
		discardObject(ctx, c.store, stored.Key)
		return nil, errs.Mark(errs.Mark(err, ErrInvalidUpload), errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ExamFiles().Create(ctx, f)
	})
	if err != nil {
		discardObject(ctx, c.store, stored.Key)
		return nil, err
	}

	slog.Info("exam file uploaded",
		"exam_id", in.ExamID,
		"file_id", f.ID(),
		"kind", string(kind),
		"size", in.File.Size)

	return &ExamFileResult{
		ID:         f.ID(),
		ExamID:     f.ExamID(),
		FileName:   f.FileName(),
		FileURL:    f.FilePath(),
		FileType:   f.FileType(),
		FileSize:   f.FileSize(),
		Kind:       f.Kind(),
		UploadedAt: f.UploadedAt(),
	}, nil
}
