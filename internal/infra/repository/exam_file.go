package repository

import (
	"context"

	"elearning-storefront/internal/domain/exam"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"
)

type ExamFileWriteQueries interface {
	CreateExamFile(ctx context.Context, db query.DBTX, arg query.CreateExamFileParams) error
}

type ExamFileRepository struct {
	queries ExamFileWriteQueries
	db      query.DBTX
}

func NewExamFileRepository(queries ExamFileWriteQueries, db query.DBTX) *ExamFileRepository {
	return &ExamFileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExamFileRepository) Create(ctx context.Context, f *exam.File) error {
	err := r.queries.CreateExamFile(ctx, r.db, query.CreateExamFileParams{
		ID:         f.ID(),
		ExamID:     f.ExamID(),
		FileName:   f.FileName(),
		FilePath:   f.FilePath(),
		FileType:   f.FileType(),
		FileSize:   f.FileSize(),
		UploadedAt: f.UploadedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create exam file", err)
	}
	return nil
}
