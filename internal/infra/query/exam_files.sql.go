package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createExamFile = `-- name: CreateExamFile :exec
INSERT INTO exam_files (id, exam_id, file_name, file_path, file_type, file_size, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateExamFileParams struct {
	ID         uuid.UUID
	ExamID     uuid.UUID
	FileName   string
	FilePath   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
}

func (q *Queries) CreateExamFile(ctx context.Context, db DBTX, arg CreateExamFileParams) error {
	_, err := db.Exec(ctx, createExamFile,
		arg.ID,
		arg.ExamID,
		arg.FileName,
		arg.FilePath,
		arg.FileType,
		arg.FileSize,
		arg.UploadedAt,
	)
	return err
}

const listExamFiles = `-- name: ListExamFiles :many
SELECT id, exam_id, file_name, file_path, file_type, file_size, uploaded_at
FROM exam_files
WHERE exam_id = $1
ORDER BY uploaded_at DESC
`

func (q *Queries) ListExamFiles(ctx context.Context, db DBTX, examID uuid.UUID) ([]ExamFiles, error) {
	rows, err := db.Query(ctx, listExamFiles, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ExamFiles
	for rows.Next() {
		var i ExamFiles
		if err := rows.Scan(
			&i.ID,
			&i.ExamID,
			&i.FileName,
			&i.FilePath,
			&i.FileType,
			&i.FileSize,
			&i.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
