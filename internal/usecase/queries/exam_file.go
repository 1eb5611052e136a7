package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type ExamFileQueries interface {
	ListByExam(ctx context.Context, examID uuid.UUID) ([]ExamFileView, error)
}

type examFileQueriesImpl struct {
	store   CatalogReadStore
	baseURL string
}

func NewExamFileQueries(store CatalogReadStore, baseURL string) ExamFileQueries {
	return &examFileQueriesImpl{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (q *examFileQueriesImpl) ListByExam(ctx context.Context, examID uuid.UUID) ([]ExamFileView, error) {
	if _, err := q.store.GetExam(ctx, examID); err != nil {
		return nil, notFoundAs(err, ErrExamNotFound)
	}
	files, err := q.store.ListExamFiles(ctx, examID)
	if err != nil {
		return nil, err
	}
	return withFileURLs(files, q.baseURL), nil
}
