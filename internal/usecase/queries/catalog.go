package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queries

import (
	"context"
	"strings"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound      = errs.New("course not found")
	ErrEbookNotFound       = errs.New("ebook not found")
	ErrExamNotFound        = errs.New("exam not found")
	ErrItemNotFound        = errs.New("catalog item not found")
	ErrInvalidCategoryKind = errs.New("invalid category kind")
)

type CatalogReadStore interface {
	ListCourses(ctx context.Context, p ListParams) ([]CourseView, int64, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*CourseView, error)
	ListEbooks(ctx context.Context, p ListParams) ([]EbookView, int64, error)
	GetEbook(ctx context.Context, id uuid.UUID) (*EbookView, error)
	ListExams(ctx context.Context, p ListParams) ([]ExamView, int64, error)
	// GetExam returns inactive exams too, without files.
	GetExam(ctx context.Context, id uuid.UUID) (*ExamView, error)
	ListExamFiles(ctx context.Context, examID uuid.UUID) ([]ExamFileView, error)
	ListCategories(ctx context.Context, kind string) ([]CategoryView, error)
	// FindItem returns a published course or ebook as a priced catalog item.
	FindItem(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (catalog.Item, error)
}

type CatalogQueries interface {
	ListCourses(ctx context.Context, p ListParams) (*Page[CourseView], error)
	GetCourse(ctx context.Context, id uuid.UUID) (*CourseView, error)
	ListEbooks(ctx context.Context, p ListParams) (*Page[EbookView], error)
	GetEbook(ctx context.Context, id uuid.UUID) (*EbookView, error)
	ListExams(ctx context.Context, p ListParams) (*Page[ExamView], error)
	GetExam(ctx context.Context, id uuid.UUID) (*ExamView, error)
	ListCategories(ctx context.Context, kind string) ([]CategoryView, error)
}

type catalogQueriesImpl struct {
	store   CatalogReadStore
	baseURL string
}

// NewCatalogQueries resolves relative exam file paths against baseURL.
func NewCatalogQueries(store CatalogReadStore, baseURL string) CatalogQueries {
	return &catalogQueriesImpl{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (q *catalogQueriesImpl) ListCourses(ctx context.Context, p ListParams) (*Page[CourseView], error) {
	return list(ctx, p, q.store.ListCourses)
}

func (q *catalogQueriesImpl) GetCourse(ctx context.Context, id uuid.UUID) (*CourseView, error) {
	v, err := q.store.GetCourse(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCourseNotFound)
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListEbooks(ctx context.Context, p ListParams) (*Page[EbookView], error) {
	return list(ctx, p, q.store.ListEbooks)
}

func (q *catalogQueriesImpl) GetEbook(ctx context.Context, id uuid.UUID) (*EbookView, error) {
	v, err := q.store.GetEbook(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrEbookNotFound)
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListExams(ctx context.Context, p ListParams) (*Page[ExamView], error) {
	return list(ctx, p, q.store.ListExams)
}

func (q *catalogQueriesImpl) GetExam(ctx context.Context, id uuid.UUID) (*ExamView, error) {
	v, err := q.store.GetExam(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrExamNotFound)
	}
	if !v.IsActive {
		return nil, errs.Mark(ErrExamNotFound, errs.ErrNotFound)
	}

	files, err := q.store.ListExamFiles(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Files = withFileURLs(files, q.baseURL)
	return v, nil
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context, kind string) ([]CategoryView, error) {
	if kind != "" && !catalog.CategoryKind(kind).IsValid() {
		return nil, errs.Mark(ErrInvalidCategoryKind, errs.ErrValidation)
	}
	return q.store.ListCategories(ctx, kind)
}

func list[T any](ctx context.Context, p ListParams, fetch func(context.Context, ListParams) ([]T, int64, error)) (*Page[T], error) {
	p = p.Normalize()
	p.Search = strings.TrimSpace(p.Search)

	items, total, err := fetch(ctx, p)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Pagination: NewPagination(p, total)}, nil
}

// withFileURLs makes each file URL absolute; hosted files already are.
func withFileURLs(files []ExamFileView, baseURL string) []ExamFileView {
	out := make([]ExamFileView, len(files))
	for i, f := range files {
		f.FileURL = f.FilePath
		if !strings.HasPrefix(f.FilePath, "http://") && !strings.HasPrefix(f.FilePath, "https://") {
			f.FileURL = baseURL + "/" + strings.TrimLeft(f.FilePath, "/")
		}
		out[i] = f
	}
	return out
}

// notFoundAs replaces a NOT_FOUND repository error with sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(sentinel, errs.ErrNotFound)
	}
	return err
}
