package readstore

import (
	"context"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	ListCourses(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Courses, error)
	CountCourses(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error)
	GetCourse(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Courses, error)
	ListEbooks(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Ebooks, error)
	CountEbooks(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error)
	GetEbook(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Ebooks, error)
	ListExams(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Exams, error)
	CountExams(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error)
	GetExam(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Exams, error)
	ListExamFiles(ctx context.Context, db query.DBTX, examID uuid.UUID) ([]query.ExamFiles, error)
	ListCategories(ctx context.Context, db query.DBTX, kind string) ([]query.Categories, error)
}

// CatalogReadStore serves catalog listings. Built on a transaction it also
// prices items for order creation.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      query.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db query.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ListCourses(ctx context.Context, p queries.ListParams) ([]queries.CourseView, int64, error) {
	filter := toListFilter(p)
	rows, err := r.queries.ListCourses(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list courses", err)
	}
	total, err := r.queries.CountCourses(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count courses", err)
	}
	return mapRows(rows, toCourseView), total, nil
}

func (r *CatalogReadStore) GetCourse(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	row, err := r.queries.GetCourse(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("course", err)
	}
	v := toCourseView(row)
	return &v, nil
}

func (r *CatalogReadStore) ListEbooks(ctx context.Context, p queries.ListParams) ([]queries.EbookView, int64, error) {
	filter := toListFilter(p)
	rows, err := r.queries.ListEbooks(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list ebooks", err)
	}
	total, err := r.queries.CountEbooks(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count ebooks", err)
	}
	return mapRows(rows, toEbookView), total, nil
}

func (r *CatalogReadStore) GetEbook(ctx context.Context, id uuid.UUID) (*queries.EbookView, error) {
	row, err := r.queries.GetEbook(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("ebook", err)
	}
	v := toEbookView(row)
	return &v, nil
}

func (r *CatalogReadStore) ListExams(ctx context.Context, p queries.ListParams) ([]queries.ExamView, int64, error) {
	filter := toListFilter(p)
	rows, err := r.queries.ListExams(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list exams", err)
	}
	total, err := r.queries.CountExams(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count exams", err)
	}
	return mapRows(rows, toExamView), total, nil
}

func (r *CatalogReadStore) GetExam(ctx context.Context, id uuid.UUID) (*queries.ExamView, error) {
	row, err := r.queries.GetExam(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("exam", err)
	}
	v := toExamView(row)
	return &v, nil
}

func (r *CatalogReadStore) ListExamFiles(ctx context.Context, examID uuid.UUID) ([]queries.ExamFileView, error) {
	rows, err := r.queries.ListExamFiles(ctx, r.db, examID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exam files", err)
	}
	return mapRows(rows, toExamFileView), nil
}

func (r *CatalogReadStore) ListCategories(ctx context.Context, kind string) ([]queries.CategoryView, error) {
	rows, err := r.queries.ListCategories(ctx, r.db, kind)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	return mapRows(rows, func(c query.Categories) queries.CategoryView {
		return queries.CategoryView{ID: c.ID, Kind: c.Kind, Name: c.Name}
	}), nil
}

func (r *CatalogReadStore) FindItem(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (catalog.Item, error) {
	switch itemType {
	case catalog.ItemTypeCourse:
		row, err := r.queries.GetCourse(ctx, r.db, id)
		if err != nil {
			return nil, lookupErr("course", err)
		}
		item, err := converter.CourseToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert course row", err)
		}
		return item, nil
	case catalog.ItemTypeEbook:
		row, err := r.queries.GetEbook(ctx, r.db, id)
		if err != nil {
			return nil, lookupErr("ebook", err)
		}
		item, err := converter.EbookToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert ebook row", err)
		}
		return item, nil
	default:
		return nil, infra.WrapRepoErr("unknown item type "+itemType.String(), nil, infra.KindNotFound)
	}
}

func toListFilter(p queries.ListParams) query.ListFilter {
	return query.ListFilter{
		CategoryID: pgconv.UUIDPtrToPgtype(p.CategoryID),
		Search:     p.Search,
		Limit:      int32(p.Limit),
		Offset:     int32(p.Offset()),
	}
}

func lookupErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity, err)
}

func mapRows[R, V any](rows []R, fn func(R) V) []V {
	out := make([]V, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}

func categoryRef(id pgtype.UUID, name pgtype.Text) *queries.CategoryRef {
	if !id.Valid {
		return nil
	}
	return &queries.CategoryRef{ID: uuid.UUID(id.Bytes), Name: pgconv.StringFromPgtype(name)}
}

func toCourseView(row query.Courses) queries.CourseView {
	return queries.CourseView{
		ID:            row.ID,
		Title:         row.Title,
		Description:   pgconv.StringFromPgtype(row.Description),
		Price:         row.Price,
		IsFree:        row.IsFree,
		Category:      categoryRef(row.CategoryID, row.CategoryName),
		CoverImageURL: pgconv.StringFromPgtype(row.CoverImageUrl),
		CreatedAt:     row.CreatedAt,
	}
}

func toEbookView(row query.Ebooks) queries.EbookView {
	v := queries.EbookView{
		ID:            row.ID,
		Title:         row.Title,
		Author:        pgconv.StringFromPgtype(row.Author),
		Description:   pgconv.StringFromPgtype(row.Description),
		Price:         row.Price,
		IsFree:        row.IsFree,
		Category:      categoryRef(row.CategoryID, row.CategoryName),
		CoverImageURL: pgconv.StringFromPgtype(row.CoverImageUrl),
		CreatedAt:     row.CreatedAt,
	}
	if row.DiscountPrice.Valid {
		dp := row.DiscountPrice.Decimal
		v.DiscountPrice = &dp
	}
	return v
}

func toExamView(row query.Exams) queries.ExamView {
	return queries.ExamView{
		ID:          row.ID,
		Title:       row.Title,
		Description: pgconv.StringFromPgtype(row.Description),
		Category:    categoryRef(row.CategoryID, row.CategoryName),
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}

func toExamFileView(row query.ExamFiles) queries.ExamFileView {
	return queries.ExamFileView{
		ID:         row.ID,
		ExamID:     row.ExamID,
		FileName:   row.FileName,
		FilePath:   row.FilePath,
		FileType:   row.FileType,
		FileSize:   row.FileSize,
		UploadedAt: row.UploadedAt,
	}
}
