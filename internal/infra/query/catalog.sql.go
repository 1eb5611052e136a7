package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ListFilter is shared by the catalog listings. Empty Search and an invalid
// CategoryID disable the respective predicate.
type ListFilter struct {
	CategoryID pgtype.UUID
	Search     string
	Limit      int32
	Offset     int32
}

const courseSelect = `
SELECT c.id, c.title, c.description, c.price, c.is_free, c.category_id, cat.name,
       c.cover_image_url, c.is_published, c.created_at
FROM courses c
LEFT JOIN categories cat ON cat.id = c.category_id
`

const catalogPredicate = `
  AND ($1::uuid IS NULL OR category_id = $1::uuid)
  AND ($2::text = '' OR strpos(lower(title), lower($2::text)) > 0)
`

func scanCourse(row interface{ Scan(...any) error }) (Courses, error) {
	var i Courses
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Price,
		&i.IsFree,
		&i.CategoryID,
		&i.CategoryName,
		&i.CoverImageUrl,
		&i.IsPublished,
		&i.CreatedAt,
	)
	return i, err
}

const listCourses = `-- name: ListCourses :many
SELECT * FROM (` + courseSelect + `) AS c(id, title, description, price, is_free, category_id, category_name,
       cover_image_url, is_published, created_at)
WHERE is_published` + catalogPredicate + `
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListCourses(ctx context.Context, db DBTX, arg ListFilter) ([]Courses, error) {
	rows, err := db.Query(ctx, listCourses, arg.CategoryID, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Courses
	for rows.Next() {
		i, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countCourses = `-- name: CountCourses :one
SELECT COUNT(*) FROM courses WHERE is_published` + catalogPredicate

func (q *Queries) CountCourses(ctx context.Context, db DBTX, arg ListFilter) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countCourses, arg.CategoryID, arg.Search).Scan(&count)
	return count, err
}

const getCourse = `-- name: GetCourse :one
` + courseSelect + `WHERE c.id = $1 AND c.is_published
`

func (q *Queries) GetCourse(ctx context.Context, db DBTX, id uuid.UUID) (Courses, error) {
	return scanCourse(db.QueryRow(ctx, getCourse, id))
}

const ebookSelect = `
SELECT b.id, b.title, b.author, b.description, b.price, b.discount_price, b.is_free, b.category_id,
       cat.name, b.cover_image_url, b.is_published, b.created_at
FROM ebooks b
LEFT JOIN categories cat ON cat.id = b.category_id
`

func scanEbook(row interface{ Scan(...any) error }) (Ebooks, error) {
	var i Ebooks
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Author,
		&i.Description,
		&i.Price,
		&i.DiscountPrice,
		&i.IsFree,
		&i.CategoryID,
		&i.CategoryName,
		&i.CoverImageUrl,
		&i.IsPublished,
		&i.CreatedAt,
	)
	return i, err
}

const listEbooks = `-- name: ListEbooks :many
SELECT * FROM (` + ebookSelect + `) AS b(id, title, author, description, price, discount_price, is_free,
       category_id, category_name, cover_image_url, is_published, created_at)
WHERE is_published` + catalogPredicate + `
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListEbooks(ctx context.Context, db DBTX, arg ListFilter) ([]Ebooks, error) {
	rows, err := db.Query(ctx, listEbooks, arg.CategoryID, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ebooks
	for rows.Next() {
		i, err := scanEbook(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countEbooks = `-- name: CountEbooks :one
SELECT COUNT(*) FROM ebooks WHERE is_published` + catalogPredicate

func (q *Queries) CountEbooks(ctx context.Context, db DBTX, arg ListFilter) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countEbooks, arg.CategoryID, arg.Search).Scan(&count)
	return count, err
}

const getEbook = `-- name: GetEbook :one
` + ebookSelect + `WHERE b.id = $1 AND b.is_published
`

func (q *Queries) GetEbook(ctx context.Context, db DBTX, id uuid.UUID) (Ebooks, error) {
	return scanEbook(db.QueryRow(ctx, getEbook, id))
}

const examSelect = `
SELECT e.id, e.title, e.description, e.category_id, cat.name, e.is_active, e.created_at
FROM exams e
LEFT JOIN categories cat ON cat.id = e.category_id
`

func scanExam(row interface{ Scan(...any) error }) (Exams, error) {
	var i Exams
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.CategoryID,
		&i.CategoryName,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const listExams = `-- name: ListExams :many
SELECT * FROM (` + examSelect + `) AS e(id, title, description, category_id, category_name, is_active, created_at)
WHERE is_active` + catalogPredicate + `
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

func (q *Queries) ListExams(ctx context.Context, db DBTX, arg ListFilter) ([]Exams, error) {
	rows, err := db.Query(ctx, listExams, arg.CategoryID, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Exams
	for rows.Next() {
		i, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countExams = `-- name: CountExams :one
SELECT COUNT(*) FROM exams WHERE is_active` + catalogPredicate

func (q *Queries) CountExams(ctx context.Context, db DBTX, arg ListFilter) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countExams, arg.CategoryID, arg.Search).Scan(&count)
	return count, err
}

const getExam = `-- name: GetExam :one
` + examSelect + `WHERE e.id = $1
`

// GetExam also returns inactive exams; admins attach files before publishing.
func (q *Queries) GetExam(ctx context.Context, db DBTX, id uuid.UUID) (Exams, error) {
	return scanExam(db.QueryRow(ctx, getExam, id))
}

const listCategories = `-- name: ListCategories :many
SELECT id, kind, name FROM categories
WHERE ($1::text = '' OR kind = $1::text)
ORDER BY kind, name
`

func (q *Queries) ListCategories(ctx context.Context, db DBTX, kind string) ([]Categories, error) {
	rows, err := db.Query(ctx, listCategories, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Categories
	for rows.Next() {
		var i Categories
		if err := rows.Scan(&i.ID, &i.Kind, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
