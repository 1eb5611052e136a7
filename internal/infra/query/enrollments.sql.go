package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const grantEnrollment = `-- name: GrantEnrollment :execrows
INSERT INTO enrollments (id, user_id, item_type, item_id, order_id, granted_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, item_type, item_id) DO NOTHING
`

type GrantEnrollmentParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ItemType  string
	ItemID    uuid.UUID
	OrderID   pgtype.UUID
	GrantedAt time.Time
}

// GrantEnrollment returns 0 when the user already had access.
func (q *Queries) GrantEnrollment(ctx context.Context, db DBTX, arg GrantEnrollmentParams) (int64, error) {
	result, err := db.Exec(ctx, grantEnrollment,
		arg.ID,
		arg.UserID,
		arg.ItemType,
		arg.ItemID,
		arg.OrderID,
		arg.GrantedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// EnrollmentWithItem carries the display fields of the enrolled course or ebook.
type EnrollmentWithItem struct {
	Enrollments
	ItemTitle     pgtype.Text
	CoverImageUrl pgtype.Text
}

const enrollmentSelect = `
SELECT e.id, e.user_id, e.item_type, e.item_id, e.order_id, e.granted_at,
       COALESCE(c.title, b.title), COALESCE(c.cover_image_url, b.cover_image_url)
FROM enrollments e
LEFT JOIN courses c ON e.item_type = 'course' AND c.id = e.item_id
LEFT JOIN ebooks b ON e.item_type = 'ebook' AND b.id = e.item_id
`

func scanEnrollment(row interface{ Scan(...any) error }) (EnrollmentWithItem, error) {
	var i EnrollmentWithItem
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ItemType,
		&i.ItemID,
		&i.OrderID,
		&i.GrantedAt,
		&i.ItemTitle,
		&i.CoverImageUrl,
	)
	return i, err
}

const listEnrollmentsByUser = `-- name: ListEnrollmentsByUser :many
` + enrollmentSelect + `WHERE e.user_id = $1 AND ($2::text = '' OR e.item_type = $2::text)
ORDER BY e.granted_at DESC
`

func (q *Queries) ListEnrollmentsByUser(ctx context.Context, db DBTX, userID uuid.UUID, itemType string) ([]EnrollmentWithItem, error) {
	rows, err := db.Query(ctx, listEnrollmentsByUser, userID, itemType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EnrollmentWithItem
	for rows.Next() {
		i, err := scanEnrollment(rows)
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

const getEnrollment = `-- name: GetEnrollment :one
` + enrollmentSelect + `WHERE e.user_id = $1 AND e.item_type = $2 AND e.item_id = $3
`

func (q *Queries) GetEnrollment(ctx context.Context, db DBTX, userID uuid.UUID, itemType string, itemID uuid.UUID) (EnrollmentWithItem, error) {
	return scanEnrollment(db.QueryRow(ctx, getEnrollment, userID, itemType, itemID))
}
