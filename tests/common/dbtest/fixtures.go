//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"elearning-storefront/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestPassword = "password123"

// CreateTestUser inserts an active credentials user whose password is TestPassword.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPasswordWithCost(TestPassword, bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, provider, is_active)
		VALUES ($1, $2, $3, $4, $5, 'credentials', true) ON CONFLICT (email) DO NOTHING`,
		userID, strings.Split(email, "@")[0], email, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCourse(t *testing.T, db DBLike, title string, price int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO courses (title, description, price, is_free, category_id)
		 VALUES ($1, $2, $3, $4, (SELECT id FROM categories WHERE kind = 'course' LIMIT 1)) RETURNING id`,
		title, title+" description", decimal.NewFromInt(price), price == 0).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestExam(t *testing.T, db DBLike, title string, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO exams (title, description, is_active) VALUES ($1, $2, $3) RETURNING id`,
		title, title+" description", active).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestCoupon inserts an always-valid coupon. maxRedemptions of 0 means unlimited.
func CreateTestCoupon(t *testing.T, db DBLike, code, discountType string, value int64, maxRedemptions int) uuid.UUID {
	t.Helper()

	var maxArg any
	if maxRedemptions > 0 {
		maxArg = maxRedemptions
	}
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO coupons (code, discount_type, discount_value, max_redemptions)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		code, discountType, decimal.NewFromInt(value), maxArg).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (kind, name) VALUES
		    ('course', 'คณิตศาสตร์'),
		    ('ebook', 'หนังสือเตรียมสอบ'),
		    ('exam', 'O-NET')
		ON CONFLICT (kind, name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
