package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Users struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    pgtype.Text
	Role            string
	Provider        string
	ProviderSubject pgtype.Text
	IsActive        bool
	LastLogin       pgtype.Timestamptz
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Categories struct {
	ID   uuid.UUID
	Kind string
	Name string
}

type Courses struct {
	ID            uuid.UUID
	Title         string
	Description   pgtype.Text
	Price         decimal.Decimal
	IsFree        bool
	CategoryID    pgtype.UUID
	CategoryName  pgtype.Text
	CoverImageUrl pgtype.Text
	IsPublished   bool
	CreatedAt     time.Time
}

type Ebooks struct {
	ID            uuid.UUID
	Title         string
	Author        pgtype.Text
	Description   pgtype.Text
	Price         decimal.Decimal
	DiscountPrice decimal.NullDecimal
	IsFree        bool
	CategoryID    pgtype.UUID
	CategoryName  pgtype.Text
	CoverImageUrl pgtype.Text
	IsPublished   bool
	CreatedAt     time.Time
}

type Exams struct {
	ID           uuid.UUID
	Title        string
	Description  pgtype.Text
	CategoryID   pgtype.UUID
	CategoryName pgtype.Text
	IsActive     bool
	CreatedAt    time.Time
}

type ExamFiles struct {
	ID         uuid.UUID
	ExamID     uuid.UUID
	FileName   string
	FilePath   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
}

type Coupons struct {
	ID                  uuid.UUID
	Code                string
	DiscountType        string
	DiscountValue       decimal.Decimal
	ValidFrom           pgtype.Timestamptz
	ValidTo             pgtype.Timestamptz
	MaxRedemptions      pgtype.Int4
	PerUserLimit        pgtype.Int4
	ApplicableItemTypes []string
	RedemptionCount     int32
	IsActive            bool
}

type Orders struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ItemType        string
	ItemID          uuid.UUID
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	CouponID        pgtype.UUID
	Status          string
	ShippingAddress []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Payments struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Reference  string
	Amount     decimal.Decimal
	Status     string
	SlipUrl    pgtype.Text
	ReviewedBy pgtype.UUID
	ReviewedAt pgtype.Timestamptz
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Enrollments struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ItemType  string
	ItemID    uuid.UUID
	OrderID   pgtype.UUID
	GrantedAt time.Time
}
