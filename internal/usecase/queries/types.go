package queries

import (
	"time"

	"elearning-storefront/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

// ListParams filters a catalog listing. Zero values mean "no filter".
type ListParams struct {
	CategoryID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// Normalize clamps Page to >= 1 and Limit to [1, MaxPageLimit].
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(p ListParams, total int64) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
	Name string    `json:"name"`
}

type CourseView struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	IsFree        bool            `json:"isFree"`
	Category      *CategoryRef    `json:"category,omitempty"`
	CoverImageURL string          `json:"coverImageUrl"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type EbookView struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Author        string           `json:"author"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	IsFree        bool             `json:"isFree"`
	Category      *CategoryRef     `json:"category,omitempty"`
	CoverImageURL string           `json:"coverImageUrl"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type ExamFileView struct {
	ID         uuid.UUID `json:"id"`
	ExamID     uuid.UUID `json:"examId"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type ExamView struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    *CategoryRef   `json:"category,omitempty"`
	IsActive    bool           `json:"isActive"`
	Files       []ExamFileView `json:"files,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type PaymentView struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	SlipURL   string    `json:"slipUrl,omitempty"`
}

type OrderView struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"userId"`
	ItemType        string                 `json:"itemType"`
	ItemID          uuid.UUID              `json:"itemId"`
	ItemTitle       string                 `json:"itemTitle"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	Discount        decimal.Decimal        `json:"discount"`
	Total           decimal.Decimal        `json:"total"`
	Status          string                 `json:"status"`
	ShippingAddress *order.ShippingAddress `json:"shippingAddress,omitempty"`
	Payment         *PaymentView           `json:"payment,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type EnrollmentView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	ItemType      string     `json:"itemType"`
	ItemID        uuid.UUID  `json:"itemId"`
	ItemTitle     string     `json:"itemTitle"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	OrderID       *uuid.UUID `json:"orderId,omitempty"`
	GrantedAt     time.Time  `json:"grantedAt"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Provider string    `json:"provider"`
	IsActive bool      `json:"isActive"`
}
