package shared

import (
	"context"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/domain/enrollment"
	"elearning-storefront/internal/domain/exam"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction; any error rolls everything back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside a transaction, for checks that must happen
	// before side effects such as uploads.
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Coupons() CouponRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Enrollments() EnrollmentRepository
	ExamFiles() ExamFileRepository
	Reads() CommandReads
}

// CommandReads returns NOT_FOUND repository errors for missing rows.
type CommandReads interface {
	// Item returns a published course or ebook.
	Item(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (catalog.Item, error)
	ExamByID(ctx context.Context, id uuid.UUID) (*ExamSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	PaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*order.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByProviderSubject(ctx context.Context, provider user.Provider, subject string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type CouponRepository interface {
	// FindByCodeForUpdate locks the coupon row for the rest of the transaction.
	FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	CountUserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error)
	// Redeem records one use and increments the counter; it fails with a
	// CONFLICT error when the global cap is already reached.
	Redeem(ctx context.Context, couponID, userID, orderID uuid.UUID, at time.Time) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// UpdateStatus persists o.Status() only if the stored status is still from.
	UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *order.Payment) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Payment, error)
	// AttachSlip is a compare-and-set on PENDING or AWAITING_REVIEW.
	AttachSlip(ctx context.Context, orderID uuid.UUID, slipURL string, at time.Time) (*order.Payment, error)
	// SaveReview persists an approval or rejection of an AWAITING_REVIEW payment.
	SaveReview(ctx context.Context, p *order.Payment) error
}

type EnrollmentRepository interface {
	// Grant reports false when the user already had access.
	Grant(ctx context.Context, e *enrollment.Enrollment) (bool, error)
}

type ExamFileRepository interface {
	Create(ctx context.Context, f *exam.File) error
}
