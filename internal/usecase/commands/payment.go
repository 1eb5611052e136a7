package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"elearning-storefront/internal/domain/enrollment"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/queries"
	"elearning-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidUpload      = errs.New("upload rejected")
	ErrUploadFailed       = errs.New("media upload failed")
	ErrSlipNotAccepted    = errs.New("order does not accept a slip")
	ErrPaymentNotFound    = errs.New("payment not found")
	ErrPaymentTransition  = errs.New("payment cannot be reviewed in its current status")
	ErrReviewRequiresRole = errs.New("payment review requires an admin")
)

const slipFolder = "payment-slips"

// SlipContract names the form a slip was submitted from.
type SlipContract string

const (
	SlipFromCheckout SlipContract = "checkout"
	SlipFromOrders   SlipContract = "orders"
)

// UploadSettings holds one policy per upload contract.
type UploadSettings struct {
	CheckoutSlip upload.Policy
	OrderSlip    upload.Policy
	ExamFile     upload.Policy
	Timeout      time.Duration
}

func NewUploadSettings(cfg config.UploadConfig, timeout time.Duration) UploadSettings {
	return UploadSettings{
		CheckoutSlip: upload.CheckoutSlipPolicy(cfg.CheckoutSlipMaxBytes),
		OrderSlip:    upload.OrderSlipPolicy(cfg.OrderSlipMaxBytes),
		ExamFile:     upload.ExamFilePolicy(cfg.ExamFileMaxBytes),
		Timeout:      timeout,
	}
}

func (s UploadSettings) slipPolicy(contract SlipContract) upload.Policy {
	if contract == SlipFromCheckout {
		return s.CheckoutSlip
	}
	return s.OrderSlip
}

// FileInput is a multipart file already opened by the handler.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadSlipInput struct {
	OrderID  uuid.UUID
	Contract SlipContract
	File     FileInput
}

type SlipResult struct {
	OrderID   uuid.UUID
	PaymentID uuid.UUID
	SlipURL   string
	Status    order.PaymentStatus
}

type ReviewResult struct {
	PaymentID   uuid.UUID
	OrderID     uuid.UUID
	Status      order.PaymentStatus
	OrderStatus order.Status
}

type PaymentCommands interface {
	UploadSlip(ctx context.Context, sess session.Session, in UploadSlipInput) (*SlipResult, error)
	Approve(ctx context.Context, sess session.Session, paymentID uuid.UUID) (*ReviewResult, error)
	Reject(ctx context.Context, sess session.Session, paymentID uuid.UUID) (*ReviewResult, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	store    shared.MediaStore
	settings UploadSettings
	clock    clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, store shared.MediaStore, settings UploadSettings, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		store:    store,
		settings: settings,
		clock:    clk,
	}
}

func (c *paymentCommandsImpl) UploadSlip(ctx context.Context, sess session.Session, in UploadSlipInput) (*SlipResult, error) {
	policy := c.settings.slipPolicy(in.Contract)
	if _, err := policy.Check(in.File.ContentType, in.File.Size); err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidUpload), errs.ErrValidation)
	}

	if err := c.checkSlipTarget(ctx, sess, in.OrderID); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	key := upload.ObjectKey(slipFolder, in.OrderID.String(), in.File.Name, now)

	stored, err := uploadWithTimeout(ctx, c.store, c.settings.Timeout, shared.UploadRequest{
		Key:          key,
		Reader:       in.File.Reader,
		ContentType:  upload.NormalizeContentType(in.File.ContentType),
		Size:         in.File.Size,
		CacheControl: cacheControlFor(upload.KindImage),
		Metadata: map[string]string{
			"order-id": in.OrderID.String(),
			"contract": string(in.Contract),
		},
	})
	if err != nil {
		return nil, err
	}

	var p *order.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, attachErr := tx.Payments().AttachSlip(ctx, in.OrderID, stored.URL, now)
		if attachErr != nil {
			if infra.IsKind(attachErr, infra.KindConflict) || infra.IsKind(attachErr, infra.KindNotFound) {
				return errs.Mark(ErrSlipNotAccepted, errs.ErrConflict)
			}
			return attachErr
		}
		p = updated
		return nil
	})
	if err != nil {
		discardObject(ctx, c.store, stored.Key)
		return nil, err
	}

	slog.Info("payment slip uploaded",
		"order_id", in.OrderID,
		"payment_id", p.ID(),
		"contract", string(in.Contract))

	return &SlipResult{
		OrderID:   in.OrderID,
		PaymentID: p.ID(),
		SlipURL:   stored.URL,
		Status:    p.Status(),
	}, nil
}

// checkSlipTarget runs before the upload so rejected requests leave no object behind.
func (c *paymentCommandsImpl) checkSlipTarget(ctx context.Context, sess session.Session, orderID uuid.UUID) error {
	reads := c.uow.CommandReads()

	o, err := reads.OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(queries.ErrOrderNotFound, errs.ErrNotFound)
		}
		return err
	}
	if o.UserID() != sess.UserID {
		return errs.Mark(queries.ErrOrderAccess, errs.ErrForbidden)
	}

	p, err := reads.PaymentByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(ErrSlipNotAccepted, errs.ErrConflict)
		}
		return err
	}
	if !p.Status().AcceptsSlip() {
		return errs.Mark(ErrSlipNotAccepted, errs.ErrConflict)
	}
	return nil
}

func (c *paymentCommandsImpl) Approve(ctx context.Context, sess session.Session, paymentID uuid.UUID) (*ReviewResult, error) {
	return c.review(ctx, sess, paymentID, true)
}

func (c *paymentCommandsImpl) Reject(ctx context.Context, sess session.Session, paymentID uuid.UUID) (*ReviewResult, error) {
	return c.review(ctx, sess, paymentID, false)
}

func (c *paymentCommandsImpl) review(ctx context.Context, sess session.Session, paymentID uuid.UUID, approve bool) (*ReviewResult, error) {
	if !sess.IsAdmin() {
		return nil, errs.Mark(ErrReviewRequiresRole, errs.ErrForbidden)
	}

	var result *ReviewResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		p, err := tx.Payments().FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrPaymentNotFound, errs.ErrNotFound)
			}
			return err
		}

		o, err := tx.Orders().FindByIDForUpdate(ctx, p.OrderID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(queries.ErrOrderNotFound, errs.ErrNotFound)
			}
			return err
		}
		from := o.Status()

		if approve {
			err = p.Approve(sess.UserID, now)
		} else {
			err = p.Reject(sess.UserID, now)
		}
		if err != nil {
			return errs.Mark(errs.Mark(err, ErrPaymentTransition), errs.ErrConflict)
		}
		if err := tx.Payments().SaveReview(ctx, p); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(ErrPaymentTransition, errs.ErrConflict)
			}
			return err
		}

		if approve {
			err = o.MarkPaid(now)
		} else {
			err = o.Cancel(now)
		}
		if err != nil {
			return errs.Mark(errs.Mark(err, ErrPaymentTransition), errs.ErrConflict)
		}
		if err := tx.Orders().UpdateStatus(ctx, o, from); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(ErrPaymentTransition, errs.ErrConflict)
			}
			return err
		}

		if approve {
			orderID := o.ID()
			if _, err := tx.Enrollments().Grant(ctx, enrollment.Grant(o.UserID(), o.ItemType(), o.ItemID(), &orderID, now)); err != nil {
				return err
			}
		}

		result = &ReviewResult{
			PaymentID:   p.ID(),
			OrderID:     o.ID(),
			Status:      p.Status(),
			OrderStatus: o.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment reviewed",
		"payment_id", result.PaymentID,
		"order_id", result.OrderID,
		"status", string(result.Status),
		"reviewer", sess.UserID)
	return result, nil
}

func uploadWithTimeout(ctx context.Context, store shared.MediaStore, timeout time.Duration, req shared.UploadRequest) (*shared.UploadResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	stored, err := store.Upload(ctx, req)
	if err != nil {
		slog.Error("media upload failed", "key", req.Key, "error", err.Error())
		return nil, errs.Mark(errs.Mark(err, ErrUploadFailed), errs.ErrUpstream)
	}
	return stored, nil
}

// discardObject removes an object whose database record could not be written.
func discardObject(ctx context.Context, store shared.MediaStore, key string) {
	if err := store.Delete(context.WithoutCancel(ctx), key); err != nil {
		slog.Warn("failed to delete orphaned object", "key", key, "error", err.Error())
	}
}

func cacheControlFor(kind upload.Kind) string {
	if kind == upload.KindImage {
		return "public, max-age=31536000, immutable"
	}
	return "private, max-age=0, no-cache"
}
