//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Within snapshots every table and restores it when fn fails, so tests can
// assert that a failed command left nothing behind.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/domain/enrollment"
	"elearning-storefront/internal/domain/exam"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type Redemption struct {
	CouponID   uuid.UUID
	UserID     uuid.UUID
	OrderID    uuid.UUID
	RedeemedAt time.Time
}

type enrollmentKey struct {
	userID   uuid.UUID
	itemType catalog.ItemType
	itemID   uuid.UUID
}

type tables struct {
	users       map[uuid.UUID]user.User
	coupons     map[uuid.UUID]coupon.Coupon
	redemptions []Redemption
	orders      map[uuid.UUID]order.Order
	payments    map[uuid.UUID]order.Payment
	enrollments map[enrollmentKey]enrollment.Enrollment
	examFiles   []exam.File
}

func (t tables) clone() tables {
	return tables{
		users:       maps.Clone(t.users),
		coupons:     maps.Clone(t.coupons),
		redemptions: slices.Clone(t.redemptions),
		orders:      maps.Clone(t.orders),
		payments:    maps.Clone(t.payments),
		enrollments: maps.Clone(t.enrollments),
		examFiles:   slices.Clone(t.examFiles),
	}
}

type Store struct {
	mu       sync.Mutex
	data     tables
	items    map[uuid.UUID]catalog.Item
	exams    map[uuid.UUID]shared.ExamSnapshot
	failures map[string]error
}

func New() *Store {
	return &Store{
		data: tables{
			users:       map[uuid.UUID]user.User{},
			coupons:     map[uuid.UUID]coupon.Coupon{},
			orders:      map[uuid.UUID]order.Order{},
			payments:    map[uuid.UUID]order.Payment{},
			enrollments: map[enrollmentKey]enrollment.Enrollment{},
		},
		items:    map[uuid.UUID]catalog.Item{},
		exams:    map[uuid.UUID]shared.ExamSnapshot{},
		failures: map[string]error{},
	}
}

// Fail makes the named operation (e.g. "Payments.AttachSlip") return err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

// Seeding helpers. They bypass transactions.

func (s *Store) AddItem(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID()] = item
}

func (s *Store) AddExam(e shared.ExamSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exams[e.ID] = e
}

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID()] = *u
}

func (s *Store) AddCoupon(c *coupon.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.coupons[c.ID()] = *c
}

func (s *Store) AddOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.orders[o.ID()] = *o
}

func (s *Store) AddPayment(p *order.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.payments[p.ID()] = *p
}

// Inspection helpers. They return copies.

func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.orders))
}

func (s *Store) Order(id uuid.UUID) (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.data.orders[id]
	return o, ok
}

func (s *Store) Payments() []order.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.payments))
}

func (s *Store) Payment(id uuid.UUID) (order.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.payments[id]
	return p, ok
}

func (s *Store) Coupon(id uuid.UUID) (coupon.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data.coupons[id]
	return c, ok
}

func (s *Store) Redemptions() []Redemption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.redemptions)
}

func (s *Store) Enrollments() []enrollment.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.enrollments))
}

func (s *Store) ExamFiles() []exam.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.examFiles)
}

func (s *Store) UserByEmail(email string) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Email().Value() == email {
			return u, true
		}
	}
	return user.User{}, false
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

type memTx struct {
	s *Store
}

func (t *memTx) Users() shared.UserRepository             { return &users{t.s} }
func (t *memTx) Coupons() shared.CouponRepository         { return &coupons{t.s} }
func (t *memTx) Orders() shared.OrderRepository           { return &orders{t.s} }
func (t *memTx) Payments() shared.PaymentRepository       { return &payments{t.s} }
func (t *memTx) Enrollments() shared.EnrollmentRepository { return &enrollments{t.s} }
func (t *memTx) ExamFiles() shared.ExamFileRepository     { return &examFiles{t.s} }
func (t *memTx) Reads() shared.CommandReads               { return &reads{t.s} }

// reads assumes the caller holds s.mu.
type reads struct {
	s *Store
}

func (r *reads) Item(_ context.Context, itemType catalog.ItemType, id uuid.UUID) (catalog.Item, error) {
	item, ok := r.s.items[id]
	if !ok || item.Type() != itemType {
		return nil, infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}
	return item, nil
}

func (r *reads) ExamByID(_ context.Context, id uuid.UUID) (*shared.ExamSnapshot, error) {
	e, ok := r.s.exams[id]
	if !ok {
		return nil, infra.WrapRepoErr("exam not found", nil, infra.KindNotFound)
	}
	return &e, nil
}

func (r *reads) OrderByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &o, nil
}

func (r *reads) PaymentByOrderID(_ context.Context, orderID uuid.UUID) (*order.Payment, error) {
	for _, p := range r.s.data.payments {
		if p.OrderID() == orderID {
			return &p, nil
		}
	}
	return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

// lockedReads serves CommandReads outside a transaction.
type lockedReads struct {
	s *Store
}

func (r *lockedReads) Item(ctx context.Context, itemType catalog.ItemType, id uuid.UUID) (catalog.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{r.s}).Item(ctx, itemType, id)
}

func (r *lockedReads) ExamByID(ctx context.Context, id uuid.UUID) (*shared.ExamSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{r.s}).ExamByID(ctx, id)
}

func (r *lockedReads) OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{r.s}).OrderByID(ctx, id)
}

func (r *lockedReads) PaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*order.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&reads{r.s}).PaymentByOrderID(ctx, orderID)
}

type users struct {
	s *Store
}

func (r *users) Create(_ context.Context, u *user.User) error {
	if err := r.s.failure("Users.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.data.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.s.data.users[u.ID()] = *u
	return nil
}

func (r *users) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &u, nil
}

func (r *users) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.data.users {
		if u.Email() == email {
			return &u, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *users) FindByProviderSubject(_ context.Context, provider user.Provider, subject string) (*user.User, error) {
	for _, u := range r.s.data.users {
		if u.Provider() == provider && u.ProviderSubject() == subject {
			return &u, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *users) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	if err := r.s.failure("Users.UpdateLastLogin"); err != nil {
		return err
	}
	if _, ok := r.s.data.users[id]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

type coupons struct {
	s *Store
}

func (r *coupons) FindByCodeForUpdate(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	for _, c := range r.s.data.coupons {
		if c.Code() == code {
			return &c, nil
		}
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func (r *coupons) CountUserRedemptions(_ context.Context, couponID, userID uuid.UUID) (int, error) {
	n := 0
	for _, red := range r.s.data.redemptions {
		if red.CouponID == couponID && red.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *coupons) Redeem(_ context.Context, couponID, userID, orderID uuid.UUID, at time.Time) error {
	if err := r.s.failure("Coupons.Redeem"); err != nil {
		return err
	}
	c, ok := r.s.data.coupons[couponID]
	if !ok {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	if limit := c.MaxRedemptions(); limit != nil && c.RedemptionCount() >= *limit {
		return infra.WrapRepoErr("coupon redemption cap reached", nil, infra.KindConflict)
	}

	bumped, err := coupon.Reconstruct(coupon.Params{
		ID:                  c.ID(),
		Code:                c.Code().String(),
		Discount:            c.Discount(),
		ValidFrom:           c.ValidFrom(),
		ValidTo:             c.ValidTo(),
		MaxRedemptions:      c.MaxRedemptions(),
		PerUserLimit:        c.PerUserLimit(),
		ApplicableItemTypes: c.ApplicableItemTypes(),
		RedemptionCount:     c.RedemptionCount() + 1,
		IsActive:            c.IsActive(),
	})
	if err != nil {
		return err
	}
	r.s.data.coupons[couponID] = *bumped
	r.s.data.redemptions = append(r.s.data.redemptions, Redemption{
		CouponID:   couponID,
		UserID:     userID,
		OrderID:    orderID,
		RedeemedAt: at,
	})
	return nil
}

type orders struct {
	s *Store
}

func (r *orders) Create(_ context.Context, o *order.Order) error {
	if err := r.s.failure("Orders.Create"); err != nil {
		return err
	}
	r.s.data.orders[o.ID()] = *o
	return nil
}

func (r *orders) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &o, nil
}

func (r *orders) UpdateStatus(_ context.Context, o *order.Order, from order.Status) error {
	stored, ok := r.s.data.orders[o.ID()]
	if !ok || stored.Status() != from {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	r.s.data.orders[o.ID()] = *o
	return nil
}

type payments struct {
	s *Store
}

func (r *payments) Create(_ context.Context, p *order.Payment) error {
	if err := r.s.failure("Payments.Create"); err != nil {
		return err
	}
	r.s.data.payments[p.ID()] = *p
	return nil
}

func (r *payments) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*order.Payment, error) {
	p, ok := r.s.data.payments[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return &p, nil
}

func (r *payments) AttachSlip(_ context.Context, orderID uuid.UUID, slipURL string, at time.Time) (*order.Payment, error) {
	if err := r.s.failure("Payments.AttachSlip"); err != nil {
		return nil, err
	}
	for id, p := range r.s.data.payments {
		if p.OrderID() != orderID {
			continue
		}
		if err := p.AttachSlip(slipURL, at); err != nil {
			return nil, infra.WrapRepoErr("payment no longer accepts slips", err, infra.KindConflict)
		}
		r.s.data.payments[id] = p
		return &p, nil
	}
	return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

func (r *payments) SaveReview(_ context.Context, p *order.Payment) error {
	stored, ok := r.s.data.payments[p.ID()]
	if !ok || stored.Status() != order.PaymentAwaitingReview {
		return infra.WrapRepoErr("payment is no longer awaiting review", nil, infra.KindConflict)
	}
	r.s.data.payments[p.ID()] = *p
	return nil
}

type enrollments struct {
	s *Store
}

func (r *enrollments) Grant(_ context.Context, e *enrollment.Enrollment) (bool, error) {
	if err := r.s.failure("Enrollments.Grant"); err != nil {
		return false, err
	}
	key := enrollmentKey{userID: e.UserID(), itemType: e.ItemType(), itemID: e.ItemID()}
	if _, exists := r.s.data.enrollments[key]; exists {
		return false, nil
	}
	r.s.data.enrollments[key] = *e
	return true, nil
}

type examFiles struct {
	s *Store
}

func (r *examFiles) Create(_ context.Context, f *exam.File) error {
	if err := r.s.failure("ExamFiles.Create"); err != nil {
		return err
	}
	r.s.data.examFiles = append(r.s.data.examFiles, *f)
	return nil
}
