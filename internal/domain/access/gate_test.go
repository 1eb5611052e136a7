//go:build unit

package access_test

import (
	"net/http"
	"net/url"
	"testing"

	"elearning-storefront/internal/domain/access"
	"elearning-storefront/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		req     access.Request
		outcome access.Outcome
		status  int
		message string
		where   string
	}{
		{name: "public catalog page", req: access.Request{Path: "/courses"}, outcome: access.Allow},
		{name: "public catalog api", req: access.Request{Path: "/api/courses/123"}, outcome: access.Allow},
		{name: "similar prefix is not gated", req: access.Request{Path: "/ordersx"}, outcome: access.Allow},
		{name: "orders page with session", req: access.Request{Path: "/orders", HasSession: true, Role: user.RoleUser}, outcome: access.Allow},
		{name: "my-courses subpage without session", req: access.Request{Path: "/my-courses/abc", OriginalURL: "http://shop.test/my-courses/abc"}, outcome: access.Redirect},
		{name: "orders api without session", req: access.Request{Path: "/api/orders"}, outcome: access.Deny, status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "coupon api without session", req: access.Request{Path: "/api/coupons/validate"}, outcome: access.Deny, status: http.StatusUnauthorized},
		{name: "admin api without session", req: access.Request{Path: "/api/admin/exam-files"}, outcome: access.Deny, status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "admin api as user", req: access.Request{Path: "/api/admin/exam-files", HasSession: true, Role: user.RoleUser}, outcome: access.Deny, status: http.StatusForbidden, message: "Forbidden"},
		{name: "admin api as admin", req: access.Request{Path: "/api/admin/exam-files", HasSession: true, Role: user.RoleAdmin}, outcome: access.Allow},
		{name: "admin page as user goes home", req: access.Request{Path: "/admin/orders", HasSession: true, Role: user.RoleUser}, outcome: access.Redirect, where: "/"},
		{name: "admin page as admin", req: access.Request{Path: "/admin", HasSession: true, Role: user.RoleAdmin}, outcome: access.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := access.Evaluate(tt.req)
			assert.Equal(t, tt.outcome, got.Outcome)
			if tt.status != 0 {
				assert.Equal(t, tt.status, got.Status)
			}
			if tt.message != "" {
				assert.Equal(t, tt.message, got.Message)
			}
			if tt.where != "" {
				assert.Equal(t, tt.where, got.Location)
			}
		})
	}
}

func TestEvaluate_CheckoutRedirectKeepsCallback(t *testing.T) {
	original := "https://shop.test/checkout/7b0d6c1e-5f7a-4c55-9a57-1b2f0c1d9e11?coupon=SAVE10"
	got := access.Evaluate(access.Request{
		Path:        "/checkout/7b0d6c1e-5f7a-4c55-9a57-1b2f0c1d9e11",
		OriginalURL: original,
	})

	require.Equal(t, access.Redirect, got.Outcome)
	u, err := url.Parse(got.Location)
	require.NoError(t, err)
	assert.Equal(t, access.LoginPath, u.Path)
	assert.Equal(t, original, u.Query().Get("callbackUrl"))
	assert.Equal(t, access.MsgLoginRequired, u.Query().Get("msg"))
}

func TestEvaluate_AdminPageRedirectHasNoMessage(t *testing.T) {
	got := access.Evaluate(access.Request{Path: "/admin/exams", OriginalURL: "https://shop.test/admin/exams"})

	require.Equal(t, access.Redirect, got.Outcome)
	u, err := url.Parse(got.Location)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.test/admin/exams", u.Query().Get("callbackUrl"))
	assert.Empty(t, u.Query().Get("msg"))
}

func TestRequiresSession(t *testing.T) {
	assert.True(t, access.RequiresSession("/checkout/abc"))
	assert.True(t, access.RequiresSession("/api/admin/payments/1/approve"))
	assert.False(t, access.RequiresSession("/api/ebooks"))
	assert.False(t, access.RequiresSession("/health"))
}
