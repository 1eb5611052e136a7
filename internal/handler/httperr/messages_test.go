//go:build unit

package httperr

import (
	"net/http"
	"testing"

	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/password"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Mapping
	}{
		{
			name: "coupon reason wins over the checkout wrapper",
			err:  errs.Mark(errs.Mark(coupon.ErrExpired, commands.ErrCouponInvalid), errs.ErrConflict),
			want: Mapping{http.StatusConflict, "คูปองหมดอายุหรือยังไม่เริ่มใช้งาน", "COUPON_EXPIRED"},
		},
		{
			name: "checkout wrapper alone",
			err:  errs.Mark(commands.ErrCouponInvalid, errs.ErrValidation),
			want: Mapping{http.StatusBadRequest, "คูปองไม่ถูกต้อง", "COUPON_INVALID"},
		},
		{
			name: "wrapped context keeps the sentinel",
			err:  errs.Wrap(errs.Mark(queries.ErrOrderNotFound, errs.ErrNotFound), "load order"),
			want: Mapping{http.StatusNotFound, "ไม่พบคำสั่งซื้อ", "ORDER_NOT_FOUND"},
		},
		{
			name: "upload reason before upload failure",
			err:  errs.Mark(errs.Mark(upload.ErrFileTooLarge, commands.ErrInvalidUpload), errs.ErrValidation),
			want: Mapping{http.StatusBadRequest, "ขนาดไฟล์เกินกำหนด", "FILE_TOO_LARGE"},
		},
		{
			name: "overlong password",
			err:  errs.Mark(password.ErrTooLong, errs.ErrValidation),
			want: Mapping{http.StatusBadRequest, "รหัสผ่านยาวเกินไป", "PASSWORD_TOO_LONG"},
		},
		{
			name: "classified error without a known sentinel",
			err:  errs.Mark(errs.New("something specific"), errs.ErrForbidden),
			want: Mapping{http.StatusForbidden, "Forbidden", "FORBIDDEN"},
		},
		{
			name: "upstream class",
			err:  errs.Mark(errs.New("gcs timeout"), errs.ErrUpstream),
			want: Mapping{http.StatusBadGateway, "บริการภายนอกขัดข้อง กรุณาลองใหม่", "UPSTREAM_FAILURE"},
		},
		{
			name: "unclassified error never leaks a sentinel message",
			err:  errs.Wrap(queries.ErrOrderNotFound, "unexpected"),
			want: Mapping{http.StatusInternalServerError, "เกิดข้อผิดพลาด กรุณาลองใหม่", "INTERNAL_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.err))
		})
	}
}
