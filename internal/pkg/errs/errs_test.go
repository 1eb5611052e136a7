//go:build unit

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	errCouponGone := Mark(New("coupon gone"), ErrConflict)
	errOrderMissing := Mark(New("order missing"), ErrNotFound)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "marked sentinel", err: errCouponGone, want: ErrConflict},
		{name: "wrapped marked sentinel", err: Wrap(errOrderMissing, "load order"), want: ErrNotFound},
		{name: "mark on foreign error", err: Mark(errors.New("s3 down"), ErrUpstream), want: ErrUpstream},
		{name: "unmarked error", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}

func TestIs_KeepsOriginalIdentity(t *testing.T) {
	base := New("payment locked")
	marked := Mark(base, ErrConflict)

	assert.True(t, Is(Wrap(marked, "upload"), marked))
	assert.True(t, Is(Wrap(marked, "upload"), ErrConflict))
	assert.False(t, Is(Wrap(marked, "upload"), ErrNotFound))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.Equal(t, ErrValidation, Mark(nil, ErrValidation))
}

func TestMark_KeepsSentinelAndCause(t *testing.T) {
	errCouponInvalid := New("coupon invalid")
	errExpired := errors.New("coupon expired")

	err := Mark(Mark(errExpired, errCouponInvalid), ErrConflict)

	assert.True(t, Is(err, errCouponInvalid))
	assert.True(t, Is(err, errExpired))
	assert.Equal(t, ErrConflict, Class(err))
	assert.False(t, Is(Mark(New("other"), ErrConflict), errCouponInvalid))
}
