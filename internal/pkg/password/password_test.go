//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPasswordWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong-pass"), ErrComparisonFailed)
	assert.ErrorIs(t, ComparePassword("", "s3cret-pass"), ErrInvalidPassword)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestHashPassword_TooLong(t *testing.T) {
	// Thai characters take three bytes each, so this is well past the limit.
	_, err := HashPasswordWithCost("รหัสผ่านที่ยาวมากเกินกว่าเจ็ดสิบสองไบต์", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrTooLong)
}
