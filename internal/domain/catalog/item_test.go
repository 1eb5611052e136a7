//go:build unit

package catalog_test

import (
	"testing"

	"elearning-storefront/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestItemSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		build func() (catalog.Item, error)
		want  decimal.Decimal
		kind  catalog.ItemType
	}{
		{
			name:  "course uses price",
			build: func() (catalog.Item, error) { return catalog.NewCourse(uuid.New(), "Go 101", dec("1500"), false) },
			want:  dec("1500"),
			kind:  catalog.ItemTypeCourse,
		},
		{
			name:  "free course is zero",
			build: func() (catalog.Item, error) { return catalog.NewCourse(uuid.New(), "Intro", dec("990"), true) },
			want:  decimal.Zero,
			kind:  catalog.ItemTypeCourse,
		},
		{
			name: "ebook prefers discount price",
			build: func() (catalog.Item, error) {
				return catalog.NewEbook(uuid.New(), "Algorithms", dec("450"), decPtr("350"), false)
			},
			want: dec("350"),
			kind: catalog.ItemTypeEbook,
		},
		{
			name: "ebook ignores discount above price",
			build: func() (catalog.Item, error) {
				return catalog.NewEbook(uuid.New(), "Algorithms", dec("450"), decPtr("500"), false)
			},
			want: dec("450"),
			kind: catalog.ItemTypeEbook,
		},
		{
			name:  "ebook without discount uses price",
			build: func() (catalog.Item, error) { return catalog.NewEbook(uuid.New(), "Networks", dec("299"), nil, false) },
			want:  dec("299"),
			kind:  catalog.ItemTypeEbook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := tt.build()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(item.Subtotal()), "want %s got %s", tt.want, item.Subtotal())
			assert.Equal(t, tt.kind, item.Type())
		})
	}
}

func TestNewItem_RejectsNegativePrice(t *testing.T) {
	_, err := catalog.NewCourse(uuid.New(), "bad", dec("-1"), false)
	assert.ErrorIs(t, err, catalog.ErrInvalidPrice)

	_, err = catalog.NewEbook(uuid.New(), "bad", dec("10"), decPtr("-5"), false)
	assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
}

func TestNewItemType(t *testing.T) {
	got, err := catalog.NewItemType("ebook")
	require.NoError(t, err)
	assert.Equal(t, catalog.ItemTypeEbook, got)

	_, err = catalog.NewItemType("exam")
	assert.ErrorIs(t, err, catalog.ErrInvalidItemType)
}
