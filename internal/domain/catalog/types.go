package catalog

import (
	"errors"
)

var (
	ErrInvalidItemType = errors.New("item type must be course or ebook")
	ErrInvalidPrice    = errors.New("price cannot be negative")
)

// ItemType discriminates the purchasable catalog variants.
type ItemType string

const (
	ItemTypeCourse ItemType = "course"
	ItemTypeEbook  ItemType = "ebook"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeCourse, ItemTypeEbook:
		return true
	default:
		return false
	}
}

func NewItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.IsValid() {
		return "", ErrInvalidItemType
	}
	return t, nil
}

// CategoryKind scopes a category to the listing it belongs to.
type CategoryKind string

const (
	CategoryKindCourse CategoryKind = "course"
	CategoryKindEbook  CategoryKind = "ebook"
	CategoryKindExam   CategoryKind = "exam"
)

func (k CategoryKind) IsValid() bool {
	switch k {
	case CategoryKindCourse, CategoryKindEbook, CategoryKindExam:
		return true
	default:
		return false
	}
}
