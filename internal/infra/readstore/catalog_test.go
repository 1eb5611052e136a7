//go:build unit

package readstore

import (
	"context"
	"testing"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/testutil/builder"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReadQueries struct {
	mock.Mock
}

func (m *MockCatalogReadQueries) ListCourses(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Courses, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Courses), args.Error(1)
}

func (m *MockCatalogReadQueries) CountCourses(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogReadQueries) GetCourse(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Courses, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Courses), args.Error(1)
}

func (m *MockCatalogReadQueries) ListEbooks(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Ebooks, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Ebooks), args.Error(1)
}

func (m *MockCatalogReadQueries) CountEbooks(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogReadQueries) GetEbook(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Ebooks, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Ebooks), args.Error(1)
}

func (m *MockCatalogReadQueries) ListExams(ctx context.Context, db query.DBTX, arg query.ListFilter) ([]query.Exams, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.Exams), args.Error(1)
}

func (m *MockCatalogReadQueries) CountExams(ctx context.Context, db query.DBTX, arg query.ListFilter) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogReadQueries) GetExam(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Exams, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Exams), args.Error(1)
}

func (m *MockCatalogReadQueries) ListExamFiles(ctx context.Context, db query.DBTX, examID uuid.UUID) ([]query.ExamFiles, error) {
	args := m.Called(ctx, db, examID)
	return args.Get(0).([]query.ExamFiles), args.Error(1)
}

func (m *MockCatalogReadQueries) ListCategories(ctx context.Context, db query.DBTX, kind string) ([]query.Categories, error) {
	args := m.Called(ctx, db, kind)
	return args.Get(0).([]query.Categories), args.Error(1)
}

func TestCatalogReadStore_ListCourses(t *testing.T) {
	categoryID := uuid.New()
	course := builder.NewCourseBuilder().BuildInfra()
	course.CategoryID = pgtype.UUID{Bytes: categoryID, Valid: true}
	course.CategoryName = pgtype.Text{String: "Programming", Valid: true}

	wantFilter := query.ListFilter{
		CategoryID: pgtype.UUID{Bytes: categoryID, Valid: true},
		Search:     "go",
		Limit:      12,
		Offset:     24,
	}

	mockQueries := new(MockCatalogReadQueries)
	mockQueries.On("ListCourses", mock.Anything, mock.Anything, wantFilter).Return([]query.Courses{course}, nil)
	mockQueries.On("CountCourses", mock.Anything, mock.Anything, wantFilter).Return(int64(25), nil)

	store := NewCatalogReadStore(mockQueries, nil)

	views, total, err := store.ListCourses(context.Background(), queries.ListParams{
		CategoryID: &categoryID,
		Search:     "go",
		Page:       3,
		Limit:      12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, views, 1)
	assert.Equal(t, course.ID, views[0].ID)
	require.NotNil(t, views[0].Category)
	assert.Equal(t, "Programming", views[0].Category.Name)
	mockQueries.AssertExpectations(t)
}

func TestCatalogReadStore_ListCourses_CountFails(t *testing.T) {
	mockQueries := new(MockCatalogReadQueries)
	mockQueries.On("ListCourses", mock.Anything, mock.Anything, mock.Anything).Return([]query.Courses{}, nil)
	mockQueries.On("CountCourses", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	store := NewCatalogReadStore(mockQueries, nil)

	_, _, err := store.ListCourses(context.Background(), queries.ListParams{Page: 1, Limit: 12})

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestCatalogReadStore_GetEbook(t *testing.T) {
	withDiscount := builder.NewEbookBuilder().WithDiscountPrice(300).BuildInfra()
	withoutDiscount := builder.NewEbookBuilder().BuildInfra()

	tests := []struct {
		name         string
		row          query.Ebooks
		mockError    error
		wantDiscount *decimal.Decimal
		wantKind     infra.RepositoryErrorKind
	}{
		{
			name:         "discount price is exposed",
			row:          withDiscount,
			wantDiscount: &withDiscount.DiscountPrice.Decimal,
		},
		{
			name: "no discount price",
			row:  withoutDiscount,
		},
		{
			name:      "not found",
			row:       query.Ebooks{ID: uuid.New()},
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCatalogReadQueries)
			mockQueries.On("GetEbook", mock.Anything, mock.Anything, tt.row.ID).Return(tt.row, tt.mockError)

			view, err := NewCatalogReadStore(mockQueries, nil).GetEbook(context.Background(), tt.row.ID)

			if tt.mockError != nil {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			if tt.wantDiscount == nil {
				assert.Nil(t, view.DiscountPrice)
			} else {
				require.NotNil(t, view.DiscountPrice)
				assert.True(t, tt.wantDiscount.Equal(*view.DiscountPrice))
			}
		})
	}
}

func TestCatalogReadStore_FindItem(t *testing.T) {
	course := builder.NewCourseBuilder().WithPrice(1000).BuildInfra()
	ebook := builder.NewEbookBuilder().WithDiscountPrice(300).BuildInfra()

	t.Run("course is priced at its list price", func(t *testing.T) {
		mockQueries := new(MockCatalogReadQueries)
		mockQueries.On("GetCourse", mock.Anything, mock.Anything, course.ID).Return(course, nil)

		item, err := NewCatalogReadStore(mockQueries, nil).FindItem(context.Background(), catalog.ItemTypeCourse, course.ID)

		require.NoError(t, err)
		assert.Equal(t, catalog.ItemTypeCourse, item.Type())
		assert.True(t, decimal.NewFromInt(1000).Equal(item.Subtotal()))
	})

	t.Run("ebook is priced at its discount price", func(t *testing.T) {
		mockQueries := new(MockCatalogReadQueries)
		mockQueries.On("GetEbook", mock.Anything, mock.Anything, ebook.ID).Return(ebook, nil)

		item, err := NewCatalogReadStore(mockQueries, nil).FindItem(context.Background(), catalog.ItemTypeEbook, ebook.ID)

		require.NoError(t, err)
		assert.Equal(t, catalog.ItemTypeEbook, item.Type())
		assert.True(t, decimal.NewFromInt(300).Equal(item.Subtotal()))
	})

	t.Run("unpublished course is not found", func(t *testing.T) {
		mockQueries := new(MockCatalogReadQueries)
		mockQueries.On("GetCourse", mock.Anything, mock.Anything, course.ID).Return(query.Courses{}, pgx.ErrNoRows)

		_, err := NewCatalogReadStore(mockQueries, nil).FindItem(context.Background(), catalog.ItemTypeCourse, course.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown item type is not found", func(t *testing.T) {
		mockQueries := new(MockCatalogReadQueries)

		_, err := NewCatalogReadStore(mockQueries, nil).FindItem(context.Background(), catalog.ItemType("exam"), uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "GetCourse", mock.Anything, mock.Anything, mock.Anything)
	})
}
