//go:build unit

package readstore

import (
	"context"
	"testing"

	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn query.Users
		mockError  error
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     inactiveUser.ID,
			mockReturn: inactiveUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: query.Users{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: query.Users{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, tt.mockReturn.Name, view.Name)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, "credentials", view.Provider)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
