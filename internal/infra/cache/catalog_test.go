//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	queries.CatalogReadStore
	courseCalls int
	course      *queries.CourseView
	err         error
}

func (s *countingStore) GetCourse(_ context.Context, _ uuid.UUID) (*queries.CourseView, error) {
	s.courseCalls++
	return s.course, s.err
}

func (s *countingStore) FindItem(_ context.Context, _ catalog.ItemType, _ uuid.UUID) (catalog.Item, error) {
	return nil, nil
}

// unreachableRedis fails fast with connection refused.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCatalogReadStore_FallsBackWhenRedisIsDown(t *testing.T) {
	id := uuid.New()
	next := &countingStore{course: &queries.CourseView{ID: id, Title: "Go"}}
	store := NewCatalogReadStore(next, unreachableRedis(t), time.Minute)

	got, err := store.GetCourse(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 1, next.courseCalls)
}

func TestCatalogReadStore_PropagatesStoreErrors(t *testing.T) {
	next := &countingStore{err: assert.AnError}
	store := NewCatalogReadStore(next, unreachableRedis(t), time.Minute)

	got, err := store.GetCourse(context.Background(), uuid.New())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, got)
}

func TestCatalogReadStore_ListingsBypassCache(t *testing.T) {
	next := &countingStore{}
	store := NewCatalogReadStore(next, unreachableRedis(t), time.Minute)

	_, err := store.FindItem(context.Background(), catalog.ItemTypeCourse, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, 0, next.courseCalls)
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assert.Equal(t, "catalog:ebook:11111111-2222-3333-4444-555555555555", key("ebook", id))
}
