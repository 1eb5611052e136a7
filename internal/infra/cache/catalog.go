package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:"

// CatalogReadStore is a read-through cache in front of the detail lookups.
// Listings and item pricing always go to the wrapped store. Redis failures
// are logged and the wrapped store answers instead.
type CatalogReadStore struct {
	queries.CatalogReadStore
	client redis.Cmdable
	ttl    time.Duration
}

func NewCatalogReadStore(next queries.CatalogReadStore, client redis.Cmdable, ttl time.Duration) *CatalogReadStore {
	return &CatalogReadStore{
		CatalogReadStore: next,
		client:           client,
		ttl:              ttl,
	}
}

func (s *CatalogReadStore) GetCourse(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	return readThrough(ctx, s, key("course", id), func() (*queries.CourseView, error) {
		return s.CatalogReadStore.GetCourse(ctx, id)
	})
}

func (s *CatalogReadStore) GetEbook(ctx context.Context, id uuid.UUID) (*queries.EbookView, error) {
	return readThrough(ctx, s, key("ebook", id), func() (*queries.EbookView, error) {
		return s.CatalogReadStore.GetEbook(ctx, id)
	})
}

// GetExam caches the exam row only; files are listed separately and stay fresh.
func (s *CatalogReadStore) GetExam(ctx context.Context, id uuid.UUID) (*queries.ExamView, error) {
	return readThrough(ctx, s, key("exam", id), func() (*queries.ExamView, error) {
		return s.CatalogReadStore.GetExam(ctx, id)
	})
}

func readThrough[T any](ctx context.Context, s *CatalogReadStore, k string, load func() (*T, error)) (*T, error) {
	raw, err := s.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			return &v, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", k)
	case !errors.Is(err, redis.Nil):
		slog.Warn("catalog cache read failed", "key", k, "error", err.Error())
	}

	v, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := s.client.Set(ctx, k, data, s.ttl).Err(); err != nil {
			slog.Warn("catalog cache write failed", "key", k, "error", err.Error())
		}
	}
	return v, nil
}

func key(kind string, id uuid.UUID) string {
	return keyPrefix + kind + ":" + id.String()
}
