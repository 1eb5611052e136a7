//go:build unit || e2e

package memstore

import (
	"context"
	"io"
	"sync"

	"elearning-storefront/internal/usecase/shared"
)

// MediaStore keeps uploaded objects in memory.
type MediaStore struct {
	mu        sync.Mutex
	BaseURL   string
	Objects   map[string][]byte
	Requests  []shared.UploadRequest
	Deleted   []string
	UploadErr error
}

func NewMediaStore() *MediaStore {
	return &MediaStore{
		BaseURL: "https://cdn.example.com",
		Objects: map[string][]byte{},
	}
}

func (m *MediaStore) Upload(_ context.Context, req shared.UploadRequest) (*shared.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	body, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	m.Objects[req.Key] = body
	return &shared.UploadResult{Key: req.Key, URL: m.BaseURL + "/" + req.Key}, nil
}

func (m *MediaStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Objects, key)
	m.Deleted = append(m.Deleted, key)
	return nil
}
