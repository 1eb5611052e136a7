package shared

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ExamSnapshot struct {
	ID       uuid.UUID
	Title    string
	IsActive bool
}

// UploadRequest describes one object handed to the media host.
type UploadRequest struct {
	Key          string
	Reader       io.Reader
	ContentType  string
	Size         int64
	CacheControl string
	Metadata     map[string]string
}

type UploadResult struct {
	Key string
	URL string
}

// MediaStore is the external host for slips and exam files.
type MediaStore interface {
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// OAuthIdentity is the verified account returned by a social login provider.
type OAuthIdentity struct {
	Provider      string
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

type OAuthProvider interface {
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the caller's identity.
	Exchange(ctx context.Context, code string) (*OAuthIdentity, error)
}
