package media

import (
	"context"
	"errors"
	"io"

	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/shared"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSConfig struct {
	Bucket          string
	Prefix          string
	PublicBaseURL   string
	CredentialsFile string
}

type GCSStore struct {
	client  *storage.Client
	bucket  string
	prefix  string
	baseURL string
}

// NewGCSStore uses application default credentials unless CredentialsFile is set.
func NewGCSStore(ctx context.Context, cfg GCSConfig) (*GCSStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create GCS client")
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = "https://storage.googleapis.com/" + cfg.Bucket
	}

	return &GCSStore{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		baseURL: baseURL,
	}, nil
}

func (s *GCSStore) Upload(ctx context.Context, req shared.UploadRequest) (*shared.UploadResult, error) {
	key := objectKey(s.prefix, req.Key)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = req.ContentType
	w.CacheControl = req.CacheControl
	w.Metadata = req.Metadata

	if _, err := io.Copy(w, req.Reader); err != nil {
		_ = w.Close()
		return nil, errs.Wrapf(err, "gcs write failed for %s", key)
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrapf(err, "gcs close failed for %s", key)
	}

	return &shared.UploadResult{Key: key, URL: publicURL(s.baseURL, key)}, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return errs.Wrapf(err, "gcs delete failed for %s", key)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
