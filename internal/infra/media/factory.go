package media

import (
	"context"
	"strings"

	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/shared"
)

const (
	ProviderLocal = "local"
	ProviderS3    = "s3"
	ProviderGCS   = "gcs"
)

var ErrBucketRequired = errs.New("storage bucket is required")

// New builds the media store selected by cfg.Provider. publicBaseURL is the
// application origin, used by the local store.
func New(ctx context.Context, cfg config.StorageConfig, publicBaseURL string) (shared.MediaStore, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderLocal:
		return NewLocalStore(cfg.LocalDir, publicBaseURL)
	case ProviderS3:
		if cfg.Bucket == "" {
			return nil, ErrBucketRequired
		}
		return NewS3Store(ctx, S3Config{
			Bucket:        cfg.Bucket,
			Region:        cfg.Region,
			Prefix:        cfg.Prefix,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	case ProviderGCS:
		if cfg.Bucket == "" {
			return nil, ErrBucketRequired
		}
		return NewGCSStore(ctx, GCSConfig{
			Bucket:          cfg.Bucket,
			Prefix:          cfg.Prefix,
			PublicBaseURL:   cfg.PublicBaseURL,
			CredentialsFile: cfg.CredentialsFile,
		})
	default:
		return nil, errs.New("unknown storage provider: " + cfg.Provider)
	}
}

func objectKey(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + strings.TrimLeft(key, "/")
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
