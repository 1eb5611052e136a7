package media

import (
	"context"

	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket        string
	Region        string
	Prefix        string
	PublicBaseURL string
}

// S3Store puts slips and exam files in one bucket under Prefix.
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS config")
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
	}

	return &S3Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		baseURL: baseURL,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, req shared.UploadRequest) (*shared.UploadResult, error) {
	key := objectKey(s.prefix, req.Key)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          req.Reader,
		ContentType:   aws.String(req.ContentType),
		ContentLength: aws.Int64(req.Size),
		Metadata:      req.Metadata,
	}
	if req.CacheControl != "" {
		input.CacheControl = aws.String(req.CacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, errs.Wrapf(err, "s3 put failed for %s", key)
	}

	return &shared.UploadResult{Key: key, URL: publicURL(s.baseURL, key)}, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.Wrapf(err, "s3 delete failed for %s", key)
	}
	return nil
}
