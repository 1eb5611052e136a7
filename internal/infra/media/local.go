package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/shared"
)

// LocalPathPrefix is the URL path the router serves LocalStore files under.
const LocalPathPrefix = "/uploads"

// LocalStore writes objects below a directory. It backs development setups
// and tests.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: publicURL(publicBaseURL, LocalPathPrefix),
	}, nil
}

func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

func (s *LocalStore) Upload(ctx context.Context, req shared.UploadRequest) (*shared.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolve(req.Key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errs.Wrap(err, "failed to create object directory")
	}

	f, err := os.Create(path) // #nosec G304 -- path is confined to baseDir by resolve
	if err != nil {
		return nil, errs.Wrapf(err, "failed to create %s", req.Key)
	}
	if _, err := io.Copy(f, req.Reader); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, errs.Wrapf(err, "failed to write %s", req.Key)
	}
	if err := f.Close(); err != nil {
		return nil, errs.Wrapf(err, "failed to close %s", req.Key)
	}

	return &shared.UploadResult{Key: req.Key, URL: publicURL(s.baseURL, req.Key)}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

var errKeyEscapesBase = errs.New("object key escapes the upload directory")

func (s *LocalStore) resolve(key string) (string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", errKeyEscapesBase
	}
	return path, nil
}
