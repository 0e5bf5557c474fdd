package snapshot

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orangehrm/oxd/internal/objstore"
)

// Ext is the extension of snapshot files.
const Ext = ".snap"

// Store loads and saves the baseline file of a suite. Loading a suite that
// has no file yet returns an empty File.
type Store interface {
	Load(ctx context.Context, suite string) (*File, error)
	Save(ctx context.Context, suite string, f *File) error
	String() string
}

// FileStore keeps .snap files in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(suite string) string {
	return filepath.Join(s.Dir, suite+Ext)
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context, suite string) (*File, error) {
	data, err := os.ReadFile(s.path(suite))
	if err != nil {
		if os.IsNotExist(err) {
			return NewFile(), nil
		}
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path(suite), err)
	}
	return f, nil
}

// Save implements Store. The file is written to a temporary name first and
// renamed into place.
func (s *FileStore) Save(_ context.Context, suite string, f *File) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, suite+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(f.Marshal()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(suite))
}

func (s *FileStore) String() string { return s.Dir }

// S3Store keeps .snap files as objects in a bucket.
type S3Store struct {
	bucket *objstore.Bucket
}

// NewS3Store returns an S3Store over bucket.
func NewS3Store(bucket *objstore.Bucket) *S3Store {
	return &S3Store{bucket: bucket}
}

// Load implements Store.
func (s *S3Store) Load(ctx context.Context, suite string) (*File, error) {
	data, err := s.bucket.Get(ctx, suite+Ext)
	if err != nil {
		if stderrors.Is(err, objstore.ErrNotFound) {
			return NewFile(), nil
		}
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s%s: %w", s, suite+Ext, err)
	}
	return f, nil
}

// Save implements Store.
func (s *S3Store) Save(ctx context.Context, suite string, f *File) error {
	return s.bucket.Put(ctx, suite+Ext, f.Marshal(), objstore.ContentType(Ext))
}

func (s *S3Store) String() string {
	return "s3://" + s.bucket.Name() + "/" + s.bucket.Prefix()
}

// Open returns the store for location: an "s3://bucket/prefix" URL uses
// client, anything else is a directory.
func Open(location string, client objstore.API) (Store, error) {
	if !strings.HasPrefix(location, "s3://") {
		if strings.Contains(location, "://") {
			return nil, fmt.Errorf("snapshot: unsupported store %q", location)
		}
		return NewFileStore(location), nil
	}
	bucket, prefix, err := objstore.ParseURL(location)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("snapshot: no S3 client for %q", location)
	}
	return NewS3Store(objstore.NewBucket(client, bucket, prefix)), nil
}
