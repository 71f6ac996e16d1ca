// Package core defines the storage contract shared by every report archive
// backend.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Driver identifies an archive backend.
type Driver string

const (
	// DriverFilesystem keeps archives under a local directory.
	DriverFilesystem Driver = "fs"
	// DriverS3 keeps archives in an S3 or MinIO bucket.
	DriverS3 Driver = "s3"
	// DriverMemory keeps archives in process memory.
	DriverMemory Driver = "memory"
)

// PutOptions carries optional attributes for a new object.
type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

// Object describes an archived document.
type Object struct {
	Key         string            `json:"key"`
	Size        int64             `json:"size_bytes"`
	ContentType string            `json:"content_type,omitempty"`
	ETag        string            `json:"etag,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	StoredAt    time.Time         `json:"stored_at"`
}

// Store is a write-once object store. Archived documents are never
// overwritten; Put on an existing key fails with ErrExists.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Object, error)
	// Get fails with ErrNotFound when key is absent. Callers close the reader.
	Get(ctx context.Context, key string) (Object, io.ReadCloser, error)
	// List returns objects under prefix sorted by key.
	List(ctx context.Context, prefix string) ([]Object, error)
	// Delete reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	Driver() Driver
}

var (
	// ErrExists is returned by Put when the key is already archived.
	ErrExists = errors.New("archive: object already exists")
	// ErrNotFound is returned by Get for an unknown key.
	ErrNotFound = errors.New("archive: object not found")
)

// CleanKey validates a slash separated object key and returns its canonical
// form. Keys are relative and may not climb out of the archive root.
func CleanKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("archive: empty key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", fmt.Errorf("archive: invalid key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("archive: key %q escapes the archive root", key)
		}
	}
	return path.Clean(key), nil
}

// CloneMetadata copies md so stores never share maps with callers.
func CloneMetadata(md map[string]string) map[string]string {
	if md == nil {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}
