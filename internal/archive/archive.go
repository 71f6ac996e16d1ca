// Package archive stores daily zoo report bundles in a pluggable object
// store. It re-exports the storage contract from archive/core and selects a
// backend from configuration.
package archive

import (
	"context"
	"fmt"

	"zoocore/internal/archive/core"
	"zoocore/internal/infra/archive/fs"
	"zoocore/internal/infra/archive/memory"
	"zoocore/internal/infra/archive/s3"
)

type (
	// Driver identifies an archive backend.
	Driver = core.Driver
	// Store is the write-once object store contract.
	Store = core.Store
	// Object describes an archived document.
	Object = core.Object
	// PutOptions carries optional attributes for a new object.
	PutOptions = core.PutOptions
	// S3Config configures the S3 backend.
	S3Config = s3.Config
)

const (
	DriverFilesystem = core.DriverFilesystem
	DriverS3         = core.DriverS3
	DriverMemory     = core.DriverMemory
)

var (
	ErrExists   = core.ErrExists
	ErrNotFound = core.ErrNotFound
)

// Config selects and configures an archive backend.
type Config struct {
	Driver Driver
	FSRoot string
	S3     S3Config
}

// Open builds the Store named by cfg.Driver. An empty driver means fs.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		return fs.New(cfg.FSRoot)
	case DriverMemory:
		return memory.New(), nil
	case DriverS3:
		return s3.New(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown archive driver %q", driver)
	}
}
