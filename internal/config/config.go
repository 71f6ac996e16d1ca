// Package config reads runtime settings from ZOO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"zoocore/internal/archive"
)

// Environment variables understood by Load.
//
//	ZOO_LOG_LEVEL             debug|info|warn|error (default info)
//	ZOO_LOG_FORMAT            json|console (default json)
//	ZOO_ARCHIVE_DRIVER        fs|memory|s3 (default fs)
//	ZOO_ARCHIVE_FS_ROOT       directory for the fs driver
//	ZOO_ARCHIVE_S3_BUCKET     bucket, required for the s3 driver
//	ZOO_ARCHIVE_S3_REGION     default us-east-1
//	ZOO_ARCHIVE_S3_ENDPOINT   custom endpoint, e.g. MinIO
//	ZOO_ARCHIVE_S3_PATH_STYLE true|false
//	ZOO_CLEANLINESS_WARN      0-100, warn when admitting below this level
const (
	EnvLogLevel        = "ZOO_LOG_LEVEL"
	EnvLogFormat       = "ZOO_LOG_FORMAT"
	EnvArchiveDriver   = "ZOO_ARCHIVE_DRIVER"
	EnvArchiveFSRoot   = "ZOO_ARCHIVE_FS_ROOT"
	EnvS3Bucket        = "ZOO_ARCHIVE_S3_BUCKET"
	EnvS3Region        = "ZOO_ARCHIVE_S3_REGION"
	EnvS3Endpoint      = "ZOO_ARCHIVE_S3_ENDPOINT"
	EnvS3PathStyle     = "ZOO_ARCHIVE_S3_PATH_STYLE"
	EnvCleanlinessWarn = "ZOO_CLEANLINESS_WARN"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	Archive   archive.Config
	// CleanlinessWarn enables the cleanliness admission warning when > 0.
	CleanlinessWarn int
}

// Load reads the process environment.
func Load() (Config, error) {
	return FromLookup(os.Getenv)
}

// FromLookup resolves configuration through getenv.
func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel:  strings.ToLower(valueOr(getenv(EnvLogLevel), "info")),
		LogFormat: strings.ToLower(valueOr(getenv(EnvLogFormat), "json")),
		Archive: archive.Config{
			Driver: archive.Driver(strings.ToLower(valueOr(getenv(EnvArchiveDriver), string(archive.DriverFilesystem)))),
			FSRoot: getenv(EnvArchiveFSRoot),
			S3: archive.S3Config{
				Bucket:   getenv(EnvS3Bucket),
				Region:   getenv(EnvS3Region),
				Endpoint: getenv(EnvS3Endpoint),
			},
		},
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("%s: unsupported format %q", EnvLogFormat, cfg.LogFormat)
	}
	switch cfg.Archive.Driver {
	case archive.DriverFilesystem, archive.DriverMemory, archive.DriverS3:
	default:
		return Config{}, fmt.Errorf("%s: unknown driver %q", EnvArchiveDriver, cfg.Archive.Driver)
	}

	if raw := getenv(EnvS3PathStyle); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvS3PathStyle, err)
		}
		cfg.Archive.S3.PathStyle = v
	}
	if raw := getenv(EnvCleanlinessWarn); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvCleanlinessWarn, err)
		}
		if v < 0 || v > 100 {
			return Config{}, fmt.Errorf("%s: must be between 0 and 100, got %d", EnvCleanlinessWarn, v)
		}
		cfg.CleanlinessWarn = v
	}
	return cfg, nil
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
