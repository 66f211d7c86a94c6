// SPDX-License-Identifier: Apache-2.0

// Package store provides the local filesystem cache for application icons.
//
// Icons are keyed by file name, created lazily on first reference, and kept
// forever: the cache is unbounded and never invalidated. When no cache
// directory is configured the cache degrades to a no-op and no icon is ever
// downloaded.
package store

import (
	"context"
)

// IconDownloader fetches raw icon bytes from the origin provider. Satisfied
// by the pushover adapter.
type IconDownloader interface {
	DownloadIcon(ctx context.Context, name string) ([]byte, error)
}

// IconCache is an on-disk cache of application icons keyed by file name.
type IconCache interface {
	// Warm ensures the icon identified by name exists in the local cache,
	// downloading it on a miss. A no-op when caching is disabled. Returns
	// an error if the download or the file write fails; the caller treats
	// that as "no icon" and carries on.
	Warm(ctx context.Context, name string) error

	// Enabled reports whether a cache directory is configured.
	Enabled() bool
}
