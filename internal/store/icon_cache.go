package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rudism/pushover-to-gotify/internal/logger"
)

type iconCache struct {
	dir        string
	downloader IconDownloader

	logger *logger.Logger
}

// NewIconCache constructs an [IconCache] rooted at dir. When dir is empty
// the returned cache is disabled and Warm is a no-op. The directory is
// created on first use, not here, so a misconfigured path surfaces as a
// logged warm failure instead of a startup error.
func NewIconCache(dir string, downloader IconDownloader, logger *logger.Logger) IconCache {
	return &iconCache{dir: dir, downloader: downloader, logger: logger}
}

// Enabled implements [IconCache].
func (c *iconCache) Enabled() bool {
	return c.dir != ""
}

// Warm implements [IconCache]. It checks the cache by file name; on a miss
// it downloads the icon from the origin provider and stores it at that
// name. Cached entries are reused indefinitely.
func (c *iconCache) Warm(ctx context.Context, name string) error {
	if !c.Enabled() {
		return nil
	}

	path := filepath.Join(c.dir, filepath.Base(name))
	if _, err := os.Stat(path); err == nil {
		c.logger.Debug().Str("icon", name).Msg("icon cache hit")
		return nil
	}

	data, err := c.downloader.DownloadIcon(ctx, name)
	if err != nil {
		return fmt.Errorf("download icon %s: %w", name, err)
	}

	if err = os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create icon cache dir: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write icon %s: %w", name, err)
	}

	c.logger.Debug().Str("icon", name).Msg("icon cached")
	return nil
}
