package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rudism/pushover-to-gotify/internal/adapter"
	"github.com/rudism/pushover-to-gotify/internal/logger"
)

type cursorTracker struct {
	pushover adapter.PushoverAdapter
	logger   *logger.Logger

	mu    sync.Mutex
	acked int64
}

// NewCursorTracker creates a [CursorTracker] starting at zero (nothing
// acknowledged).
func NewCursorTracker(pushover adapter.PushoverAdapter, logger *logger.Logger) CursorTracker {
	return &cursorTracker{pushover: pushover, logger: logger}
}

// Current implements [CursorTracker].
func (c *cursorTracker) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acked
}

// Advance implements [CursorTracker]. The mutex is held across the remote
// call so that concurrent Advance calls are serialized and cannot both pass
// a stale comparison.
func (c *cursorTracker) Advance(ctx context.Context, maxID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxID <= c.acked {
		return nil
	}

	if err := c.pushover.AckHighestMessage(ctx, maxID); err != nil {
		return fmt.Errorf("ack highest message %d: %w", maxID, err)
	}

	c.logger.Info().Int64("from", c.acked).Int64("to", maxID).Msg("cursor advanced")
	c.acked = maxID
	return nil
}
