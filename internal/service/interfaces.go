// SPDX-License-Identifier: Apache-2.0

// Package service contains the message-synchronization core of the bridge:
// fetching unread messages from the origin provider, dispatching them to
// the destination provider, and advancing the acknowledgment cursor.
package service

import (
	"context"

	"github.com/rudism/pushover-to-gotify/models"
)

// Fetcher pulls the full unread message list from the origin provider and
// hands it to the dispatcher as one batch.
type Fetcher interface {
	// Refresh issues an authenticated read of all unread messages. On
	// success the batch is processed before Refresh returns. A fetch or
	// decode failure is returned to the caller, which logs it and moves
	// on; the next new-message signal retries naturally.
	Refresh(ctx context.Context) error
}

// Dispatcher forwards every unseen message of a batch to the destination
// provider and advances the cursor once per batch.
type Dispatcher interface {
	// Process forwards all messages in batch whose id exceeds the current
	// cursor. Messages within a batch are dispatched concurrently with no
	// ordering guarantee; per-message failures are logged and never abort
	// the rest of the batch. After all forward attempts have been issued,
	// the cursor is advanced once with the batch's maximum processed id.
	Process(ctx context.Context, batch []models.Message)
}

// CursorTracker owns the single piece of shared mutable state of the
// bridge: the highest message id ever acknowledged to the origin provider.
type CursorTracker interface {
	// Current returns the highest acknowledged message id, zero when
	// nothing has been acknowledged yet.
	Current() int64

	// Advance acknowledges all messages up to maxID with the origin
	// provider. A no-op when maxID does not exceed the current cursor.
	// The in-memory cursor moves only after the provider confirms the
	// acknowledgment; on failure the cursor is left unchanged so the same
	// messages may be redelivered and forwarded again.
	Advance(ctx context.Context, maxID int64) error
}
