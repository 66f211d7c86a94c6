// SPDX-License-Identifier: Apache-2.0

// Package status exposes a small read-only HTTP endpoint describing the
// bridge's runtime state: the streaming session and the acknowledgment
// cursor. It is enabled only when a listen address is configured.
package status

import "github.com/rudism/pushover-to-gotify/internal/stream"

// SessionReporter provides a snapshot of the streaming session.
// Satisfied by [stream.Client].
type SessionReporter interface {
	Status() stream.Status
}

// CursorReporter reports the highest acknowledged message id.
type CursorReporter interface {
	Current() int64
}
