// SPDX-License-Identifier: Apache-2.0

// Package stream owns the streaming-connection lifecycle of the bridge: the
// websocket session against the origin provider, the login handshake, the
// keep-alive watchdog, and paced reconnects.
//
// The wire protocol is text frames: "!" signals that new messages are
// queued, "#" is a keep-alive heartbeat, and anything else is a protocol
// violation that forces a reconnect. The transport itself sits behind the
// [Conn]/[Dialer] seam so the session logic is testable without a network.
package stream

import (
	"context"
)

// Conn is one live streaming transport.
type Conn interface {
	// ReadFrame blocks until the next text frame arrives or the transport
	// fails. A closed connection surfaces as an error.
	ReadFrame(ctx context.Context) (string, error)

	// WriteFrame sends one text frame.
	WriteFrame(ctx context.Context, payload string) error

	// Close tears the transport down. Safe to call more than once.
	Close() error
}

// Dialer opens a fresh [Conn]. Called once per session.
type Dialer func(ctx context.Context) (Conn, error)

// Refresher is invoked on new-message signals. Satisfied by the service
// layer's Fetcher.
type Refresher interface {
	Refresh(ctx context.Context) error
}
