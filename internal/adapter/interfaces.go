// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the two notification providers the bridge connects.
//
// The primary abstractions are [PushoverAdapter] for the origin provider's
// Open Client REST API and [GotifyAdapter] for the destination provider's
// push endpoint. Both ship HTTP/REST implementations built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/rudism/pushover-to-gotify/models"
)

// PushoverAdapter defines communication with the Pushover Open Client API.
// Implementations are responsible for serialisation, credential query
// parameters, and mapping transport-level errors to the sentinel values
// defined in this package.
type PushoverAdapter interface {
	// FetchMessages retrieves all messages currently queued for the device.
	// Returns an error if the request fails, the server responds with a
	// non-2xx status, or the response body cannot be decoded.
	FetchMessages(ctx context.Context) ([]models.Message, error)

	// AckHighestMessage marks every message with an id up to and including
	// id as delivered, so the provider stops redelivering them. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status.
	AckHighestMessage(ctx context.Context, id int64) error

	// DownloadIcon fetches the raw icon file identified by name (including
	// extension) from the icon host. Returns the icon bytes, or an error if
	// the request fails or the server responds with a non-2xx status.
	DownloadIcon(ctx context.Context, name string) ([]byte, error)
}

// GotifyAdapter defines communication with the Gotify server.
type GotifyAdapter interface {
	// PushMessage posts a translated message to the Gotify /message
	// endpoint using the configured application token. Returns an error if
	// the request fails or the server responds with a non-2xx status.
	PushMessage(ctx context.Context, msg models.PushMessage) error
}
