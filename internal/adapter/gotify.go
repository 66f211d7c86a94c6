package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/models"
)

type gotifyAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewGotifyAdapter constructs an HTTP/REST implementation of
// [GotifyAdapter] pointed at cfg.Host. The application token is attached to
// every push as the token query parameter.
//
// Returns an error if cfg.Host is empty or cannot be parsed as a valid URL.
func NewGotifyAdapter(cfg config.Gotify, logger *logger.Logger) (GotifyAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid gotify host: %w", err)
	}

	return &gotifyAdapter{
		client: resty.New().SetBaseURL(baseURL),
		token:  cfg.Token,
		logger: logger,
	}, nil
}

// PushMessage implements [GotifyAdapter]. It POSTs the JSON payload to
// /message with the application token. Returns an error if the request
// fails or the server returns a non-2xx status.
func (g *gotifyAdapter) PushMessage(ctx context.Context, msg models.PushMessage) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("token", g.token).
		SetBody(msg).
		Post("/message")
	if err != nil {
		return fmt.Errorf("push message request: %w", err)
	}

	return mapHTTPError(resp)
}
