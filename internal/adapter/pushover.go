package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/models"
)

type pushoverAdapter struct {
	api   *resty.Client
	icons *resty.Client

	deviceID string
	secret   string

	logger *logger.Logger
}

// NewPushoverAdapter constructs an HTTP/REST implementation of
// [PushoverAdapter]. It normalises and validates the API and icon base URLs
// from cfg and configures one underlying HTTP client per host.
//
// Returns an error if either base URL is empty or cannot be parsed as a
// valid URL.
func NewPushoverAdapter(cfg config.Pushover, logger *logger.Logger) (PushoverAdapter, error) {
	apiURL, err := normalizeBaseURL(cfg.APIHost)
	if err != nil {
		return nil, fmt.Errorf("invalid pushover api host: %w", err)
	}
	iconURL, err := normalizeBaseURL(cfg.IconHost)
	if err != nil {
		return nil, fmt.Errorf("invalid pushover icon host: %w", err)
	}

	return &pushoverAdapter{
		api:      resty.New().SetBaseURL(apiURL),
		icons:    resty.New().SetBaseURL(iconURL),
		deviceID: cfg.DeviceID,
		secret:   cfg.Secret,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchMessages implements [PushoverAdapter]. It GETs /messages.json with
// the device credentials as query parameters and decodes the message list
// envelope. Returns an error if the request fails, the server returns a
// non-2xx status, or the body cannot be decoded.
func (p *pushoverAdapter) FetchMessages(ctx context.Context) ([]models.Message, error) {
	resp, err := p.api.R().
		SetContext(ctx).
		SetQueryParam("secret", p.secret).
		SetQueryParam("device_id", p.deviceID).
		Get("/messages.json")
	if err != nil {
		return nil, fmt.Errorf("fetch messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.MessageListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode message list response: %w", err)
	}

	return list.Messages, nil
}

// AckHighestMessage implements [PushoverAdapter]. It POSTs the new highest
// delivered message id to /devices/{deviceID}/update_highest_message.json
// as a form body. Returns an error if the request fails or the server
// returns a non-2xx status.
func (p *pushoverAdapter) AckHighestMessage(ctx context.Context, id int64) error {
	resp, err := p.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"secret":  p.secret,
			"message": strconv.FormatInt(id, 10),
		}).
		Post("/devices/" + url.PathEscape(p.deviceID) + "/update_highest_message.json")
	if err != nil {
		return fmt.Errorf("update highest message request: %w", err)
	}

	return mapHTTPError(resp)
}

// DownloadIcon implements [PushoverAdapter]. It GETs /icons/{name} from the
// icon host and returns the raw icon bytes. Returns an error if the request
// fails or the server returns a non-2xx status.
func (p *pushoverAdapter) DownloadIcon(ctx context.Context, name string) ([]byte, error) {
	resp, err := p.icons.R().
		SetContext(ctx).
		Get("/icons/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("download icon request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
