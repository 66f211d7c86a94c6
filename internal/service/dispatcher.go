package service

import (
	"context"
	"sync"

	"github.com/rudism/pushover-to-gotify/internal/adapter"
	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/internal/store"
	"github.com/rudism/pushover-to-gotify/models"
)

type dispatcher struct {
	gotify adapter.GotifyAdapter
	icons  store.IconCache
	cursor CursorTracker

	logger *logger.Logger
}

// NewDispatcher creates a [Dispatcher] forwarding messages to gotify,
// warming icons through icons, and reporting batch completion to cursor.
func NewDispatcher(gotify adapter.GotifyAdapter, icons store.IconCache, cursor CursorTracker, logger *logger.Logger) Dispatcher {
	return &dispatcher{gotify: gotify, icons: icons, cursor: cursor, logger: logger}
}

// Process implements [Dispatcher]. Messages at or below the cursor have
// already been forwarded in an earlier batch and are skipped.
func (d *dispatcher) Process(ctx context.Context, batch []models.Message) {
	seen := d.cursor.Current()

	var (
		wg    sync.WaitGroup
		maxID int64
	)
	for _, msg := range batch {
		if msg.ID <= seen {
			d.logger.Debug().Int64("id", msg.ID).Int64("cursor", seen).Msg("skipping already-forwarded message")
			continue
		}
		if msg.ID > maxID {
			maxID = msg.ID
		}

		wg.Add(1)
		go func(m models.Message) {
			defer wg.Done()
			d.forward(ctx, m)
		}(msg)
	}
	wg.Wait()

	if maxID == 0 {
		return
	}

	if err := d.cursor.Advance(ctx, maxID); err != nil {
		d.logger.Error().Err(err).Int64("max_id", maxID).Msg("cursor advance failed, messages may be redelivered")
	}
}

// forward warms the icon cache and pushes one translated message. An icon
// failure downgrades to "no icon"; a push failure drops the message.
func (d *dispatcher) forward(ctx context.Context, m models.Message) {
	if err := d.icons.Warm(ctx, m.IconName()); err != nil {
		d.logger.Warn().Err(err).Int64("id", m.ID).Msg("icon unavailable, forwarding without it")
	}

	if err := d.gotify.PushMessage(ctx, models.NewPushMessage(m)); err != nil {
		d.logger.Error().Err(err).Int64("id", m.ID).Msg("forward to gotify failed, message dropped")
		return
	}

	d.logger.Info().Int64("id", m.ID).Str("app", m.App).Msg("message forwarded")
}
