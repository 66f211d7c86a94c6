package service

import (
	"context"
	"fmt"

	"github.com/rudism/pushover-to-gotify/internal/adapter"
	"github.com/rudism/pushover-to-gotify/internal/logger"
)

type fetcher struct {
	pushover   adapter.PushoverAdapter
	dispatcher Dispatcher

	logger *logger.Logger
}

// NewFetcher creates a [Fetcher] reading from pushover and handing batches
// to dispatcher.
func NewFetcher(pushover adapter.PushoverAdapter, dispatcher Dispatcher, logger *logger.Logger) Fetcher {
	return &fetcher{pushover: pushover, dispatcher: dispatcher, logger: logger}
}

// Refresh implements [Fetcher].
func (f *fetcher) Refresh(ctx context.Context) error {
	batch, err := f.pushover.FetchMessages(ctx)
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}

	if len(batch) == 0 {
		f.logger.Debug().Msg("no unread messages")
		return nil
	}

	f.logger.Debug().Int("count", len(batch)).Msg("processing message batch")
	f.dispatcher.Process(ctx, batch)
	return nil
}
