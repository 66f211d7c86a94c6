package stream

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rudism/pushover-to-gotify/internal/config"
	"github.com/rudism/pushover-to-gotify/internal/logger"
)

// Protocol frames of the origin provider's message stream.
const (
	frameNewMessage = "!"
	frameKeepAlive  = "#"
)

// State describes the session lifecycle.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateLoggedIn     State = "logged_in"
)

// Status is a point-in-time snapshot of the session, exposed through the
// status endpoint.
type Status struct {
	State       State     `json:"state"`
	SessionID   string    `json:"session_id,omitempty"`
	ConnectedAt time.Time `json:"connected_at,omitzero"`
}

// Client maintains the long-lived streaming session. At most one session is
// alive at a time; a new one is created only after the prior one is fully
// torn down.
type Client struct {
	dial      Dialer
	refresher Refresher

	deviceID         string
	secret           string
	keepAliveTimeout time.Duration

	logger *logger.Logger

	mu           sync.Mutex
	state        State
	gen          uint64
	sessionID    uuid.UUID
	sessionStart time.Time
	conn         Conn
	keepAlive    *time.Timer
	reconnect    *time.Timer
}

// NewClient creates a streaming client. cfg supplies the login credentials,
// streamCfg the keep-alive timeout. The client is idle until Connect is
// called.
func NewClient(cfg config.Pushover, streamCfg config.Stream, dial Dialer, refresher Refresher, logger *logger.Logger) *Client {
	timeout := streamCfg.KeepAliveTimeout
	if timeout <= 0 {
		timeout = config.DefaultKeepAliveTimeout
	}

	return &Client{
		dial:             dial,
		refresher:        refresher,
		deviceID:         cfg.DeviceID,
		secret:           cfg.Secret,
		keepAliveTimeout: timeout,
		logger:           logger,
		state:            StateDisconnected,
	}
}

// Connect establishes the streaming session. Idempotent: a no-op while a
// session is connecting or logged in. On successful open it sends the login
// credential frame, arms the keep-alive watchdog, and triggers an immediate
// fire-and-forget refresh. Any later failure of the session schedules a
// paced reconnect; Connect itself returns once the session is up (or its
// reconnect has been scheduled).
func (c *Client) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		c.logger.Debug().Msg("connect ignored, session already active")
		return
	}

	c.gen++
	gen := c.gen
	c.state = StateConnecting
	c.sessionID = uuid.New()
	c.sessionStart = time.Now()
	sessionID := c.sessionID
	c.mu.Unlock()

	log := &logger.Logger{Logger: c.logger.With().Str("session_id", sessionID.String()).Logger()}

	log.Info().Msg("opening stream connection")

	conn, err := c.dial(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stream dial failed")
		c.teardown(ctx, gen, "dial failed")
		return
	}

	c.mu.Lock()
	if c.gen != gen {
		// Superseded while dialing; this session never existed.
		c.mu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.armKeepAliveLocked(ctx, gen)
	c.mu.Unlock()

	if err = conn.WriteFrame(ctx, "login:"+c.deviceID+":"+c.secret+"\n"); err != nil {
		log.Error().Err(err).Msg("login frame write failed")
		c.teardown(ctx, gen, "login failed")
		return
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.state = StateLoggedIn
	c.mu.Unlock()

	log.Info().Msg("stream session logged in")

	c.spawnRefresh(ctx, log)
	go c.readLoop(ctx, gen, conn, log)
}

// Status returns a snapshot of the current session.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Status{State: c.state}
	if c.state != StateDisconnected {
		s.SessionID = c.sessionID.String()
		s.ConnectedAt = c.sessionStart
	}
	return s
}

// readLoop consumes frames until the transport fails or the session is
// superseded. Runs in its own goroutine, one per session.
func (c *Client) readLoop(ctx context.Context, gen uint64, conn Conn, log *logger.Logger) {
	for {
		payload, err := conn.ReadFrame(ctx)
		if err != nil {
			if c.isStale(gen) {
				// Error from an already torn-down session; ignore.
				return
			}
			log.Error().Err(err).Msg("stream read failed")
			c.teardown(ctx, gen, "transport error")
			return
		}

		switch payload {
		case frameNewMessage:
			log.Debug().Msg("new message signal")
			c.spawnRefresh(ctx, log)
		case frameKeepAlive:
			c.rearmKeepAlive(ctx, gen)
		default:
			log.Error().Str("payload", payload).Msg("unexpected frame")
			c.teardown(ctx, gen, "protocol violation")
			return
		}
	}
}

// spawnRefresh runs one refresh in its own goroutine. Failures are logged
// and never tear down the session.
func (c *Client) spawnRefresh(ctx context.Context, log *logger.Logger) {
	go func() {
		if err := c.refresher.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("refresh failed")
		}
	}()
}

// teardown closes the session identified by gen and schedules a paced
// reconnect. Safe to call from any goroutine; calls carrying a stale gen
// are no-ops, so a failure observed by a dead session cannot disturb its
// successor.
func (c *Client) teardown(ctx context.Context, gen uint64, reason string) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}

	// Invalidate the session before releasing the lock: every callback
	// still holding this gen becomes stale.
	c.gen++
	c.state = StateDisconnected

	if c.keepAlive != nil {
		c.keepAlive.Stop()
		c.keepAlive = nil
	}

	conn := c.conn
	c.conn = nil

	delay := reconnectDelay(c.keepAliveTimeout, time.Since(c.sessionStart))
	if c.reconnect != nil {
		c.reconnect.Stop()
	}
	c.reconnect = time.AfterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}
		c.Connect(ctx)
	})
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}

	c.logger.Warn().
		Str("reason", reason).
		Dur("reconnect_in", delay).
		Msg("stream session torn down")
}

// reconnectDelay paces reconnects: a session that died right after starting
// waits nearly the full keep-alive window, while one that lived close to
// the window reconnects almost immediately. This prevents tight reconnect
// loops against a persistently failing endpoint.
func reconnectDelay(keepAliveTimeout, sessionAge time.Duration) time.Duration {
	delay := keepAliveTimeout - sessionAge
	if delay < 0 {
		return 0
	}
	return delay
}

// armKeepAliveLocked (re)arms the keep-alive watchdog for session gen.
// Caller must hold c.mu. Exactly one keep-alive timer exists at a time.
func (c *Client) armKeepAliveLocked(ctx context.Context, gen uint64) {
	if c.keepAlive != nil {
		c.keepAlive.Stop()
	}
	c.keepAlive = time.AfterFunc(c.keepAliveTimeout, func() {
		if c.isStale(gen) {
			return
		}
		c.logger.Warn().Dur("timeout", c.keepAliveTimeout).Msg("keep-alive missed")
		c.teardown(ctx, gen, "keep-alive timeout")
	})
}

// rearmKeepAlive pushes the watchdog deadline out after a heartbeat frame.
func (c *Client) rearmKeepAlive(ctx context.Context, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.armKeepAliveLocked(ctx, gen)
}

func (c *Client) isStale(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen != gen
}
