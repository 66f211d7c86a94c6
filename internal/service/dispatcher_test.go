package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyGotify записывает отправленные сообщения.
type spyGotify struct {
	mu     sync.Mutex
	pushed []models.PushMessage
	err    error
}

func (s *spyGotify) PushMessage(_ context.Context, msg models.PushMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.pushed = append(s.pushed, msg)
	return nil
}

func (s *spyGotify) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pushed)
}

// spyCursor реализует CursorTracker без сети.
type spyCursor struct {
	current      int64
	advanceCalls atomic.Int64
	lastMaxID    atomic.Int64
	err          error
}

func (s *spyCursor) Current() int64 { return s.current }

func (s *spyCursor) Advance(_ context.Context, maxID int64) error {
	s.advanceCalls.Add(1)
	s.lastMaxID.Store(maxID)
	return s.err
}

// spyIconCache считает прогревы.
type spyIconCache struct {
	warmCalls atomic.Int64
	names     sync.Map
	err       error
}

func (s *spyIconCache) Warm(_ context.Context, name string) error {
	s.warmCalls.Add(1)
	s.names.Store(name, true)
	return s.err
}

func (s *spyIconCache) Enabled() bool { return true }

func newTestDispatcher(gotify *spyGotify, icons *spyIconCache, cursor *spyCursor) Dispatcher {
	return NewDispatcher(gotify, icons, cursor, logger.Nop())
}

// ── Process ──────────────────────────────────────────────────────────────────

func TestDispatcher_Process_SkipsSeenAndAdvancesOnce(t *testing.T) {
	gotify := &spyGotify{}
	icons := &spyIconCache{}
	cursor := &spyCursor{current: 4}
	d := newTestDispatcher(gotify, icons, cursor)

	batch := []models.Message{
		{ID: 5, Title: "five", Body: "b5"},
		{ID: 3, Title: "three", Body: "b3"},
		{ID: 9, Title: "nine", Body: "b9"},
		{ID: 1, Title: "one", Body: "b1"},
	}

	d.Process(context.Background(), batch)

	// обрабатываются только id > 4, то есть {5, 9}
	assert.Equal(t, 2, gotify.count())
	assert.Equal(t, int64(1), cursor.advanceCalls.Load(), "Advance должен вызываться ровно один раз на батч")
	assert.Equal(t, int64(9), cursor.lastMaxID.Load())
}

func TestDispatcher_Process_EmptyBatch(t *testing.T) {
	gotify := &spyGotify{}
	cursor := &spyCursor{}
	d := newTestDispatcher(gotify, &spyIconCache{}, cursor)

	d.Process(context.Background(), nil)

	assert.Equal(t, 0, gotify.count())
	assert.Equal(t, int64(0), cursor.advanceCalls.Load(), "пустой батч не должен двигать курсор")
}

func TestDispatcher_Process_AllSeen(t *testing.T) {
	gotify := &spyGotify{}
	cursor := &spyCursor{current: 10}
	d := newTestDispatcher(gotify, &spyIconCache{}, cursor)

	d.Process(context.Background(), []models.Message{{ID: 5}, {ID: 9}})

	assert.Equal(t, 0, gotify.count())
	assert.Equal(t, int64(0), cursor.advanceCalls.Load())
}

func TestDispatcher_Process_ForwardFailureDoesNotAbortBatch(t *testing.T) {
	gotify := &spyGotify{err: assert.AnError}
	cursor := &spyCursor{}
	d := newTestDispatcher(gotify, &spyIconCache{}, cursor)

	d.Process(context.Background(), []models.Message{{ID: 5}, {ID: 9}})

	// пуши упали, но курсор всё равно подтверждается один раз
	assert.Equal(t, int64(1), cursor.advanceCalls.Load())
	assert.Equal(t, int64(9), cursor.lastMaxID.Load())
}

func TestDispatcher_Process_IconFailureStillForwards(t *testing.T) {
	gotify := &spyGotify{}
	icons := &spyIconCache{err: assert.AnError}
	cursor := &spyCursor{}
	d := newTestDispatcher(gotify, icons, cursor)

	d.Process(context.Background(), []models.Message{{ID: 5, Title: "five", Body: "b"}})

	require.Equal(t, 1, gotify.count())
	assert.Equal(t, int64(1), icons.warmCalls.Load())
}

func TestDispatcher_Process_WarmsIconPerMessage(t *testing.T) {
	gotify := &spyGotify{}
	icons := &spyIconCache{}
	cursor := &spyCursor{}
	d := newTestDispatcher(gotify, icons, cursor)

	d.Process(context.Background(), []models.Message{
		{ID: 5, Icon: "abc"},
		{ID: 9, AppID: 12},
	})

	assert.Equal(t, int64(2), icons.warmCalls.Load())
	_, ok := icons.names.Load("abc.png")
	assert.True(t, ok)
	_, ok = icons.names.Load("default_12.png")
	assert.True(t, ok)
}

func TestDispatcher_Process_TranslatesPriorityAndTitle(t *testing.T) {
	gotify := &spyGotify{}
	d := newTestDispatcher(gotify, &spyIconCache{}, &spyCursor{})

	d.Process(context.Background(), []models.Message{
		{ID: 5, App: "someapp", Body: "no title here", Priority: 1},
	})

	require.Equal(t, 1, gotify.count())
	got := gotify.pushed[0]
	assert.Equal(t, "someapp", got.Title, "без заголовка используется имя приложения")
	assert.Equal(t, "no title here", got.Message)
	assert.Equal(t, 10, got.Priority)
}

func TestDispatcher_Process_AdvanceFailureIsSwallowed(t *testing.T) {
	gotify := &spyGotify{}
	cursor := &spyCursor{err: assert.AnError}
	d := newTestDispatcher(gotify, &spyIconCache{}, cursor)

	// ошибка Advance логируется, Process не паникует и не возвращает её
	assert.NotPanics(t, func() {
		d.Process(context.Background(), []models.Message{{ID: 5}})
	})
	assert.Equal(t, 1, gotify.count())
}
