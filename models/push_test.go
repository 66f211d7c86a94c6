package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePriority(t *testing.T) {
	tests := []struct {
		name   string
		origin int
		want   int
	}{
		{name: "lowest становится min", origin: -2, want: 1},
		{name: "low становится low", origin: -1, want: 3},
		{name: "normal становится default", origin: 0, want: 5},
		{name: "high становится max", origin: 1, want: 10},
		{name: "emergency откатывается к default", origin: 2, want: 5},
		{name: "неизвестный приоритет откатывается к default", origin: 7, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslatePriority(tt.origin))
		})
	}
}

func TestNewPushMessage(t *testing.T) {
	m := Message{ID: 5, Title: "hello", Body: "world", App: "someapp", Priority: 1}

	got := NewPushMessage(m)

	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "world", got.Message)
	assert.Equal(t, 10, got.Priority)
}

func TestNewPushMessage_TitleFallsBackToAppName(t *testing.T) {
	m := Message{ID: 5, Body: "no title", App: "someapp"}

	got := NewPushMessage(m)

	assert.Equal(t, "someapp", got.Title, "без заголовка используется имя приложения")
}

func TestMessage_IconName(t *testing.T) {
	assert.Equal(t, "abc.png", Message{Icon: "abc"}.IconName())
	assert.Equal(t, "default_42.png", Message{AppID: 42}.IconName())
}
