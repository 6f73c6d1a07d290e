package tui

import (
	"sync"

	"hospitalfood/internal/client/lifecycle"
)

// NoticeBoard keeps the latest coordinator notice until the view picks it up.
type NoticeBoard struct {
	mu      sync.Mutex
	level   lifecycle.Level
	message string
}

func (b *NoticeBoard) Notify(level lifecycle.Level, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
	b.message = message
}

// Take returns the latest notice and clears it.
func (b *NoticeBoard) Take() (lifecycle.Level, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.message == "" {
		return 0, "", false
	}
	level, message := b.level, b.message
	b.message = ""
	return level, message, true
}
