// Package notify keeps the transient user-facing messages (the toast strip
// of the storefront UI). Messages expire on their own after a fixed delay.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

const DefaultTTL = 5 * time.Second

type Message struct {
	ID       string   `json:"id"`
	Severity Severity `json:"type"`
	Text     string   `json:"message"`
}

type Center struct {
	ttl time.Duration
	mu  sync.Mutex
	msg []Message
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Push queues a message and schedules its expiry.
func (c *Center) Push(sev Severity, text string) Message {
	m := Message{
		ID:       uuid.NewString(),
		Severity: sev,
		Text:     text,
	}

	c.mu.Lock()
	c.msg = append(c.msg, m)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.expire(m.ID) })
	return m
}

// Active returns the messages that have not expired yet, oldest first.
func (c *Center) Active() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.msg))
	copy(out, c.msg)
	return out
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, m := range c.msg {
		if m.ID == id {
			c.msg = append(c.msg[:i], c.msg[i+1:]...)
			return
		}
	}
}
