package banner

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Kind selects the banner styling.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// DefaultTTL is how long a message stays visible after the last Show.
const DefaultTTL = 5 * time.Second

// Message is the banner content for one session.
type Message struct {
	Text      string
	Kind      Kind
	ExpiresAt time.Time
}

// Class is the CSS class of the banner element; empty when there is no message.
func (m Message) Class() string {
	if m.Text == "" {
		return ""
	}
	return "alert alert-" + string(m.Kind)
}

// Banner keeps the pending message per key. A newer Show replaces the
// pending message and restarts its lifetime; there is no queue. Take hands a
// message out once.
type Banner struct {
	mu    sync.Mutex
	ttl   time.Duration
	items *cache.Cache
	now   func() time.Time
}

// New creates a banner store whose messages live for ttl.
func New(ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Banner{
		ttl:   ttl,
		items: cache.New(ttl, 2*ttl),
		now:   time.Now,
	}
}

// WithClock replaces the time source.
func (b *Banner) WithClock(now func() time.Time) *Banner {
	b.now = now
	return b
}

// TTL returns the message lifetime.
func (b *Banner) TTL() time.Duration {
	return b.ttl
}

// Message builds a message that expires one TTL from now, for pages that
// render it in the same request.
func (b *Banner) Message(text string, kind Kind) Message {
	return Message{Text: text, Kind: kind, ExpiresAt: b.now().Add(b.ttl)}
}

// Show sets the pending message for key.
func (b *Banner) Show(key, text string, kind Kind) {
	if key == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items.Set(key, b.Message(text, kind), b.ttl)
}

// Current returns the pending message for key without consuming it, or the
// zero Message once its lifetime has elapsed.
func (b *Banner) Current(key string) Message {
	if key == "" {
		return Message{}
	}
	v, ok := b.items.Get(key)
	if !ok {
		return Message{}
	}
	return b.live(v)
}

// Take returns the pending message for key and removes it.
func (b *Banner) Take(key string) Message {
	if key == "" {
		return Message{}
	}
	b.mu.Lock()
	v, ok := b.items.Get(key)
	if ok {
		b.items.Delete(key)
	}
	b.mu.Unlock()
	if !ok {
		return Message{}
	}
	return b.live(v)
}

func (b *Banner) live(v any) Message {
	msg, ok := v.(Message)
	if !ok || !b.now().Before(msg.ExpiresAt) {
		return Message{}
	}
	return msg
}

// Remaining is how long msg stays visible from now, in whole milliseconds.
func (b *Banner) Remaining(msg Message) int64 {
	if msg.Text == "" {
		return 0
	}
	d := msg.ExpiresAt.Sub(b.now())
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}
