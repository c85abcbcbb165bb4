// Package broadcast periodically recomputes the prayer board and pushes
// it to in-mosque display screens over MQTT.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

const (
	DefaultTopic    = "takmir/prayer-times"
	DefaultInterval = time.Hour
)

// BoardSource produces the current prayer board.
type BoardSource interface {
	Board(ctx context.Context) timings.Result
}

// Message is the payload published on every refresh.
type Message struct {
	Type        string         `json:"type"`
	GeneratedAt time.Time      `json:"generated_at"`
	Board       timings.Result `json:"board"`
}

type Refresher struct {
	source   BoardSource
	pub      Publisher
	topic    string
	interval time.Duration
	now      func() time.Time

	kick chan struct{}

	mu   sync.RWMutex
	last *Message
}

// NewRefresher builds a refresher. pub may be nil, in which case boards are
// computed and kept but not published.
func NewRefresher(source BoardSource, pub Publisher, topic string, interval time.Duration) *Refresher {
	if topic == "" {
		topic = DefaultTopic
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher{
		source:   source,
		pub:      pub,
		topic:    topic,
		interval: interval,
		now:      time.Now,
		kick:     make(chan struct{}, 1),
	}
}

// Run refreshes once immediately and then on every tick until ctx is done.
// A single goroutine drives the loop, so refreshes never overlap.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refreshAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Prayer time refresher stopped")
			return
		case <-ticker.C:
			r.refreshAndLog(ctx)
		case <-r.kick:
			r.refreshAndLog(ctx)
			ticker.Reset(r.interval)
		}
	}
}

func (r *Refresher) refreshAndLog(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil {
		log.Error().Err(err).Str("topic", r.topic).Msg("Failed to publish prayer times")
	}
}

// Trigger asks Run for an early refresh. It never blocks; requests made
// while one is already pending are merged.
func (r *Refresher) Trigger() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

// Refresh computes the board and publishes it once.
func (r *Refresher) Refresh(ctx context.Context) error {
	msg := Message{
		Type:        "prayer_times",
		GeneratedAt: r.now().UTC(),
		Board:       r.source.Board(ctx),
	}

	r.mu.Lock()
	r.last = &msg
	r.mu.Unlock()

	log.Debug().Str("source", msg.Board.Source).Str("date", msg.Board.Date).Msg("Prayer times refreshed")

	if r.pub == nil {
		return nil
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode prayer times: %w", err)
	}
	return r.pub.Publish(r.topic, payload)
}

// Last returns the most recent refresh, if any.
func (r *Refresher) Last() (Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return Message{}, false
	}
	return *r.last, true
}
