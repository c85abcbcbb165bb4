package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/takmir/internal/model"
	"github.com/Nixie-Tech-LLC/takmir/internal/timings"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSource) Board(context.Context) timings.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return timings.Result{
		Source: timings.SourceAPI,
		Date:   "2026-03-01",
		Method: 20,
		Prayers: []model.Prayer{
			{ID: 1, Name: "Subuh", Time: "04:45", Status: model.StatusCurrent},
		},
	}
}

func (s *countingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return p.err
}

func (p *recordingPublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func TestRefresh_PublishesBoard(t *testing.T) {
	src := &countingSource{}
	pub := &recordingPublisher{}
	r := NewRefresher(src, pub, "", 0)

	require.NoError(t, r.Refresh(context.Background()))

	require.Equal(t, 1, pub.Count())
	assert.Equal(t, DefaultTopic, pub.topics[0])

	var msg Message
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, "prayer_times", msg.Type)
	assert.Equal(t, timings.SourceAPI, msg.Board.Source)
	assert.Equal(t, "Subuh", msg.Board.Prayers[0].Name)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "2026-03-01", last.Board.Date)
}

func TestRefresh_PublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("not connected")}
	r := NewRefresher(&countingSource{}, pub, "screens/board", time.Minute)

	err := r.Refresh(context.Background())
	assert.ErrorContains(t, err, "not connected")
	_, ok := r.Last()
	assert.True(t, ok, "board is kept even when publishing fails")
}

func TestRefresh_NoPublisher(t *testing.T) {
	r := NewRefresher(&countingSource{}, nil, "", 0)
	assert.NoError(t, r.Refresh(context.Background()))
}

func TestRun_RefreshesOnStartAndTicks(t *testing.T) {
	src := &countingSource{}
	pub := &recordingPublisher{}
	r := NewRefresher(src, pub, "", 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pub.Count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
	assert.GreaterOrEqual(t, src.Calls(), 3)
}

func TestLast_Empty(t *testing.T) {
	_, ok := NewRefresher(&countingSource{}, nil, "", 0).Last()
	assert.False(t, ok)
}

func TestTrigger_RefreshesEarly(t *testing.T) {
	pub := &recordingPublisher{}
	r := NewRefresher(&countingSource{}, pub, "", time.Hour)

	// Pending triggers merge into one.
	r.Trigger()
	r.Trigger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	assert.Eventually(t, func() bool { return pub.Count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return pub.Count() > 2 }, 50*time.Millisecond, 5*time.Millisecond)
}
