package sim

import (
	"sync"
	"sync/atomic"
)

// Score is a point-in-time view of both agents' hit counters.
type Score struct {
	Agent1 int64
	Agent2 int64
}

// Of returns the count for one agent.
func (s Score) Of(id AgentID) int64 {
	if id == Agent2 {
		return s.Agent2
	}
	return s.Agent1
}

// Leader returns the agent with more hits, or 0 on a tie.
func (s Score) Leader() AgentID {
	switch {
	case s.Agent1 > s.Agent2:
		return Agent1
	case s.Agent2 > s.Agent1:
		return Agent2
	default:
		return 0
	}
}

// Scoreboard tracks hits per agent. Counters only ever grow.
// Increment and Score are safe for concurrent use.
type Scoreboard struct {
	counts [2]atomic.Int64

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Score)
}

// NewScoreboard returns a zeroed scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{subs: make(map[int]func(Score))}
}

// Increment adds exactly one hit for id and publishes the updated score to
// all subscribers. Unknown ids are ignored.
func (b *Scoreboard) Increment(id AgentID) Score {
	if !id.Valid() {
		return b.Score()
	}
	b.counts[id.index()].Add(1)
	s := b.Score()
	b.publish(s)
	return s
}

// Score returns the current counters.
func (b *Scoreboard) Score() Score {
	return Score{
		Agent1: b.counts[0].Load(),
		Agent2: b.counts[1].Load(),
	}
}

// Subscribe registers fn to receive the score after every increment.
// The returned function removes the subscription.
func (b *Scoreboard) Subscribe(fn func(Score)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Score))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Scoreboard) publish(s Score) {
	b.mu.Lock()
	fns := make([]func(Score), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
