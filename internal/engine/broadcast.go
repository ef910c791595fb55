// internal/engine/broadcast.go
package engine

import (
	"sync"

	"github.com/seasaltgame/seasalt/internal/models"
)

// Event is a state-changed notification carrying the new game snapshot.
type Event struct {
	Game *models.Game `json:"game"`
}

// Broadcaster fans events out to any number of listeners. Delivery is
// best-effort: a listener that stops draining its channel loses events
// instead of blocking the mutation that produced them.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener and returns its id with the event channel.
func (b *Broadcaster) Subscribe() (int, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broadcaster) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers an event to every listener without blocking.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
