// internal/engine/broadcast_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterFansOut(t *testing.T) {
	b := NewBroadcaster()
	id1, ch1 := b.Subscribe()
	id2, ch2 := b.Subscribe()
	defer b.Unsubscribe(id1)
	defer b.Unsubscribe(id2)

	b.Publish(Event{})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestBroadcasterNeverBlocksOnStalledListener(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	// Publish past the buffer without draining; overflow is dropped.
	for i := 0; i < 40; i++ {
		b.Publish(Event{})
	}
	assert.Equal(t, cap(ch), len(ch))
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()

	b.Unsubscribe(id)
	_, open := <-ch
	require.False(t, open)

	// Unsubscribing twice is harmless.
	b.Unsubscribe(id)
}
