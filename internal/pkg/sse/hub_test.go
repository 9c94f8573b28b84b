package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTargetUser(t *testing.T) {
	h := NewHub(4)
	mine, cancelMine := h.Subscribe("1")
	defer cancelMine()
	other, cancelOther := h.Subscribe("2")
	defer cancelOther()

	n := h.Publish("1", "leave_decided", "payload")
	assert.Equal(t, 1, n)

	ev := <-mine
	assert.Equal(t, "leave_decided", ev.Event)
	assert.Equal(t, "1", ev.UserID)
	assert.Equal(t, "payload", ev.Data)
	assert.NotZero(t, ev.ID)

	select {
	case <-other:
		t.Fatal("event leaked to another user")
	default:
	}
}

func TestHub_FullStreamDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub(1)
	_, cancel := h.Subscribe("1")
	defer cancel()

	assert.Equal(t, 1, h.Publish("1", "a", nil))
	assert.Equal(t, 0, h.Publish("1", "b", nil))
	assert.Equal(t, uint64(1), h.Dropped())
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	h := NewHub(1)
	ch, cancel := h.Subscribe("1")
	require.Equal(t, 1, h.SubscriberCount("1"))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount("1"))
	assert.Equal(t, 0, h.Publish("1", "x", nil))
}

func TestHub_PublishToMany(t *testing.T) {
	h := NewHub(2)
	_, c1 := h.Subscribe("3")
	defer c1()
	_, c2 := h.Subscribe("4")
	defer c2()

	assert.Equal(t, 2, h.PublishToMany([]string{"3", "4", "5"}, "leave_pending_digest", 2))
}
