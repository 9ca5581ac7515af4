package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRegistrationOrder(t *testing.T) {
	target := NewTarget()
	var order []int
	target.On(KindPlayerSpawn, func(*Event) { order = append(order, 1) })
	target.On(KindPlayerSpawn, func(*Event) { order = append(order, 2) })
	target.On(KindPlayerSpawn, func(*Event) { order = append(order, 3) })

	canceled := target.Dispatch(NewEvent(KindPlayerSpawn, nil))
	assert.False(t, canceled)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestVetoableShortCircuitsOnFirstCancel(t *testing.T) {
	target := NewTarget()
	var ran []int
	target.On(KindPlayerMessage, func(e *Event) { ran = append(ran, 1) })
	target.On(KindPlayerMessage, func(e *Event) { ran = append(ran, 2); e.Cancel = true })
	target.On(KindPlayerMessage, func(e *Event) { ran = append(ran, 3) })

	ev := NewEvent(KindPlayerMessage, nil)
	require.True(t, ev.Cancelable)
	canceled := target.Dispatch(ev)
	assert.True(t, canceled)
	assert.Equal(t, []int{1, 2}, ran, "listener 3 must not run after cancellation")
}

func TestNonVetoableRunsAllRegardlessOfCancelFlag(t *testing.T) {
	target := NewTarget()
	var ran []int
	target.On(KindPlayerSpawn, func(e *Event) { ran = append(ran, 1); e.Cancel = true })
	target.On(KindPlayerSpawn, func(*Event) { ran = append(ran, 2) })

	ev := NewEvent(KindPlayerSpawn, nil)
	assert.False(t, ev.Cancelable)
	canceled := target.Dispatch(ev)
	assert.False(t, canceled)
	assert.Equal(t, []int{1, 2}, ran)
}

func TestOnceListenerFiresOnlyOnce(t *testing.T) {
	target := NewTarget()
	count := 0
	target.Once(KindPlayerSpawn, func(*Event) { count++ })

	target.Dispatch(NewEvent(KindPlayerSpawn, nil))
	target.Dispatch(NewEvent(KindPlayerSpawn, nil))
	assert.Equal(t, 1, count)
}

func TestOffRemovesListener(t *testing.T) {
	target := NewTarget()
	count := 0
	id := target.On(KindPlayerSpawn, func(*Event) { count++ })
	require.True(t, target.Off(KindPlayerSpawn, id))
	target.Dispatch(NewEvent(KindPlayerSpawn, nil))
	assert.Equal(t, 0, count)
}

func TestClearRemovesAllKinds(t *testing.T) {
	target := NewTarget()
	target.On(KindPlayerSpawn, func(*Event) {})
	target.On(KindPlayerDeath, func(*Event) {})
	target.Clear()
	assert.False(t, target.HasListeners(KindPlayerSpawn))
	assert.False(t, target.HasListeners(KindPlayerDeath))
}

func TestDispatchIsStableAgainstMidDispatchMutation(t *testing.T) {
	target := NewTarget()
	var ran []int
	var id2 ListenerID
	target.On(KindPlayerSpawn, func(*Event) {
		ran = append(ran, 1)
		target.Off(KindPlayerSpawn, id2)
		target.On(KindPlayerSpawn, func(*Event) { ran = append(ran, 99) })
	})
	id2 = target.On(KindPlayerSpawn, func(*Event) { ran = append(ran, 2) })

	target.Dispatch(NewEvent(KindPlayerSpawn, nil))
	assert.Equal(t, []int{1, 2}, ran, "listener 2 still runs since it was present when dispatch began; the newly added 99 listener must not run mid-dispatch")
}
