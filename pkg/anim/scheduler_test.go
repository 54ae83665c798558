package anim

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func fixedClock(now *time.Time) SchedulerOption {
	return WithClock(func() time.Time { return *now })
}

func TestScheduler_RunsGroupsInOrder(t *testing.T) {
	now := t0
	s := NewScheduler(fixedClock(&now))
	wakes := 0
	s.SetWakeFunc(func() { wakes++ })

	a, b := &prop{}, &prop{}
	var order []string
	g1 := NewGroup(GroupDuration(100 * time.Millisecond)).Add(NewTween(a.get, a.set, Const(10)))
	g1.OnEnd(func() { order = append(order, "g1") })
	g2 := NewGroup(GroupDuration(100 * time.Millisecond)).Add(NewTween(b.get, b.set, Const(10)))
	g2.OnEnd(func() { order = append(order, "g2") })

	assert.Equal(t, Idle, s.State())
	s.Enqueue(g1)
	s.Enqueue(g2)
	assert.Equal(t, Animating, s.State())
	assert.Equal(t, 1, wakes)
	assert.Equal(t, g1, s.Current())
	assert.Equal(t, 1, len(s.Queued()))
	assert.False(t, g2.Started())

	assert.True(t, s.Tick(t0.Add(50*time.Millisecond)))
	assert.Equal(t, 0.0, b.v, "second group waits for the first")

	assert.True(t, s.Tick(t0.Add(100*time.Millisecond)))
	assert.Equal(t, 10.0, a.v)
	assert.Equal(t, g2, s.Current())
	assert.Equal(t, []string{"g1"}, order)

	assert.False(t, s.Tick(t0.Add(200*time.Millisecond)))
	assert.Equal(t, 10.0, b.v)
	assert.Equal(t, []string{"g1", "g2"}, order)
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_InstantGroupCompletesInEnqueue(t *testing.T) {
	now := t0
	s := NewScheduler(fixedClock(&now))
	woke := false
	s.SetWakeFunc(func() { woke = true })
	p := &prop{}
	s.Enqueue(NewGroup().Add(NewTween(p.get, p.set, Const(3))))
	assert.Equal(t, 3.0, p.v)
	assert.Equal(t, Idle, s.State())
	assert.False(t, woke)
	s.Enqueue(nil)
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_EnqueueFromCallback(t *testing.T) {
	now := t0
	s := NewScheduler(fixedClock(&now))
	p := &prop{}
	second := NewGroup().Add(NewTween(p.get, p.set, Const(2)))
	first := NewGroup().Add(NewTween(p.get, p.set, Const(1)))
	first.OnEnd(func() { s.Enqueue(second) })
	s.Enqueue(first)
	assert.Equal(t, 2.0, p.v)
	assert.True(t, second.Done())
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_Flush(t *testing.T) {
	now := t0
	s := NewScheduler(fixedClock(&now))
	a, b := &prop{}, &prop{}
	s.Enqueue(NewGroup(GroupDuration(time.Second)).Add(NewTween(a.get, a.set, Const(1))))
	s.Enqueue(NewGroup(GroupDuration(time.Second), GroupDelay(time.Second)).Add(NewTween(b.get, b.set, Const(2))))
	s.Flush()
	assert.Equal(t, 1.0, a.v)
	assert.Equal(t, 2.0, b.v)
	assert.Equal(t, Idle, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "animating", Animating.String())
	assert.Equal(t, "unknown", State(9).String())
}
