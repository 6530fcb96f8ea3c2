package core

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		require.NoError(t, SetLogLevel("info"))
	})

	require.NoError(t, SetLogLevel("error"))
	LogInfo("hidden %d", 1)
	assert.Empty(t, buf.String())

	LogError("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	assert.Error(t, SetLogLevel("loud"))
}

func TestClock(t *testing.T) {
	c := NewClock()
	assert.False(t, c.IsRunning())
	c.Update()
	assert.Zero(t, c.Elapsed(), "update on a stopped clock is a no-op")

	c.Start()
	assert.True(t, c.IsRunning())
	time.Sleep(2 * time.Millisecond)
	c.Stop()
	assert.False(t, c.IsRunning())

	elapsed := c.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 2*time.Millisecond)
	assert.InDelta(t, elapsed.Seconds(), c.ElapsedSeconds(), 1e-12)

	c.Update()
	assert.Equal(t, elapsed, c.Elapsed(), "stopped clock keeps its last reading")
}

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	m.Update(2 * time.Millisecond)
	m.Update(4 * time.Millisecond)
	assert.InDelta(t, 3.0, m.Average(), 1e-9)
	assert.Equal(t, uint64(2), m.Total())
	assert.Zero(t, m.PerSecond())

	// Older samples fall out of the window.
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(10 * time.Millisecond)
	}
	assert.InDelta(t, 10.0, m.Average(), 1e-9)
	assert.Equal(t, uint64(AVG_COUNT)+2, m.Total())
}

func TestMetricsPerSecond(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 4; i++ {
		m.Update(300 * time.Millisecond)
	}
	assert.InDelta(t, 4*1000.0/1200.0, m.PerSecond(), 1e-9)
}

func TestMetricsConcurrentUpdates(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Update(time.Millisecond)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(800), m.Total())
	assert.InDelta(t, 1.0, m.Average(), 1e-9)
}

func TestBackoff(t *testing.T) {
	var b Backoff
	assert.False(t, b.IsYielding())
	for i := 0; i < 16 && !b.IsYielding(); i++ {
		b.Wait()
	}
	assert.True(t, b.IsYielding())
	b.Wait()

	b.Reset()
	assert.False(t, b.IsYielding())
}

func TestSpinLock(t *testing.T) {
	var l SpinLock
	require.True(t, l.TryLock())
	assert.False(t, l.TryLock())
	l.Unlock()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 8000, counter)
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var got []string

	first, second := "first", "second"
	record := func(handled bool) FnOnEvent {
		return func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
			got = append(got, listener.(string)+":"+data.Source)
			return handled
		}
	}

	require.True(t, bus.Register(EVENT_CODE_SCENE_LOADED, first, record(false)))
	require.True(t, bus.Register(EVENT_CODE_SCENE_LOADED, second, record(true)))
	assert.False(t, bus.Register(EVENT_CODE_SCENE_LOADED, first, record(false)), "duplicate listener")
	assert.False(t, bus.Register(EVENT_CODE_SCENE_LOADED, "third", nil))

	assert.True(t, bus.Fire(EVENT_CODE_SCENE_LOADED, nil, EventContext{Source: "a.toml"}))
	assert.Equal(t, []string{"first:a.toml", "second:a.toml"}, got)

	assert.False(t, bus.Fire(EVENT_CODE_SCENE_FAILED, nil, EventContext{Err: errors.New("x")}))

	assert.True(t, bus.Unregister(EVENT_CODE_SCENE_LOADED, second))
	assert.False(t, bus.Unregister(EVENT_CODE_SCENE_LOADED, second))
	got = nil
	assert.False(t, bus.Fire(EVENT_CODE_SCENE_LOADED, nil, EventContext{Source: "b.toml"}))
	assert.Equal(t, []string{"first:b.toml"}, got)
}
