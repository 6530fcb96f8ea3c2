package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average over the last AVG_COUNT samples and a
// per-second throughput. It is safe for concurrent use.
type Metrics struct {
	mu sync.Mutex

	avgCounter  uint8
	samples     [AVG_COUNT]float64
	filled      uint8
	msAvg       float64
	total       uint64
	accumulated float64
	window      uint32
	perSecond   float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one sample that took elapsed.
func (m *Metrics) Update(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := float64(elapsed) / float64(time.Millisecond)
	m.samples[m.avgCounter] = ms
	m.avgCounter = (m.avgCounter + 1) % AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}

	sum := 0.0
	for i := uint8(0); i < m.filled; i++ {
		sum += m.samples[i]
	}
	m.msAvg = sum / float64(m.filled)

	m.total++
	m.window++
	m.accumulated += ms
	if m.accumulated > 1000 {
		m.perSecond = float64(m.window) * 1000 / m.accumulated
		m.accumulated = 0
		m.window = 0
	}
}

// Average returns the mean of the retained samples in milliseconds.
func (m *Metrics) Average() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.msAvg
}

// Total returns the number of samples recorded since creation.
func (m *Metrics) Total() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// PerSecond is the sample rate over the last full second of recorded time,
// or zero until a second has accumulated.
func (m *Metrics) PerSecond() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.perSecond
}
