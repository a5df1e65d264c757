package debug

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler collects timing statistics for named sections. Sections are
// created off the audio thread; Begin, End and Record never lock or allocate.
type Profiler struct {
	mu       sync.Mutex
	sections map[string]*Measurement
	order    []string
	enabled  atomic.Bool
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	name  string
	count atomic.Int64
	total atomic.Int64 // nanoseconds
	min   atomic.Int64
	max   atomic.Int64
	last  atomic.Int64
}

// DefaultProfiler is the global profiler instance. It starts disabled.
var DefaultProfiler = NewProfiler()

// NewProfiler creates a disabled profiler.
func NewProfiler() *Profiler {
	return &Profiler{sections: make(map[string]*Measurement)}
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled.Load()
}

// Section returns the measurement called name, creating it on first use.
func (p *Profiler) Section(name string) *Measurement {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.sections[name]
	if !ok {
		m = &Measurement{name: name}
		p.sections[name] = m
		p.order = append(p.order, name)
	}
	return m
}

// Begin starts timing. It returns the zero time while profiling is disabled.
func (p *Profiler) Begin() time.Time {
	if !p.enabled.Load() {
		return time.Time{}
	}
	return time.Now()
}

// End records the time since start in m. A zero start is ignored.
func (p *Profiler) End(m *Measurement, start time.Time) {
	if m == nil || start.IsZero() {
		return
	}
	m.Record(time.Since(start))
}

// Reset clears every measurement but keeps the sections.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, m := range p.sections {
		m.Reset()
	}
}

// Report writes one line per section in creation order.
func (p *Profiler) Report(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.order) == 0 {
		_, err := io.WriteString(w, "No measurements recorded\n")
		return err
	}
	for _, name := range p.order {
		if _, err := fmt.Fprintln(w, p.sections[name]); err != nil {
			return err
		}
	}
	return nil
}

// Record adds one timing.
func (m *Measurement) Record(elapsed time.Duration) {
	ns := int64(elapsed)
	if m.count.Add(1) == 1 {
		m.min.Store(ns)
	}
	m.total.Add(ns)
	m.last.Store(ns)

	for {
		cur := m.min.Load()
		if ns >= cur || m.min.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := m.max.Load()
		if ns <= cur || m.max.CompareAndSwap(cur, ns) {
			break
		}
	}
}

// Reset clears the statistics.
func (m *Measurement) Reset() {
	m.count.Store(0)
	m.total.Store(0)
	m.min.Store(0)
	m.max.Store(0)
	m.last.Store(0)
}

// Name returns the section name.
func (m *Measurement) Name() string { return m.name }

// Count returns how many timings were recorded.
func (m *Measurement) Count() int64 { return m.count.Load() }

// Min returns the shortest timing.
func (m *Measurement) Min() time.Duration { return time.Duration(m.min.Load()) }

// Max returns the longest timing.
func (m *Measurement) Max() time.Duration { return time.Duration(m.max.Load()) }

// Last returns the most recent timing.
func (m *Measurement) Last() time.Duration { return time.Duration(m.last.Load()) }

// Average returns the mean timing.
func (m *Measurement) Average() time.Duration {
	n := m.count.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(m.total.Load() / n)
}

// Load returns the average timing as a percentage of period, the CPU load of
// an audio callback that must finish within one block.
func (m *Measurement) Load(period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(m.Average()) / float64(period) * 100
}

// String formats the statistics on one line.
func (m *Measurement) String() string {
	return fmt.Sprintf("%s: %d calls, avg %v, min %v, max %v, last %v",
		m.name, m.Count(), m.Average(), m.Min(), m.Max(), m.Last())
}

// BlockPeriod returns the real time available to process frames samples.
func BlockPeriod(frames int, sampleRate float64) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(frames) / sampleRate * float64(time.Second))
}

// EnableProfiling enables the default profiler.
func EnableProfiling() {
	DefaultProfiler.SetEnabled(true)
}

// DisableProfiling disables the default profiler.
func DisableProfiling() {
	DefaultProfiler.SetEnabled(false)
}
