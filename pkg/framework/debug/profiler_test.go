package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMeasurementRecord(t *testing.T) {
	p := NewProfiler()
	m := p.Section("run")

	m.Record(3 * time.Millisecond)
	m.Record(1 * time.Millisecond)
	m.Record(2 * time.Millisecond)

	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
	if m.Min() != time.Millisecond {
		t.Errorf("Min() = %v, want 1ms", m.Min())
	}
	if m.Max() != 3*time.Millisecond {
		t.Errorf("Max() = %v, want 3ms", m.Max())
	}
	if m.Last() != 2*time.Millisecond {
		t.Errorf("Last() = %v, want 2ms", m.Last())
	}
	if m.Average() != 2*time.Millisecond {
		t.Errorf("Average() = %v, want 2ms", m.Average())
	}

	m.Reset()
	if m.Count() != 0 || m.Average() != 0 {
		t.Errorf("Reset left %s", m)
	}
}

func TestProfilerSection(t *testing.T) {
	p := NewProfiler()
	if p.Section("a") != p.Section("a") {
		t.Error("Section should return the same measurement for a name")
	}
	if p.Section("a") == p.Section("b") {
		t.Error("distinct names share a measurement")
	}
}

func TestProfilerDisabled(t *testing.T) {
	p := NewProfiler()
	m := p.Section("run")

	if p.IsEnabled() {
		t.Fatal("profiler should start disabled")
	}
	start := p.Begin()
	if !start.IsZero() {
		t.Error("Begin should return the zero time while disabled")
	}
	p.End(m, start)
	if m.Count() != 0 {
		t.Errorf("disabled profiler recorded %d timings", m.Count())
	}

	p.SetEnabled(true)
	p.End(m, p.Begin())
	if m.Count() != 1 {
		t.Errorf("enabled profiler recorded %d timings, want 1", m.Count())
	}
	p.End(nil, p.Begin())
}

func TestProfilerDoesNotAllocate(t *testing.T) {
	p := NewProfiler()
	p.SetEnabled(true)
	m := p.Section("run")

	allocs := testing.AllocsPerRun(100, func() {
		p.End(m, p.Begin())
	})
	if allocs != 0 {
		t.Errorf("Begin/End allocated %v times", allocs)
	}
}

func TestProfilerReport(t *testing.T) {
	p := NewProfiler()

	var buf bytes.Buffer
	if err := p.Report(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No measurements") {
		t.Errorf("empty report = %q", buf.String())
	}

	p.Section("first").Record(time.Millisecond)
	p.Section("second").Record(time.Millisecond)
	buf.Reset()
	if err := p.Report(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "first: 1 calls") || !strings.HasPrefix(lines[1], "second:") {
		t.Errorf("report = %q", buf.String())
	}

	p.Reset()
	if p.Section("first").Count() != 0 {
		t.Error("Reset should clear every section")
	}
}

func TestLoad(t *testing.T) {
	m := NewProfiler().Section("run")
	m.Record(250 * time.Millisecond)

	period := BlockPeriod(48000, 48000)
	if period != time.Second {
		t.Fatalf("BlockPeriod(48000, 48000) = %v, want 1s", period)
	}
	if got := m.Load(period); got != 25 {
		t.Errorf("Load() = %v, want 25", got)
	}
	if m.Load(0) != 0 || BlockPeriod(64, 0) != 0 {
		t.Error("zero period or rate should give zero")
	}
}
