package param

import (
	"math"
	"testing"
)

func TestLinearSmoother(t *testing.T) {
	s := NewSmoother(LinearSmoothing, 4)
	s.Reset(0)
	s.SetTarget(1)

	want := []float64{0.25, 0.5, 0.75, 1, 1}
	for i, w := range want {
		if got := s.Next(); math.Abs(got-w) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
	if s.IsSmoothing() {
		t.Error("smoother should settle on the target")
	}

	t.Run("Downward", func(t *testing.T) {
		s := NewSmoother(LinearSmoothing, 2)
		s.Reset(1)
		s.SetTarget(0)
		s.Next()
		if got := s.Next(); got != 0 {
			t.Errorf("second sample = %v, want 0", got)
		}
	})

	t.Run("ZeroRateJumps", func(t *testing.T) {
		s := NewSmoother(LinearSmoothing, 0)
		s.SetTarget(3)
		if s.IsSmoothing() || s.Next() != 3 {
			t.Errorf("rate 0 should jump to the target, got %v", s.Current())
		}
	})
}

func TestExponentialSmoother(t *testing.T) {
	s := NewSmoother(ExponentialSmoothing, 0.5)
	s.Reset(0)
	s.SetTarget(1)

	if got := s.Next(); got != 0.5 {
		t.Errorf("first sample = %v, want 0.5", got)
	}
	if got := s.Next(); got != 0.75 {
		t.Errorf("second sample = %v, want 0.75", got)
	}

	for i := 0; i < 100 && s.IsSmoothing(); i++ {
		s.Next()
	}
	if s.IsSmoothing() || s.Current() != 1 {
		t.Errorf("smoother did not settle: %v", s.Current())
	}
}

func TestLogarithmicSmoother(t *testing.T) {
	s := NewSmoother(LogarithmicSmoothing, 2)
	s.Reset(100)
	s.SetTarget(10000)

	if got := s.Next(); math.Abs(got-1000) > 1e-9 {
		t.Errorf("midpoint = %v, want the geometric mean 1000", got)
	}
	if got := s.Next(); math.Abs(got-10000) > 1e-6 {
		t.Errorf("end = %v, want 10000", got)
	}
	for i := 0; i < 2; i++ {
		s.Next()
	}
	if s.IsSmoothing() || s.Current() != 10000 {
		t.Errorf("smoother did not settle on the target: %v", s.Current())
	}
}

func TestSmootherThreshold(t *testing.T) {
	s := NewSmoother(LinearSmoothing, 10)
	s.Reset(1)
	s.SetTarget(1 + 1e-6)
	if s.IsSmoothing() {
		t.Error("changes below the threshold should be ignored")
	}

	s.SetThreshold(1e-9)
	s.SetTarget(1 + 1e-6)
	if !s.IsSmoothing() {
		t.Error("lower threshold should accept the change")
	}
}

func TestSmootherFill(t *testing.T) {
	s := NewSmoother(LinearSmoothing, 2)
	s.Reset(0)
	s.SetTarget(1)

	buf := make([]float32, 4)
	s.Fill(buf)
	want := []float32{0.5, 1, 1, 1}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSmoothedParameter(t *testing.T) {
	p := GainParameter(1, "Gain", -20, 20, 0).Build()
	sp := NewSmoothedParameter(p, LinearSmoothing, 0).
		SetTransform(func(db float64) float64 { return math.Pow(10, db/20) })

	if got := sp.Current(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("start = %v, want unity", got)
	}

	sp.UpdateSampleRate(1000, 4) // 4 samples
	p.SetPlainValue(20)
	if sp.Next() != sp.Current() || sp.IsSmoothing() {
		t.Error("value must not move before Sync")
	}

	sp.Sync()
	var last float64
	for i := 0; i < 4; i++ {
		last = sp.Next()
	}
	if math.Abs(last-10) > 1e-9 {
		t.Errorf("after 4 samples = %v, want 10", last)
	}

	t.Run("Snap", func(t *testing.T) {
		p.SetPlainValue(-20)
		sp.Snap()
		if math.Abs(sp.Current()-0.1) > 1e-9 || sp.IsSmoothing() {
			t.Errorf("Snap = %v, want 0.1", sp.Current())
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		sp.SetSmoothing(false)
		p.SetPlainValue(0)
		sp.Sync()
		if math.Abs(sp.Next()-1) > 1e-9 {
			t.Errorf("disabled smoothing should follow immediately, got %v", sp.Current())
		}
	})
}

func TestSmoothedParameterExponentialRate(t *testing.T) {
	sp := NewSmoothedParameter(MixParameter(1, "Mix").Build(), ExponentialSmoothing, 0)
	sp.UpdateSampleRate(48000, 10)

	want := math.Exp(-6.908 / 480)
	if got := sp.smoother.rate; math.Abs(got-want) > 1e-12 {
		t.Errorf("rate = %v, want %v", got, want)
	}

	sp.UpdateSampleRate(48000, 0)
	if sp.smoother.rate != 0 {
		t.Errorf("zero time should give rate 0, got %v", sp.smoother.rate)
	}
}

func TestParameterSmoother(t *testing.T) {
	gain := GainParameter(1, "Gain", -20, 20, 0).Build()
	mix := MixParameter(2, "Mix").Build()

	ps := NewParameterSmoother()
	ps.Add(gain, LinearSmoothing, 0)
	ps.Add(mix, LinearSmoothing, 0)
	ps.UpdateSampleRate(1000, 2)

	gain.SetPlainValue(10)
	mix.SetPlainValue(0)
	ps.Sync()

	if got := ps.Next(1); got != 5 {
		t.Errorf("gain midpoint = %v, want 5", got)
	}
	if got := ps.Next(2); got != 50 {
		t.Errorf("mix midpoint = %v, want 50", got)
	}
	if ps.Next(99) != 0 {
		t.Error("unknown id should read 0")
	}

	ps.Snap()
	if sp, _ := ps.Get(1); sp.Current() != 10 {
		t.Errorf("Snap left gain at %v", sp.Current())
	}

	ps.SetSmoothing(2, false)
	mix.SetPlainValue(100)
	ps.Sync()
	if got := ps.Next(2); got != 100 {
		t.Errorf("unsmoothed mix = %v, want 100", got)
	}

	replaced := ps.Add(gain, ExponentialSmoothing, 0.5)
	if sp, _ := ps.Get(1); sp != replaced || len(ps.order) != 2 {
		t.Errorf("re-adding an id should replace its smoother, have %d", len(ps.order))
	}
}
