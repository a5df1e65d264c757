package param

import (
	"math"
	"testing"
)

func TestParameterValues(t *testing.T) {
	p := New(1, "Cutoff").Range(20, 20020).Default(10020).Build()

	t.Run("Clamp", func(t *testing.T) {
		p.SetValue(1.5)
		if p.GetValue() != 1 {
			t.Errorf("Expected clamp to 1, got %f", p.GetValue())
		}
		p.SetValue(-0.5)
		if p.GetValue() != 0 {
			t.Errorf("Expected clamp to 0, got %f", p.GetValue())
		}
	})

	t.Run("PlainRoundTrip", func(t *testing.T) {
		p.SetPlainValue(5020)
		if math.Abs(p.GetPlainValue()-5020) > 1e-6 {
			t.Errorf("GetPlainValue = %f, want 5020", p.GetPlainValue())
		}
		if math.Abs(p.GetValue()-0.25) > 1e-9 {
			t.Errorf("GetValue = %f, want 0.25", p.GetValue())
		}
	})

	t.Run("DefaultBeforeRange", func(t *testing.T) {
		q := New(2, "Q").Default(5).Range(0, 10).Build()
		if math.Abs(q.GetValue()-0.5) > 1e-9 {
			t.Errorf("Default resolved against range = %f, want 0.5", q.GetValue())
		}
	})

	t.Run("Unranged", func(t *testing.T) {
		u := New(3, "Amount").Build()
		if u.IsRanged() {
			t.Error("Parameter without Range should be unranged")
		}
		u.SetPlainValue(0.3)
		if math.Abs(u.GetValue()-0.3) > 1e-9 {
			t.Errorf("Unranged plain and normalized should match, got %f", u.GetValue())
		}
	})

	t.Run("DegenerateRange", func(t *testing.T) {
		d := New(4, "Fixed").Range(1, 1).Build()
		if d.Normalize(1) != 0 {
			t.Error("Degenerate range should normalize to 0")
		}
	})
}

func TestParameterFlags(t *testing.T) {
	p := New(1, "Oversampling").NotAutomatable().Build()
	if p.IsAutomatable() {
		t.Error("NotAutomatable should clear CanAutomate")
	}

	r := New(2, "Meter").ReadOnly().Build()
	if r.IsAutomatable() || r.Flags&IsReadOnly == 0 {
		t.Error("ReadOnly should set IsReadOnly and clear CanAutomate")
	}

	s := New(3, "Mode").Range(0, 2).Steps(3).
		ScalePoint("Clean", 0).
		ScalePoint("Crunch", 1).
		ScalePoint("Lead", 2).
		Build()
	if len(s.ScalePoints) != 3 || s.ScalePoints[2].Label != "Lead" {
		t.Errorf("Unexpected scale points %v", s.ScalePoints)
	}
}

func TestParameterFormatting(t *testing.T) {
	p := New(1, "Steps").Range(0, 4).Steps(5).Build()
	if got := p.FormatValue(0.5); got != "2" {
		t.Errorf("Discrete default formatting = %s, want 2", got)
	}
	if p.ValueStrings() != nil {
		t.Error("Parameter without formatter should not report value strings")
	}

	c := New(2, "Level").Range(0, 1).Build()
	if got := c.FormatValue(0.25); got != "0.25" {
		t.Errorf("Continuous default formatting = %s, want 0.25", got)
	}
	v, err := c.ParseValue("0.75")
	if err != nil || math.Abs(v-0.75) > 1e-9 {
		t.Errorf("ParseValue = %f, %v", v, err)
	}
}
