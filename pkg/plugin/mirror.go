package plugin

import (
	"math"

	"github.com/justyntemme/lv2go/pkg/framework/param"
)

// mirrorSlot ties one engine parameter to the port it is read from.
type mirrorSlot struct {
	param  *param.Parameter
	ranged bool

	// control is the position among control ports, or -1 for the bypass
	// slot which reads the inverted enabled port.
	control int
}

// mirror keeps the last value seen for every parameter so a steady port is
// not pushed to the engine on every block.
type mirror struct {
	slots []mirrorSlot
	cache []float32
}

func newMirror(s *shape) *mirror {
	m := &mirror{
		slots: make([]mirrorSlot, len(s.params)),
		cache: make([]float32, len(s.params)),
	}

	control := 0
	for i, p := range s.params {
		slot := mirrorSlot{param: p, ranged: p.IsRanged(), control: -1}
		if p != s.bypass {
			slot.control = control
			control++
		}
		m.slots[i] = slot
		m.cache[i] = slot.engineValue()
	}
	return m
}

// engineValue reads the parameter in the domain its port carries: plain for
// ranged parameters, normalized otherwise.
func (s mirrorSlot) engineValue() float32 {
	if s.ranged {
		return float32(s.param.GetPlainValue())
	}
	return float32(s.param.GetValue())
}

// sync reads every bound port and pushes changed values to the engine. It
// returns the number of pushes.
func (m *mirror) sync(enabled *float32, controls []*float32) int {
	pushed := 0
	for i, slot := range m.slots {
		var value float32
		if slot.control < 0 {
			if enabled == nil {
				continue
			}
			value = 1 - *enabled
		} else {
			port := controls[slot.control]
			if port == nil {
				continue
			}
			value = *port
		}

		if approximatelyEqual(m.cache[i], value) {
			continue
		}
		m.cache[i] = value

		normalized := float64(value)
		if slot.ranged {
			normalized = slot.param.Normalize(normalized)
		}
		slot.param.SetValueNotifyingHost(normalized)
		pushed++
	}
	return pushed
}

// approximatelyEqual compares with an absolute tolerance of the smallest
// normal float32 and a relative tolerance of float32 epsilon.
func approximatelyEqual(a, b float32) bool {
	const (
		epsilon = 0x1p-23  // FLT_EPSILON
		minimum = 0x1p-126 // FLT_MIN
	)

	diff := float32(math.Abs(float64(a - b)))
	if diff <= minimum {
		return true
	}
	largest := float32(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	return diff <= epsilon*largest
}
