// Package param describes engine parameters: identity, value domain, flags and
// the lock-free value storage read by the audio thread.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// ScalePoint gives a special meaning to one value of a parameter's range.
type ScalePoint struct {
	Label string
	Value float32
}

// Parameter represents an engine parameter. Values are stored normalized
// (0-1); Min/Max describe the plain domain of ranged parameters.
type Parameter struct {
	ID           uint32
	Symbol       string // stable string id, used for the port symbol
	Name         string
	ShortName    string
	Unit         string // unit label, e.g. "dB"
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	StepCount    int32   // number of discrete values, 0 for continuous
	Flags        uint32
	ScalePoints  []ScalePoint

	ranged bool

	// Atomic value for lock-free access in audio thread
	value uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)

	notify func(p *Parameter, normalized float64)
}

// Flags for parameters
const (
	CanAutomate uint32 = 1 << 0
	IsReadOnly  uint32 = 1 << 1
	IsList      uint32 = 1 << 3
	IsHidden    uint32 = 1 << 4
	IsBoolean   uint32 = 1 << 5
	IsBypass    uint32 = 1 << 16
)

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.value))
}

// SetValue sets the normalized value (0-1) without notifying listeners.
func (p *Parameter) SetValue(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	atomic.StoreUint64(&p.value, math.Float64bits(value))
}

// SetValueNotifyingHost sets the normalized value and tells the registry
// listeners that the change came from outside the engine.
func (p *Parameter) SetValueNotifyingHost(value float64) {
	p.SetValue(value)
	if p.notify != nil {
		p.notify(p, p.GetValue())
	}
}

// GetPlainValue converts normalized to plain value
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue converts plain to normalized value
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// IsRanged reports whether the parameter has an explicit plain range. Unranged
// parameters live directly in the normalized 0-1 domain.
func (p *Parameter) IsRanged() bool {
	return p.ranged
}

// IsBoolean reports whether the parameter is an on/off switch.
func (p *Parameter) IsBoolean() bool {
	return p.Flags&IsBoolean != 0
}

// IsDiscrete reports whether the parameter only takes StepCount values.
func (p *Parameter) IsDiscrete() bool {
	return p.StepCount > 0 || p.IsBoolean()
}

// IsAutomatable reports whether hosts may automate the parameter.
func (p *Parameter) IsAutomatable() bool {
	return p.Flags&CanAutomate != 0
}

// IsBypassParameter reports whether the parameter is the engine's bypass.
func (p *Parameter) IsBypassParameter() bool {
	return p.Flags&IsBypass != 0
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// HasFormatter reports whether the parameter carries its own value text.
func (p *Parameter) HasFormatter() bool {
	return p.formatFunc != nil
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	if p.IsDiscrete() {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses string to normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	parse := p.parseFunc
	if parse == nil {
		parse = func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	}

	plain, err := parse(str)
	if err != nil {
		return 0, err
	}
	return p.Normalize(plain), nil
}

// ValueStrings returns one label per discrete step, or nil when the parameter
// is continuous or has no formatter of its own.
func (p *Parameter) ValueStrings() []string {
	if p.formatFunc == nil || p.StepCount < 2 {
		return nil
	}

	strs := make([]string, p.StepCount)
	for i := range strs {
		strs[i] = p.FormatValue(float64(i) / float64(p.StepCount-1))
	}
	return strs
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}
