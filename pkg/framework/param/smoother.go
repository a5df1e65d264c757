package param

import (
	"math"
)

// SmoothingType defines different parameter smoothing algorithms.
type SmoothingType int

const (
	// LinearSmoothing uses linear interpolation
	LinearSmoothing SmoothingType = iota
	// ExponentialSmoothing uses exponential smoothing (one-pole filter)
	ExponentialSmoothing
	// LogarithmicSmoothing interpolates in log space (frequencies, linear gains)
	LogarithmicSmoothing
)

// logFloor bounds values entering log space.
const logFloor = 0.001

// Smoother provides parameter smoothing to prevent zipper noise.
type Smoother struct {
	smoothingType SmoothingType
	current       float64
	target        float64
	rate          float64
	threshold     float64
	isSmoothing   bool

	// For linear smoothing
	step float64

	// For logarithmic smoothing
	logCurrent float64
	logTarget  float64
	logStep    float64
}

// NewSmoother creates a new parameter smoother.
// rate: pole coefficient (0.9-0.999) for exponential, samples otherwise.
func NewSmoother(smoothingType SmoothingType, rate float64) *Smoother {
	return &Smoother{
		smoothingType: smoothingType,
		rate:          rate,
		threshold:     0.0001,
	}
}

// SetTarget sets the target value for smoothing. A linear or logarithmic
// smoother with a rate below one sample jumps straight to the target.
func (s *Smoother) SetTarget(target float64) {
	if math.Abs(target-s.target) < s.threshold {
		return
	}

	s.target = target
	s.isSmoothing = true

	switch s.smoothingType {
	case LinearSmoothing:
		if s.rate < 1 {
			s.Reset(target)
			return
		}
		s.step = (target - s.current) / s.rate

	case LogarithmicSmoothing:
		if s.rate < 1 {
			s.Reset(target)
			return
		}
		s.logCurrent = math.Log(math.Max(s.current, logFloor))
		s.logTarget = math.Log(math.Max(target, logFloor))
		s.logStep = (s.logTarget - s.logCurrent) / s.rate
	}
}

// Next returns the next smoothed value.
func (s *Smoother) Next() float64 {
	if !s.isSmoothing {
		return s.current
	}

	switch s.smoothingType {
	case ExponentialSmoothing:
		// One-pole filter: y = y + a * (x - y)
		s.current += (s.target - s.current) * (1.0 - s.rate)

		if math.Abs(s.current-s.target) < s.threshold {
			s.current = s.target
			s.isSmoothing = false
		}

	case LinearSmoothing:
		s.current += s.step

		if (s.step >= 0 && s.current >= s.target) || (s.step < 0 && s.current <= s.target) {
			s.current = s.target
			s.isSmoothing = false
		}

	case LogarithmicSmoothing:
		s.logCurrent += s.logStep

		if (s.logStep >= 0 && s.logCurrent >= s.logTarget) || (s.logStep < 0 && s.logCurrent <= s.logTarget) {
			s.current = s.target
			s.isSmoothing = false
		} else {
			s.current = math.Exp(s.logCurrent)
		}
	}

	return s.current
}

// Fill writes the next len(buf) smoothed values into buf.
func (s *Smoother) Fill(buf []float32) {
	for i := range buf {
		buf[i] = float32(s.Next())
	}
}

// IsSmoothing returns true if the smoother is currently smoothing.
func (s *Smoother) IsSmoothing() bool {
	return s.isSmoothing
}

// Current returns the last value without advancing.
func (s *Smoother) Current() float64 {
	return s.current
}

// Reset jumps to value and stops smoothing.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.isSmoothing = false
}

// SetRate updates the smoothing rate.
func (s *Smoother) SetRate(rate float64) {
	s.rate = rate
}

// SetThreshold sets the threshold for considering smoothing complete.
func (s *Smoother) SetThreshold(threshold float64) {
	s.threshold = threshold
}

// SmoothedParameter follows a Parameter through a Smoother. The parameter is
// written by the host side; Sync picks up its value once per block and Next
// advances one sample.
type SmoothedParameter struct {
	*Parameter
	smoother  *Smoother
	transform func(plain float64) float64
	enabled   bool
}

// NewSmoothedParameter creates a smoother starting at the parameter's value.
func NewSmoothedParameter(param *Parameter, smoothingType SmoothingType, rate float64) *SmoothedParameter {
	sp := &SmoothedParameter{
		Parameter: param,
		smoother:  NewSmoother(smoothingType, rate),
		enabled:   true,
	}
	sp.Snap()
	return sp
}

// SetTransform maps the plain value before smoothing, e.g. decibels to a
// linear factor so Next needs no per-sample conversion.
func (sp *SmoothedParameter) SetTransform(fn func(plain float64) float64) *SmoothedParameter {
	sp.transform = fn
	sp.Snap()
	return sp
}

func (sp *SmoothedParameter) target() float64 {
	v := sp.GetPlainValue()
	if sp.transform != nil {
		v = sp.transform(v)
	}
	return v
}

// Sync retargets the smoother at the parameter's current value.
func (sp *SmoothedParameter) Sync() {
	if sp.enabled {
		sp.smoother.SetTarget(sp.target())
	} else {
		sp.smoother.Reset(sp.target())
	}
}

// Snap jumps to the parameter's current value.
func (sp *SmoothedParameter) Snap() {
	sp.smoother.Reset(sp.target())
}

// Next returns the next smoothed value.
func (sp *SmoothedParameter) Next() float64 {
	return sp.smoother.Next()
}

// Fill writes the next len(buf) smoothed values into buf.
func (sp *SmoothedParameter) Fill(buf []float32) {
	sp.smoother.Fill(buf)
}

// Current returns the last smoothed value without advancing.
func (sp *SmoothedParameter) Current() float64 {
	return sp.smoother.Current()
}

// IsSmoothing returns true while the value is still moving.
func (sp *SmoothedParameter) IsSmoothing() bool {
	return sp.smoother.IsSmoothing()
}

// SetSmoothing enables or disables smoothing.
func (sp *SmoothedParameter) SetSmoothing(enabled bool) {
	sp.enabled = enabled
	if !enabled {
		sp.Snap()
	}
}

// SetSmoothingRate updates the smoothing rate.
func (sp *SmoothedParameter) SetSmoothingRate(rate float64) {
	sp.smoother.SetRate(rate)
}

// UpdateSampleRate sets the rate so a change settles in about targetTimeMs.
func (sp *SmoothedParameter) UpdateSampleRate(sampleRate float64, targetTimeMs float64) {
	samples := sampleRate * targetTimeMs / 1000.0
	switch sp.smoother.smoothingType {
	case LinearSmoothing, LogarithmicSmoothing:
		sp.SetSmoothingRate(samples)
	case ExponentialSmoothing:
		if samples <= 0 {
			sp.SetSmoothingRate(0)
			return
		}
		// -60dB in targetTimeMs
		sp.SetSmoothingRate(math.Exp(-6.908 / samples))
	}
}

// ParameterSmoother manages smoothing for multiple parameters.
type ParameterSmoother struct {
	smoothers map[uint32]*SmoothedParameter
	order     []*SmoothedParameter
}

// NewParameterSmoother creates a new parameter smoother manager.
func NewParameterSmoother() *ParameterSmoother {
	return &ParameterSmoother{
		smoothers: make(map[uint32]*SmoothedParameter),
	}
}

// Add smooths param and returns its smoother. Adding an ID twice replaces
// the first smoother.
func (ps *ParameterSmoother) Add(param *Parameter, smoothingType SmoothingType, rate float64) *SmoothedParameter {
	sp := NewSmoothedParameter(param, smoothingType, rate)
	if old, ok := ps.smoothers[param.ID]; ok {
		for i, o := range ps.order {
			if o == old {
				ps.order[i] = sp
			}
		}
	} else {
		ps.order = append(ps.order, sp)
	}
	ps.smoothers[param.ID] = sp
	return sp
}

// Get returns the SmoothedParameter for direct access.
func (ps *ParameterSmoother) Get(id uint32) (*SmoothedParameter, bool) {
	sp, ok := ps.smoothers[id]
	return sp, ok
}

// Next advances the smoother of id, or returns 0 for an unknown id.
func (ps *ParameterSmoother) Next(id uint32) float64 {
	if sp, ok := ps.smoothers[id]; ok {
		return sp.Next()
	}
	return 0
}

// Sync retargets every smoother; call it once per block.
func (ps *ParameterSmoother) Sync() {
	for _, sp := range ps.order {
		sp.Sync()
	}
}

// Snap jumps every smoother to its parameter's value.
func (ps *ParameterSmoother) Snap() {
	for _, sp := range ps.order {
		sp.Snap()
	}
}

// UpdateSampleRate rescales every smoother for a new sample rate.
func (ps *ParameterSmoother) UpdateSampleRate(sampleRate float64, targetTimeMs float64) {
	for _, sp := range ps.order {
		sp.UpdateSampleRate(sampleRate, targetTimeMs)
	}
}

// SetSmoothing enables/disables smoothing for a specific parameter.
func (ps *ParameterSmoother) SetSmoothing(id uint32, enabled bool) {
	if sp, ok := ps.smoothers[id]; ok {
		sp.SetSmoothing(enabled)
	}
}
