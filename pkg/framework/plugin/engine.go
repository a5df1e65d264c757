// Package plugin provides base engine functionality to reduce boilerplate in
// LV2 plugins.
package plugin

import (
	"sync"
	"sync/atomic"

	"github.com/justyntemme/lv2go/pkg/framework/bus"
	"github.com/justyntemme/lv2go/pkg/framework/param"
	"github.com/justyntemme/lv2go/pkg/framework/process"
)

// BaseEngine provides common functionality for audio engines. Embedders add
// Process and get the rest of the engine contract from here.
type BaseEngine struct {
	name   string
	params *param.Registry
	buses  *bus.Configuration

	sampleRate float64
	blockSize  int

	callbackLock sync.Mutex
	suspended    atomic.Bool
	nonRealtime  atomic.Bool
	latency      atomic.Int32

	acceptsMidi bool
	midiEffect  bool

	// Optional callbacks for customization
	onPrepare func(sampleRate float64, maxBlockSize int) error
	onRelease func()
	onReset   func()
}

// NewBaseEngine creates a new base engine with the given bus configuration
func NewBaseEngine(name string, buses *bus.Configuration) *BaseEngine {
	if buses == nil {
		buses = bus.NewEffectStereo()
	}

	return &BaseEngine{
		name:   name,
		params: param.NewRegistry(),
		buses:  buses,
	}
}

// Name returns the engine display name.
func (b *BaseEngine) Name() string {
	return b.name
}

// Buses returns the bus layout.
func (b *BaseEngine) Buses() *bus.Configuration {
	return b.buses
}

// Parameters returns the parameter registry for adding parameters
func (b *BaseEngine) Parameters() *param.Registry {
	return b.params
}

// BypassParameter returns the parameter flagged as bypass, nil if none.
func (b *BaseEngine) BypassParameter() *param.Parameter {
	return b.params.Bypass()
}

// Prepare records the playback settings and runs the OnPrepare callback.
func (b *BaseEngine) Prepare(sampleRate float64, maxBlockSize int) error {
	b.sampleRate = sampleRate
	b.blockSize = maxBlockSize

	if b.onPrepare != nil {
		return b.onPrepare(sampleRate, maxBlockSize)
	}
	return nil
}

// Release runs the OnRelease callback.
func (b *BaseEngine) Release() {
	if b.onRelease != nil {
		b.onRelease()
	}
}

// Reset runs the OnReset callback.
func (b *BaseEngine) Reset() {
	if b.onReset != nil {
		b.onReset()
	}
}

// SetPlayConfig resizes the main buses and records the playback settings.
func (b *BaseEngine) SetPlayConfig(inputs, outputs int, sampleRate float64, blockSize int) {
	b.buses.SetChannelConfig(int32(inputs), int32(outputs))
	b.sampleRate = sampleRate
	b.blockSize = blockSize
}

// SetNonRealtime marks offline (freewheel) rendering.
func (b *BaseEngine) SetNonRealtime(offline bool) {
	b.nonRealtime.Store(offline)
}

// IsNonRealtime reports whether the host is rendering offline.
func (b *BaseEngine) IsNonRealtime() bool {
	return b.nonRealtime.Load()
}

// SetSuspended suspends processing; the adapter outputs silence meanwhile.
func (b *BaseEngine) SetSuspended(suspended bool) {
	b.suspended.Store(suspended)
}

// IsSuspended reports whether processing is suspended.
func (b *BaseEngine) IsSuspended() bool {
	return b.suspended.Load()
}

// CallbackLock is held by the adapter around every Process call.
func (b *BaseEngine) CallbackLock() sync.Locker {
	return &b.callbackLock
}

// SetLatencySamples sets the reported latency. Safe to call from Process.
func (b *BaseEngine) SetLatencySamples(samples int) {
	b.latency.Store(int32(samples))
}

// LatencySamples returns the reported latency - default no latency
func (b *BaseEngine) LatencySamples() int {
	return int(b.latency.Load())
}

// SetMidiCapabilities declares the MIDI behaviour of the engine.
func (b *BaseEngine) SetMidiCapabilities(accepts, effect bool) {
	b.acceptsMidi = accepts
	b.midiEffect = effect
}

// AcceptsMidi reports whether the engine consumes MIDI.
func (b *BaseEngine) AcceptsMidi() bool { return b.acceptsMidi }

// IsMidiEffect reports whether the engine is a pure MIDI effect.
func (b *BaseEngine) IsMidiEffect() bool { return b.midiEffect }

// SampleRate returns the current sample rate
func (b *BaseEngine) SampleRate() float64 {
	return b.sampleRate
}

// BlockSize returns the maximum block size given to Prepare.
func (b *BaseEngine) BlockSize() int {
	return b.blockSize
}

// OnPrepare sets a callback for preparation
func (b *BaseEngine) OnPrepare(fn func(sampleRate float64, maxBlockSize int) error) {
	b.onPrepare = fn
}

// OnRelease sets a callback for when resources should be freed
func (b *BaseEngine) OnRelease(fn func()) {
	b.onRelease = fn
}

// OnReset sets a callback for when the engine should reset its state
func (b *BaseEngine) OnReset(fn func()) {
	b.onReset = fn
}

// SimpleEngine provides an even simpler base for basic effects
type SimpleEngine struct {
	*BaseEngine
	processFunc func(ctx *process.Context)
}

// NewSimpleEngine creates an engine with just a process function
func NewSimpleEngine(name string, buses *bus.Configuration, processFunc func(ctx *process.Context)) *SimpleEngine {
	return &SimpleEngine{
		BaseEngine:  NewBaseEngine(name, buses),
		processFunc: processFunc,
	}
}

// Process implements the audio processing
func (s *SimpleEngine) Process(ctx *process.Context) {
	if s.processFunc != nil {
		s.processFunc(ctx)
	}
}
