package plugin

import (
	"fmt"
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
	"github.com/justyntemme/lv2go/pkg/framework/process"
	"github.com/justyntemme/lv2go/pkg/lv2"
)

// Adapter is one plugin instance as seen by an LV2 host. The host drives it
// serially: Instantiate, ConnectPort, Activate, Run..., Deactivate, Destroy.
type Adapter struct {
	shape  *shape
	engine Engine
	mirror *mirror
	log    *lv2.Logger

	bypassed    BypassProcessor
	acceptsMidi bool

	// notesOff is set by a reset trigger and consumed by the next block
	// that reaches the engine
	notesOff bool
	runTime  *debug.Measurement

	sampleRate float64
	blockSize  int

	ports struct {
		audioIns  []*float32
		audioOuts []*float32
		controls  []*float32
		enabled   *float32
		reset     *float32
		freeWheel *float32
		latency   *float32
	}

	view *bufferView
	ctx  *process.Context
}

// Instantiate negotiates host features, builds the engine and validates its
// shape. Failures are logged through the host log when one was offered.
func Instantiate(p Plugin, cfg Config, sampleRate float64, bundlePath string, features []lv2.Feature) (*Adapter, error) {
	var (
		logger  = &lv2.Logger{}
		uridMap lv2.URIDMap
		options []lv2.Option
	)

	missing := lv2.QueryFeatures(features,
		lv2.FeatureQuery{URI: lv2.LogURI, Found: func(data interface{}) {
			if l, ok := data.(lv2.Log); ok {
				logger.Log = l
			}
		}},
		lv2.FeatureQuery{URI: lv2.OptionsURI, Required: true, Found: func(data interface{}) {
			options, _ = data.([]lv2.Option)
		}},
		lv2.FeatureQuery{URI: lv2.URIDMapURI, Required: true, Found: func(data interface{}) {
			uridMap, _ = data.(lv2.URIDMap)
		}},
	)
	logger.SetMap(uridMap)

	if missing != "" {
		err := fmt.Errorf("%w: %s", ErrMissingFeature, missing)
		logger.Errorf("%v", err)
		return nil, err
	}

	blockSize := int(lv2.NominalBlockLength(options, uridMap))
	if blockSize <= 0 {
		err := fmt.Errorf("%w: %s", ErrMissingOption, lv2.NominalBlockLengthURI)
		logger.Errorf("%v", err)
		return nil, err
	}

	s, err := newShape(p, cfg, sampleRate, blockSize)
	if err != nil {
		logger.Errorf("%v", err)
		return nil, err
	}

	a := &Adapter{
		shape:      s,
		engine:     s.engine,
		mirror:     newMirror(s),
		log:        logger,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		runTime:    debug.DefaultProfiler.Section(s.engine.Name() + " run"),
	}
	a.bypassed, _ = s.engine.(BypassProcessor)
	a.acceptsMidi = s.engine.AcceptsMidi()
	a.ports.audioIns = make([]*float32, s.inputs)
	a.ports.audioOuts = make([]*float32, s.outputs)
	a.ports.controls = make([]*float32, len(s.controls))

	logger.Tracef("instantiated %q from %s: %d ports", s.engine.Name(), bundlePath, s.table.Count())
	return a, nil
}

// PortTable returns the port layout of the instance.
func (a *Adapter) PortTable() lv2.PortTable {
	return a.shape.table
}

// Engine returns the wrapped engine.
func (a *Adapter) Engine() Engine {
	return a.engine
}

// ConnectPort binds port memory. Indices outside the port table are ignored.
func (a *Adapter) ConnectPort(index uint32, data unsafe.Pointer) {
	ptr := (*float32)(data)

	role, n := a.shape.table.Lookup(index)
	switch role {
	case lv2.RoleAudioInput:
		a.ports.audioIns[n] = ptr
	case lv2.RoleAudioOutput:
		a.ports.audioOuts[n] = ptr
	case lv2.RoleEnabled:
		a.ports.enabled = ptr
	case lv2.RoleReset:
		a.ports.reset = ptr
	case lv2.RoleFreeWheel:
		a.ports.freeWheel = ptr
	case lv2.RoleLatency:
		a.ports.latency = ptr
	case lv2.RoleControl:
		a.ports.controls[n] = ptr
	}
}

// Activate prepares the engine and allocates everything Run needs.
func (a *Adapter) Activate() {
	if err := a.engine.Prepare(a.sampleRate, a.blockSize); err != nil {
		a.log.Warningf("prepare %q: %v", a.engine.Name(), err)
	}
	a.engine.SetPlayConfig(a.shape.inputs, a.shape.outputs, a.sampleRate, a.blockSize)

	a.view = newBufferView(a.shape.inputs, a.shape.outputs)
	a.ctx = process.NewContext(a.blockSize, a.engine.Parameters())
	a.ctx.SampleRate = a.sampleRate
}

// Run processes one block of sampleCount frames. It never allocates.
func (a *Adapter) Run(sampleCount uint32) {
	start := debug.DefaultProfiler.Begin()
	defer debug.DefaultProfiler.End(a.runTime, start)

	if a.ports.reset != nil && *a.ports.reset > 0.5 {
		a.engine.Reset()
		a.notesOff = a.acceptsMidi
	}

	if a.ports.freeWheel != nil {
		a.engine.SetNonRealtime(*a.ports.freeWheel > 0.5)
	}

	if a.ports.latency != nil {
		*a.ports.latency = float32(a.engine.LatencySamples())
	}

	// pre-roll: hosts run zero frames to refresh output control ports
	if sampleCount == 0 {
		return
	}

	a.mirror.sync(a.ports.enabled, a.ports.controls)

	n := int(sampleCount)
	a.view.prepare(a.ports.audioIns, a.ports.audioOuts, n)

	a.ctx.Events.Clear()
	if a.notesOff {
		a.ctx.Events.AllNotesOff(0)
		a.notesOff = false
	}
	a.ctx.Bind(a.view.channels, a.shape.inputs, a.shape.outputs, n)

	lock := a.engine.CallbackLock()
	lock.Lock()
	defer lock.Unlock()

	switch {
	case a.engine.IsSuspended():
		a.view.silence()
	case a.ports.enabled == nil || *a.ports.enabled > 0.5:
		a.engine.Process(a.ctx)
	case a.bypassed != nil:
		a.bypassed.ProcessBypassed(a.ctx)
	default:
		a.engine.Process(a.ctx)
	}
}

// Deactivate frees the buffer view and releases the engine. It is safe
// without a preceding Activate.
func (a *Adapter) Deactivate() {
	if debug.DefaultProfiler.IsEnabled() && a.runTime.Count() > 0 {
		a.log.Notef("%s, load %.1f%%", a.runTime, a.runTime.Load(debug.BlockPeriod(a.blockSize, a.sampleRate)))
	}
	a.view = nil
	a.ctx = nil
	a.engine.Release()
}

// Destroy drops the engine and all port bindings.
func (a *Adapter) Destroy() {
	a.view = nil
	a.ctx = nil
	a.engine = nil
	a.mirror = nil
	a.bypassed = nil
	a.ports.audioIns = nil
	a.ports.audioOuts = nil
	a.ports.controls = nil
	a.ports.enabled, a.ports.reset, a.ports.freeWheel, a.ports.latency = nil, nil, nil, nil
}
