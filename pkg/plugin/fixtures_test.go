package plugin

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/framework/bus"
	"github.com/justyntemme/lv2go/pkg/framework/param"
	fplugin "github.com/justyntemme/lv2go/pkg/framework/plugin"
	"github.com/justyntemme/lv2go/pkg/framework/process"
	"github.com/justyntemme/lv2go/pkg/lv2"
)

const (
	paramGain   uint32 = 1
	paramBypass uint32 = 2
	paramMode   uint32 = 3
)

// testEngine records what the adapter asks of it.
type testEngine struct {
	*fplugin.BaseEngine

	processed int
	resets    int
	lastCtx   *process.Context

	// onProcess runs inside Process when set
	onProcess func(ctx *process.Context)
}

func newTestEngine(inputs, outputs int32, params ...*param.Parameter) *testEngine {
	b := bus.NewBuilder().WithEventInput("Events")
	if inputs > 0 {
		b.WithAudioInput("Input", inputs)
	}
	if outputs > 0 {
		b.WithAudioOutput("Output", outputs)
	}

	return newTemplateEngine(b.MustBuild(), params...)
}

// newTemplateEngine wraps a ready-made bus layout.
func newTemplateEngine(buses *bus.Configuration, params ...*param.Parameter) *testEngine {
	e := &testEngine{BaseEngine: fplugin.NewBaseEngine("Test Engine", buses)}
	e.Parameters().Add(params...)
	e.OnReset(func() { e.resets++ })
	return e
}

func (e *testEngine) Process(ctx *process.Context) {
	e.processed++
	e.lastCtx = ctx
	if e.onProcess != nil {
		e.onProcess(ctx)
	}
}

// bypassEngine adds a dedicated bypassed path.
type bypassEngine struct {
	*testEngine
	bypassedCalls int
}

func (e *bypassEngine) ProcessBypassed(ctx *process.Context) {
	e.bypassedCalls++
}

// namedEngine offers alternate display names.
type namedEngine struct {
	*testEngine
	names []string
}

func (e *namedEngine) AlternateDisplayNames() []string {
	return e.names
}

// preferredEngine asks for a specific layout instead of all buses.
type preferredEngine struct {
	*testEngine
	in, out int
}

func (e *preferredEngine) PreferredChannels() (int, int, bool) {
	return e.in, e.out, true
}

func gainParam() *param.Parameter {
	return param.New(paramGain, "Gain").
		Symbol("gain").
		Range(-20, 20).
		Default(0).
		Unit("dB").
		Build()
}

func bypassParam() *param.Parameter {
	return param.BypassParameter(paramBypass, "Bypass").Build()
}

// stereoGain is the canonical 2-in/2-out engine with bypass and one ranged
// parameter.
func stereoGain() *testEngine {
	return newTemplateEngine(bus.NewEffectStereo(), bypassParam(), gainParam())
}

type testPlugin struct {
	info   fplugin.Info
	create func() Engine
}

func (p *testPlugin) GetInfo() fplugin.Info { return p.info }

func (p *testPlugin) CreateEngine() Engine { return p.create() }

func pluginFor(create func() Engine) *testPlugin {
	return &testPlugin{
		info: fplugin.Info{
			URI:         "https://example.com/plugins/test",
			ID:          "com.example.test",
			Name:        "Test",
			Description: "A test plugin",
			Vendor:      "Example",
			Homepage:    "https://example.com",
			Email:       "dev@example.com",
			Version:     "1.2.0",
		},
		create: create,
	}
}

func engineOf(e Engine) func() Engine {
	return func() Engine { return e }
}

// host simulates the feature set a host passes to instantiate.
type host struct {
	uridMap   *lv2.StaticMap
	blockSize int32
	options   []lv2.Option
	log       *recordingLog
}

func newHost(blockSize int32) *host {
	h := &host{uridMap: lv2.NewStaticMap(), blockSize: blockSize, log: &recordingLog{}}
	h.options = []lv2.Option{
		{
			Key:   h.uridMap.Map(lv2.NominalBlockLengthURI),
			Size:  4,
			Type:  h.uridMap.Map(lv2.AtomIntURI),
			Value: unsafe.Pointer(&h.blockSize),
		},
		{},
	}
	return h
}

func (h *host) features() []lv2.Feature {
	return []lv2.Feature{
		{URI: lv2.URIDMapURI, Data: h.uridMap},
		{URI: lv2.OptionsURI, Data: h.options},
		{URI: lv2.LogURI, Data: h.log},
	}
}

type recordingLog struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLog) Printf(typ lv2.URID, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf("%d:%s", typ, msg))
}

func (l *recordingLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// ports owns the memory the host connects.
type ports struct {
	ins, outs [][]float32
	enabled   float32
	reset     float32
	freeWheel float32
	latency   float32
	controls  []float32
}

// connectAll allocates and connects every port of a. Audio buffers get one
// extra sentinel sample past n.
func connectAll(a *Adapter, n int) *ports {
	t := a.PortTable()
	p := &ports{
		ins:      make([][]float32, t.Inputs),
		outs:     make([][]float32, t.Outputs),
		enabled:  1,
		controls: make([]float32, t.Controls),
	}

	for i := range p.ins {
		p.ins[i] = make([]float32, n+1)
	}
	for i := range p.outs {
		p.outs[i] = make([]float32, n+1)
	}
	for i, prm := range a.shape.controls {
		if prm.IsRanged() {
			p.controls[i] = float32(prm.GetPlainValue())
		} else {
			p.controls[i] = float32(prm.GetValue())
		}
	}

	for _, e := range t.Entries() {
		var ptr unsafe.Pointer
		switch e.Role {
		case lv2.RoleAudioInput:
			ptr = unsafe.Pointer(&p.ins[e.N][0])
		case lv2.RoleAudioOutput:
			ptr = unsafe.Pointer(&p.outs[e.N][0])
		case lv2.RoleEnabled:
			ptr = unsafe.Pointer(&p.enabled)
		case lv2.RoleReset:
			ptr = unsafe.Pointer(&p.reset)
		case lv2.RoleFreeWheel:
			ptr = unsafe.Pointer(&p.freeWheel)
		case lv2.RoleLatency:
			ptr = unsafe.Pointer(&p.latency)
		case lv2.RoleControl:
			ptr = unsafe.Pointer(&p.controls[e.N])
		}
		a.ConnectPort(e.Index, ptr)
	}
	return p
}
