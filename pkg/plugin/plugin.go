// Package plugin adapts a Go audio engine to the LV2 plugin ABI and writes
// the turtle descriptor that announces it to hosts.
package plugin

import (
	"sync"

	"github.com/justyntemme/lv2go/pkg/framework/bus"
	"github.com/justyntemme/lv2go/pkg/framework/param"
	"github.com/justyntemme/lv2go/pkg/framework/plugin"
	"github.com/justyntemme/lv2go/pkg/framework/process"
)

// Plugin is the main interface that users implement
type Plugin interface {
	// GetInfo returns plugin metadata
	GetInfo() plugin.Info

	// CreateEngine creates a new engine instance. Returning nil fails
	// instantiation.
	CreateEngine() Engine
}

// Engine handles the actual audio processing
type Engine interface {
	// Name returns the display name written to doap:name
	Name() string

	// Buses returns the bus configuration; active audio buses give the
	// channel counts
	Buses() *bus.Configuration

	// Parameters returns the parameter registry in declaration order
	Parameters() *param.Registry

	// BypassParameter returns the designated bypass, nil if none
	BypassParameter() *param.Parameter

	// Prepare is called on activation with the sample rate and the
	// nominal block length
	Prepare(sampleRate float64, maxBlockSize int) error

	// Release frees what Prepare allocated
	Release()

	// Reset clears internal state (tails, envelopes) without releasing
	Reset()

	// Process processes audio in place - ZERO ALLOCATIONS!
	Process(ctx *process.Context)

	// SetPlayConfig tells the engine the negotiated channel counts
	SetPlayConfig(inputs, outputs int, sampleRate float64, blockSize int)

	// SetNonRealtime is true while the host renders offline
	SetNonRealtime(offline bool)

	// IsSuspended makes the adapter output silence instead of processing
	IsSuspended() bool

	// CallbackLock is held around Process
	CallbackLock() sync.Locker

	// LatencySamples returns the engine latency in samples
	LatencySamples() int

	// AcceptsMidi engines find an All Notes Off on every channel in the
	// event buffer of the block that follows a reset trigger
	AcceptsMidi() bool

	// IsMidiEffect engines are announced as lv2:MIDIPlugin
	IsMidiEffect() bool
}

// BypassProcessor is implemented by engines with a dedicated bypassed path.
// Engines without one keep running Process and read their bypass parameter.
type BypassProcessor interface {
	ProcessBypassed(ctx *process.Context)
}

// ChannelConfigurator is implemented by engines that prefer a specific
// channel layout over enabling every declared bus.
type ChannelConfigurator interface {
	PreferredChannels() (inputs, outputs int, ok bool)
}

// ParameterRefresher is implemented by engines whose parameter list is only
// complete after the bus layout is final.
type ParameterRefresher interface {
	RefreshParameters()
}

// AlternateNamer is implemented by engines that offer short display names.
// The first 2-3 upper-case name becomes the descriptor abbreviation.
type AlternateNamer interface {
	AlternateDisplayNames() []string
}

// Global plugin instance
var (
	globalPlugin Plugin
	globalMu     sync.RWMutex
)

// Register sets the global plugin instance
func Register(p Plugin) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPlugin = p
}

// Registered returns the plugin passed to Register.
func Registered() Plugin {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPlugin
}
