package plugin

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
	"github.com/justyntemme/lv2go/pkg/lv2"
)

type adapterMap map[lv2.Handle]*Adapter

var (
	// adapters is replaced wholesale on every change so Run can look up its
	// instance without taking a lock. Writers serialize on adaptersMu.
	adapters   atomic.Pointer[adapterMap]
	adaptersMu sync.Mutex
	nextHandle lv2.Handle = 1
)

// updateAdapters applies fn to a copy of the adapter map and publishes it.
func updateAdapters(fn func(m adapterMap)) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()

	next := make(adapterMap)
	if cur := adapters.Load(); cur != nil {
		for h, a := range *cur {
			next[h] = a
		}
	}
	fn(next)
	adapters.Store(&next)
}

// registerAdapter registers an adapter and returns its handle
func registerAdapter(a *Adapter) lv2.Handle {
	var h lv2.Handle
	updateAdapters(func(m adapterMap) {
		h = nextHandle
		nextHandle++
		m[h] = a
	})
	return h
}

// unregisterAdapter removes an adapter by handle
func unregisterAdapter(h lv2.Handle) *Adapter {
	var a *Adapter
	updateAdapters(func(m adapterMap) {
		a = m[h]
		delete(m, h)
	})
	return a
}

// getAdapter retrieves an adapter by handle. It never blocks.
func getAdapter(h lv2.Handle) *Adapter {
	if h == 0 {
		return nil
	}

	m := adapters.Load()
	if m == nil {
		return nil
	}
	return (*m)[h]
}

// recoverPanic is a helper to recover from panics in callbacks
func recoverPanic(operation string) {
	if r := recover(); r != nil {
		// Log the panic but don't propagate it to C code
		debug.Error("panic in %s: %v", operation, r)
	}
}

// NewDescriptor builds the descriptor table for p. Every entry point reaches
// its instance through the opaque handle.
func NewDescriptor(p Plugin, cfg Config) *lv2.Descriptor {
	return &lv2.Descriptor{
		URI: p.GetInfo().PluginURI(),

		Instantiate: func(sampleRate float64, bundlePath string, features []lv2.Feature) (h lv2.Handle) {
			defer recoverPanic("instantiate")

			a, err := Instantiate(p, cfg, sampleRate, bundlePath, features)
			if err != nil {
				return 0
			}
			return registerAdapter(a)
		},

		ConnectPort: func(h lv2.Handle, port uint32, data unsafe.Pointer) {
			if a := getAdapter(h); a != nil {
				a.ConnectPort(port, data)
			}
		},

		Activate: func(h lv2.Handle) {
			defer recoverPanic("activate")

			if a := getAdapter(h); a != nil {
				a.Activate()
			}
		},

		Run: func(h lv2.Handle, sampleCount uint32) {
			defer recoverPanic("run")

			if a := getAdapter(h); a != nil {
				a.Run(sampleCount)
			}
		},

		Deactivate: func(h lv2.Handle) {
			defer recoverPanic("deactivate")

			if a := getAdapter(h); a != nil {
				a.Deactivate()
			}
		},

		Cleanup: func(h lv2.Handle) {
			defer recoverPanic("cleanup")

			if a := unregisterAdapter(h); a != nil {
				a.Destroy()
			}
		},

		ExtensionData: func(uri string) interface{} {
			if uri != lv2.RecallURI {
				return nil
			}
			return lv2.RecallFunc(func(libraryPath string) int {
				if err := Recall(p, cfg, libraryPath); err != nil {
					debug.Error("recall: %v", err)
					return 1
				}
				return 0
			})
		},
	}
}

// Descriptor returns the descriptor of the registered plugin with the
// configuration passed to SetConfig, or nil before Register.
func Descriptor() *lv2.Descriptor {
	p := Registered()
	if p == nil {
		return nil
	}
	return NewDescriptor(p, CurrentConfig())
}
