// Package cbridge exports the lv2_descriptor entry point of a plugin built
// with -buildmode=c-shared.
//
// Usage:
//
//	import _ "github.com/justyntemme/lv2go/pkg/plugin/cbridge"
//
// The underscore import links the C bridge without using any of its exports.
// The descriptor serves whatever plugin was passed to plugin.Register.
package cbridge

// #include "lv2_bridge.h"
import "C"
import (
	"sync"
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
	"github.com/justyntemme/lv2go/pkg/lv2"
	"github.com/justyntemme/lv2go/pkg/plugin"
)

var (
	descriptorOnce sync.Once
	descriptor     *lv2.Descriptor
	descriptorURI  *C.char // lives for the life of the library
)

// current builds the descriptor on first use so that plugin.Register in the
// plugin's init has already run.
func current() *lv2.Descriptor {
	descriptorOnce.Do(func() {
		descriptor = plugin.Descriptor()
		if descriptor == nil {
			debug.Error("lv2_descriptor called before plugin.Register")
			return
		}
		descriptorURI = C.CString(descriptor.URI)
	})
	return descriptor
}

//export GoDescriptorURI
func GoDescriptorURI() *C.char {
	if current() == nil {
		return nil
	}
	return descriptorURI
}

//export GoInstantiate
func GoInstantiate(sampleRate C.double, bundlePath *C.char, features **C.LV2_Feature) C.uintptr_t {
	d := current()
	if d == nil {
		return 0
	}
	h := d.Instantiate(float64(sampleRate), C.GoString(bundlePath), hostFeatures(features))
	return C.uintptr_t(h)
}

//export GoConnectPort
func GoConnectPort(h C.uintptr_t, port C.uint32_t, data unsafe.Pointer) {
	if d := current(); d != nil {
		d.ConnectPort(lv2.Handle(h), uint32(port), data)
	}
}

//export GoActivate
func GoActivate(h C.uintptr_t) {
	if d := current(); d != nil {
		d.Activate(lv2.Handle(h))
	}
}

//export GoRun
func GoRun(h C.uintptr_t, sampleCount C.uint32_t) {
	if d := current(); d != nil {
		d.Run(lv2.Handle(h), uint32(sampleCount))
	}
}

//export GoDeactivate
func GoDeactivate(h C.uintptr_t) {
	if d := current(); d != nil {
		d.Deactivate(lv2.Handle(h))
	}
}

//export GoCleanup
func GoCleanup(h C.uintptr_t) {
	if d := current(); d != nil {
		d.Cleanup(lv2.Handle(h))
	}
}

//export GoHasExtension
func GoHasExtension(uri *C.char) C.int {
	d := current()
	if d == nil || d.ExtensionData(C.GoString(uri)) == nil {
		return 0
	}
	return 1
}

//export GoRecall
func GoRecall(libraryPath *C.char) C.int {
	d := current()
	if d == nil {
		return 1
	}
	recall, ok := d.ExtensionData(lv2.RecallURI).(lv2.RecallFunc)
	if !ok {
		return 1
	}
	return C.int(recall(C.GoString(libraryPath)))
}
