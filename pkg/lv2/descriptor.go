package lv2

import "unsafe"

// Handle identifies a plugin instance across the C boundary. Zero is the null
// handle returned when instantiation fails.
type Handle uintptr

// Descriptor is the Go rendition of LV2_Descriptor: a flat table of entry
// points, each taking the opaque instance handle.
type Descriptor struct {
	URI string

	Instantiate   func(sampleRate float64, bundlePath string, features []Feature) Handle
	ConnectPort   func(h Handle, port uint32, data unsafe.Pointer)
	Activate      func(h Handle)
	Run           func(h Handle, sampleCount uint32)
	Deactivate    func(h Handle)
	Cleanup       func(h Handle)
	ExtensionData func(uri string) interface{}
}

// RecallFunc is the payload of the RecallURI extension. It writes the turtle
// files next to libraryPath and returns a process exit code.
type RecallFunc func(libraryPath string) int
