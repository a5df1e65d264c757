// Package process provides the per-block processing context handed to engines.
package process

import (
	"github.com/justyntemme/lv2go/pkg/framework/param"
	"github.com/justyntemme/lv2go/pkg/midi"
)

// Context provides a clean API for audio processing with zero allocations.
//
// Input and Output are views over one shared channel array: channel i of the
// input and channel i of the output are the same memory, so engines process
// in place.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64
	Samples    int

	// Events pending for this block. Never nil once the context is built.
	Events *midi.Buffer

	// Pre-allocated work buffers
	workBuffer []float32
	tempBuffer []float32

	// Parameter access
	params *param.Registry
}

// NewContext creates a new process context with pre-allocated buffers
func NewContext(maxBlockSize int, params *param.Registry) *Context {
	return &Context{
		Events:     midi.NewBuffer(midi.DefaultCapacity),
		workBuffer: make([]float32, maxBlockSize),
		tempBuffer: make([]float32, maxBlockSize),
		params:     params,
	}
}

// Bind points the context at channels for a block of n samples. The first
// inputs channels are exposed as Input and the first outputs as Output.
func (c *Context) Bind(channels [][]float32, inputs, outputs, n int) {
	c.Input = channels[:inputs]
	c.Output = channels[:outputs]
	c.Samples = n
}

// Param returns the current value of a parameter (0-1 normalized)
func (c *Context) Param(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetValue()
	}
	return 0
}

// ParamPlain returns the current plain value of a parameter
func (c *Context) ParamPlain(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	return c.Samples
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// WorkBuffer returns a slice of the pre-allocated work buffer
// sized to the current block size - no allocation!
func (c *Context) WorkBuffer() []float32 {
	return c.workBuffer[:c.clampSamples()]
}

// TempBuffer returns a slice of the pre-allocated temp buffer
// sized to the current block size - no allocation!
func (c *Context) TempBuffer() []float32 {
	return c.tempBuffer[:c.clampSamples()]
}

func (c *Context) clampSamples() int {
	if c.Samples > len(c.workBuffer) {
		return len(c.workBuffer)
	}
	return c.Samples
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		clear(c.Output[ch][:c.Samples])
	}
}
