package plugin

import (
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/dsp"
)

// copyFn copies input samples into an output port. Tests swap it to count
// copies.
var copyFn = dsp.Copy

// bufferView is the flat channel array handed to the engine. Output channels
// come first and double as inputs; inputs past the output count are exposed
// directly.
type bufferView struct {
	channels [][]float32
	inputs   int
	outputs  int
}

func newBufferView(inputs, outputs int) *bufferView {
	return &bufferView{
		channels: make([][]float32, max(inputs, outputs)),
		inputs:   inputs,
		outputs:  outputs,
	}
}

// prepare points the view at the connected port memory for n samples. The
// LV2 contract requires every audio port to be connected before run.
func (v *bufferView) prepare(ins, outs []*float32, n int) {
	i := 0
	for ; i < v.outputs; i++ {
		out := unsafe.Slice(outs[i], n)
		v.channels[i] = out

		if i < v.inputs && ins[i] != outs[i] {
			copyFn(out, unsafe.Slice(ins[i], n))
		}
	}
	for ; i < v.inputs; i++ {
		v.channels[i] = unsafe.Slice(ins[i], n)
	}
}

// silence clears the output channels.
func (v *bufferView) silence() {
	for i := 0; i < v.outputs; i++ {
		dsp.Clear(v.channels[i])
	}
}
