package process

// ProcessChannels calls fn for every output channel. Input channels past the
// output count are not visited; output channels past the input count see
// whatever the host left in them.
func (ctx *Context) ProcessChannels(fn func(ch int, buf []float32)) {
	for ch := range ctx.Output {
		fn(ch, ctx.Output[ch][:ctx.Samples])
	}
}

// ProcessMono processes only the first channel
func (ctx *Context) ProcessMono(fn func(buf []float32)) {
	if ctx.NumOutputChannels() > 0 {
		fn(ctx.Output[0][:ctx.Samples])
	}
}

// GetNumChannels returns the minimum of input and output channels
func (ctx *Context) GetNumChannels() int {
	numChannels := ctx.NumInputChannels()
	if ctx.NumOutputChannels() < numChannels {
		numChannels = ctx.NumOutputChannels()
	}
	return numChannels
}

// ClearExtraOutputs silences output channels that have no matching input.
func (ctx *Context) ClearExtraOutputs() {
	for ch := ctx.NumInputChannels(); ch < ctx.NumOutputChannels(); ch++ {
		clear(ctx.Output[ch][:ctx.Samples])
	}
}
