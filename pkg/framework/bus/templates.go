package bus

// Common bus configuration templates. Every template names its buses the way
// the port labels should read in a host.

// NewEffectStereo creates a stereo effect configuration (1 stereo in, 1 stereo out)
func NewEffectStereo() *Configuration {
	return NewBuilder().
		WithAudioInput("Input", 2).
		WithAudioOutput("Output", 2).
		MustBuild()
}

// NewEffectMono creates a mono effect configuration (1 mono in, 1 mono out)
func NewEffectMono() *Configuration {
	return NewBuilder().
		WithAudioInput("Input", 1).
		WithAudioOutput("Output", 1).
		MustBuild()
}

// NewEffectStereoSidechain creates a stereo effect with an inactive stereo
// sidechain. Once enabled the sidechain channels follow the main input ports.
func NewEffectStereoSidechain() *Configuration {
	return NewBuilder().
		WithAudioInput("Input", 2).
		WithAudioOutput("Output", 2).
		WithSidechain("Sidechain").
		MustBuild()
}

// NewMonoToStereo creates a mono-to-stereo effect configuration
func NewMonoToStereo() *Configuration {
	return NewBuilder().
		WithAudioInput("Input", 1).
		WithAudioOutput("Output", 2).
		MustBuild()
}

// NewStereoToMono creates a stereo-to-mono effect configuration
func NewStereoToMono() *Configuration {
	return NewBuilder().
		WithAudioInput("Input", 2).
		WithAudioOutput("Output", 1).
		MustBuild()
}

// NewGenerator creates a generator configuration: no audio input, stereo
// output, MIDI input. Strict validation rejects it for lack of inputs.
func NewGenerator() *Configuration {
	return NewBuilder().
		WithAudioOutput("Output", 2).
		WithEventInput("MIDI In").
		MustBuild()
}

// NewMultiChannelEffect creates an effect with numChannels in and out
func NewMultiChannelEffect(numChannels int32) *Configuration {
	return NewBuilder().
		WithAudioInput("Input", numChannels).
		WithAudioOutput("Output", numChannels).
		MustBuild()
}
