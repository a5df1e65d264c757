package bus

import (
	"errors"
	"fmt"
)

// maxChannelsPerBus bounds a single bus; the adapter applies its own, tighter
// limits to the totals.
const maxChannelsPerBus = 32

// Builder provides a fluent API for building bus configurations
type Builder struct {
	config *Configuration
	errors []error
}

// NewBuilder creates a new bus configuration builder
func NewBuilder() *Builder {
	return &Builder{
		config: &Configuration{},
	}
}

func (b *Builder) addAudio(direction Direction, busType Type, name string, channels int32, active bool) *Builder {
	b.config.audioBuses = append(b.config.audioBuses, Info{
		MediaType:    MediaTypeAudio,
		Direction:    direction,
		ChannelCount: channels,
		Name:         name,
		BusType:      busType,
		IsActive:     active,
	})
	return b
}

// WithAudioInput adds a main audio input bus
func (b *Builder) WithAudioInput(name string, channels int32) *Builder {
	return b.addAudio(DirectionInput, TypeMain, name, channels, true)
}

// WithAudioOutput adds a main audio output bus
func (b *Builder) WithAudioOutput(name string, channels int32) *Builder {
	return b.addAudio(DirectionOutput, TypeMain, name, channels, true)
}

// WithAuxInput adds an auxiliary audio input bus (e.g., sidechain). Aux buses
// start inactive until EnableAllBuses.
func (b *Builder) WithAuxInput(name string, channels int32) *Builder {
	return b.addAudio(DirectionInput, TypeAux, name, channels, false)
}

// WithEventInput adds an event (MIDI) input bus
func (b *Builder) WithEventInput(name string) *Builder {
	b.config.AddEventBus(DirectionInput, name)
	return b
}

// WithEventOutput adds an event (MIDI) output bus
func (b *Builder) WithEventOutput(name string) *Builder {
	b.config.AddEventBus(DirectionOutput, name)
	return b
}

// WithSidechain adds an inactive stereo aux input. EnableAllBuses turns it
// on, which adds its channels to the audio input ports.
func (b *Builder) WithSidechain(name string) *Builder {
	return b.WithAuxInput(name, 2)
}

// SetBusActive sets a specific bus as active/inactive
func (b *Builder) SetBusActive(mediaType MediaType, direction Direction, index int32, active bool) *Builder {
	if info := b.config.GetBusInfo(mediaType, direction, index); info != nil {
		info.IsActive = active
		return b
	}

	b.errors = append(b.errors, fmt.Errorf("bus not found: mediaType=%d, direction=%d, index=%d", mediaType, direction, index))
	return b
}

// Validate checks if the configuration is valid
func (b *Builder) Validate() error {
	if err := errors.Join(b.errors...); err != nil {
		return err
	}

	if len(b.config.audioBuses) == 0 && len(b.config.eventBuses) == 0 {
		return fmt.Errorf("configuration must declare at least one bus")
	}

	for _, bus := range b.config.audioBuses {
		if bus.ChannelCount <= 0 {
			return fmt.Errorf("invalid channel count %d for bus %s", bus.ChannelCount, bus.Name)
		}
		if bus.ChannelCount > maxChannelsPerBus {
			return fmt.Errorf("channel count %d exceeds maximum of %d for bus %s", bus.ChannelCount, maxChannelsPerBus, bus.Name)
		}
	}

	return nil
}

// Build returns the built configuration or an error
func (b *Builder) Build() (*Configuration, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.config, nil
}

// MustBuild returns the built configuration or panics on error
func (b *Builder) MustBuild() *Configuration {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}
