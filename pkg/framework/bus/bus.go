// Package bus describes the audio and event buses of an engine and the
// channel totals the adapter derives its audio ports from.
package bus

// MediaType represents the type of bus
type MediaType int32

const (
	// MediaTypeAudio represents audio bus type
	MediaTypeAudio MediaType = 0
	// MediaTypeEvent represents event/MIDI bus type
	MediaTypeEvent MediaType = 1
)

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// Type represents the bus type
type Type int32

const (
	// TypeMain represents main bus
	TypeMain Type = 0
	// TypeAux represents auxiliary bus
	TypeAux Type = 1
)

// Info contains bus configuration
type Info struct {
	MediaType    MediaType
	Direction    Direction
	ChannelCount int32
	Name         string
	BusType      Type
	IsActive     bool
}

// Configuration manages audio and event buses
type Configuration struct {
	audioBuses []Info
	eventBuses []Info
}

func (c *Configuration) buses(mediaType MediaType) []Info {
	if mediaType == MediaTypeEvent {
		return c.eventBuses
	}
	return c.audioBuses
}

// GetBusCount returns the number of buses for a given type and direction
func (c *Configuration) GetBusCount(mediaType MediaType, direction Direction) int32 {
	count := int32(0)
	for _, bus := range c.buses(mediaType) {
		if bus.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns information about a specific bus
func (c *Configuration) GetBusInfo(mediaType MediaType, direction Direction, index int32) *Info {
	buses := c.buses(mediaType)

	busIndex := int32(0)
	for i := range buses {
		if buses[i].Direction == direction {
			if busIndex == index {
				return &buses[i]
			}
			busIndex++
		}
	}

	return nil
}

// AddEventBus adds an event bus (for MIDI input)
func (c *Configuration) AddEventBus(direction Direction, name string) {
	c.eventBuses = append(c.eventBuses, Info{
		MediaType:    MediaTypeEvent,
		Direction:    direction,
		ChannelCount: 1,
		Name:         name,
		BusType:      TypeMain,
		IsActive:     true,
	})
}

// EnableAllBuses activates every declared bus, auxiliary ones included.
func (c *Configuration) EnableAllBuses() {
	for i := range c.audioBuses {
		c.audioBuses[i].IsActive = true
	}
	for i := range c.eventBuses {
		c.eventBuses[i].IsActive = true
	}
}

// SetChannelConfig applies a fixed input/output channel layout to the main
// audio buses and disables auxiliary ones. A zero count deactivates the main
// bus in that direction.
func (c *Configuration) SetChannelConfig(inputs, outputs int32) {
	c.setMain(DirectionInput, inputs)
	c.setMain(DirectionOutput, outputs)

	for i := range c.audioBuses {
		if c.audioBuses[i].BusType == TypeAux {
			c.audioBuses[i].IsActive = false
		}
	}
}

func (c *Configuration) setMain(direction Direction, channels int32) {
	for i := range c.audioBuses {
		bus := &c.audioBuses[i]
		if bus.Direction == direction && bus.BusType == TypeMain {
			if channels > 0 {
				bus.ChannelCount = channels
			}
			bus.IsActive = channels > 0
			return
		}
	}

	if channels <= 0 {
		return
	}

	name := "Input"
	if direction == DirectionOutput {
		name = "Output"
	}
	c.audioBuses = append(c.audioBuses, Info{
		MediaType:    MediaTypeAudio,
		Direction:    direction,
		ChannelCount: channels,
		Name:         name,
		BusType:      TypeMain,
		IsActive:     true,
	})
}

// TotalChannels sums the channels of all active audio buses in a direction.
func (c *Configuration) TotalChannels(direction Direction) int {
	total := 0
	for _, bus := range c.audioBuses {
		if bus.Direction == direction && bus.IsActive {
			total += int(bus.ChannelCount)
		}
	}
	return total
}
