package bus

import (
	"testing"
)

func TestBuilder(t *testing.T) {
	t.Run("BasicStereo", func(t *testing.T) {
		config, err := NewBuilder().
			WithAudioInput("In", 2).
			WithAudioOutput("Out", 2).
			Build()

		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}

		if config.GetBusCount(MediaTypeAudio, DirectionInput) != 1 {
			t.Error("Expected 1 input bus")
		}
		if config.GetBusCount(MediaTypeAudio, DirectionOutput) != 1 {
			t.Error("Expected 1 output bus")
		}
	})

	t.Run("OutputOnly", func(t *testing.T) {
		config, err := NewBuilder().WithAudioOutput("Out", 1).Build()
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if config.TotalChannels(DirectionInput) != 0 {
			t.Error("Expected no input channels")
		}
	})

	t.Run("Events", func(t *testing.T) {
		config := NewBuilder().
			WithAudioInput("In", 1).
			WithAudioOutput("Out", 1).
			WithEventInput("MIDI In").
			WithEventOutput("MIDI Out").
			MustBuild()

		if config.GetBusCount(MediaTypeEvent, DirectionOutput) != 1 {
			t.Error("Expected 1 event output bus")
		}
	})

	t.Run("SetBusActive", func(t *testing.T) {
		config := NewBuilder().
			WithAudioInput("In", 2).
			WithAudioOutput("Out", 2).
			SetBusActive(MediaTypeAudio, DirectionInput, 0, false).
			MustBuild()

		if config.TotalChannels(DirectionInput) != 0 {
			t.Error("Deactivated bus should not contribute channels")
		}
	})
}

func TestBuilderValidation(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{"Empty", NewBuilder()},
		{"ZeroChannels", NewBuilder().WithAudioOutput("Out", 0)},
		{"TooManyChannels", NewBuilder().WithAudioOutput("Out", 64)},
		{"UnknownBus", NewBuilder().WithAudioOutput("Out", 2).SetBusActive(MediaTypeAudio, DirectionInput, 3, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.builder.Build(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	t.Run("MustBuildPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustBuild should panic on invalid configuration")
			}
		}()
		NewBuilder().MustBuild()
	})
}
