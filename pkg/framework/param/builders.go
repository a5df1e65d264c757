package param

import (
	"fmt"
	"strings"
)

// ChoiceOption represents a single choice in a list parameter
type ChoiceOption struct {
	Value   float64
	Name    string
	Aliases []string
}

// Choice creates a discrete parameter with one step per option. Values are
// expected in ascending order.
func Choice(id uint32, name string, options []ChoiceOption) *Builder {
	formatter := func(value float64) string {
		for _, opt := range options {
			if opt.Value == value {
				return opt.Name
			}
		}
		index := int(value + 0.5)
		if index >= 0 && index < len(options) {
			return options[index].Name
		}
		return "Unknown"
	}

	parser := func(str string) (float64, error) {
		str = strings.TrimSpace(str)
		for _, opt := range options {
			if strings.EqualFold(str, opt.Name) {
				return opt.Value, nil
			}
			for _, alias := range opt.Aliases {
				if strings.EqualFold(str, alias) {
					return opt.Value, nil
				}
			}
		}
		return 0, fmt.Errorf("unknown option: %s", str)
	}

	b := New(id, name).
		Steps(int32(len(options))).
		Formatter(formatter, parser)
	b.param.Flags |= IsList

	if len(options) > 0 {
		b.Range(options[0].Value, options[len(options)-1].Value).Default(options[0].Value)
	}
	return b
}

// GainParameter creates a ranged gain parameter in dB
func GainParameter(id uint32, name string, minDB, maxDB, defaultDB float64) *Builder {
	return New(id, name).
		Range(minDB, maxDB).
		Default(defaultDB).
		Unit("dB").
		Formatter(DecibelFormatter, DecibelParser)
}

// MixParameter creates a standard mix/blend parameter (0-100%)
func MixParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(0, 100).
		Default(100).
		Unit("%").
		Formatter(PercentFormatter, PercentParser)
}

// FrequencyParameter creates a frequency parameter in Hz
func FrequencyParameter(id uint32, name string, min, max, defaultVal float64) *Builder {
	return New(id, name).
		Range(min, max).
		Default(defaultVal).
		Unit("Hz").
		Formatter(FrequencyFormatter, FrequencyParser)
}

// BypassParameter creates the engine's bypass switch (1 = bypassed)
func BypassParameter(id uint32, name string) *Builder {
	return New(id, name).
		Symbol("bypass").
		Toggle().
		Bypass().
		Formatter(OnOffFormatter, OnOffParser)
}
