package plugin

import (
	"fmt"

	"github.com/justyntemme/lv2go/pkg/framework/bus"
	"github.com/justyntemme/lv2go/pkg/framework/param"
	"github.com/justyntemme/lv2go/pkg/lv2"
)

// shape is a constructed engine together with the port layout derived from
// it. Instantiate and Recall both build one through newShape so the
// descriptor can never disagree with what the adapter connects.
type shape struct {
	engine Engine

	inputs  int
	outputs int

	// params in declaration order, bypass included
	params []*param.Parameter
	bypass *param.Parameter

	// controls lists the non-bypass parameters in port order
	controls []*param.Parameter

	table lv2.PortTable
}

// newShape constructs an engine, applies its channel layout and validates it
// according to cfg.
func newShape(p Plugin, cfg Config, sampleRate float64, blockSize int) (*shape, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no plugin registered", ErrMissingEngine)
	}

	engine := p.CreateEngine()
	if engine == nil {
		return nil, fmt.Errorf("%w: %s returned no engine", ErrMissingEngine, p.GetInfo().Name)
	}

	if cc, ok := engine.(ChannelConfigurator); ok {
		if in, out, preferred := cc.PreferredChannels(); preferred {
			engine.SetPlayConfig(in, out, sampleRate, blockSize)
		} else {
			engine.Buses().EnableAllBuses()
		}
	} else {
		engine.Buses().EnableAllBuses()
	}

	if r, ok := engine.(ParameterRefresher); ok {
		r.RefreshParameters()
	}

	s := &shape{
		engine:  engine,
		inputs:  engine.Buses().TotalChannels(bus.DirectionInput),
		outputs: engine.Buses().TotalChannels(bus.DirectionOutput),
		params:  engine.Parameters().All(),
		bypass:  engine.BypassParameter(),
	}

	if cfg.Validation == ValidationStrict {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}

	s.controls = make([]*param.Parameter, 0, len(s.params))
	for _, prm := range s.params {
		if prm != s.bypass {
			s.controls = append(s.controls, prm)
		}
	}

	s.table = lv2.PortTable{
		Inputs:    s.inputs,
		Outputs:   s.outputs,
		Controls:  len(s.controls),
		FreeWheel: cfg.FreeWheel,
		Latency:   cfg.Latency,
	}

	return s, nil
}

func (s *shape) validate() error {
	if s.inputs < 1 || s.outputs < 1 || s.inputs > 2 || s.outputs > 2 {
		return fmt.Errorf("%w: %d inputs, %d outputs (want 1-2 each)", ErrIncompatibleIO, s.inputs, s.outputs)
	}
	if s.bypass == nil {
		return ErrMissingBypass
	}
	if len(s.params) < 2 {
		return fmt.Errorf("%w: %d, want at least one besides bypass", ErrNoParameters, len(s.params))
	}
	return nil
}
