package plugin

import (
	"github.com/justyntemme/lv2go/pkg/framework/config"
)

// ValidationMode selects the shape checks applied at instantiation
type ValidationMode int

const (
	// ValidationStrict requires 1-2 inputs, 1-2 outputs, a bypass parameter
	// and at least one other parameter.
	ValidationStrict ValidationMode = iota

	// ValidationRelaxed accepts any shape; a missing bypass is then driven
	// only through the enabled port.
	ValidationRelaxed
)

// String returns the mode name used in bundle configuration.
func (m ValidationMode) String() string {
	if m == ValidationRelaxed {
		return config.ValidationRelaxed
	}
	return config.ValidationStrict
}

// Config for plugin behavior
type Config struct {
	// FreeWheel adds the lv2:freeWheeling control port
	FreeWheel bool

	// Latency adds the lv2:latency control output
	Latency bool

	Validation ValidationMode
}

// DefaultConfig has both optional ports and strict validation.
func DefaultConfig() Config {
	return Config{
		FreeWheel:  true,
		Latency:    true,
		Validation: ValidationStrict,
	}
}

var globalConfig = DefaultConfig()

// SetConfig sets the global plugin configuration
func SetConfig(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// CurrentConfig returns the configuration passed to SetConfig.
func CurrentConfig() Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// ConfigFromBundle converts the adapter section of a bundle configuration.
func ConfigFromBundle(c *config.Config) Config {
	cfg := Config{
		FreeWheel: c.Features.FreeWheel,
		Latency:   c.Features.Latency,
	}
	if c.Relaxed() {
		cfg.Validation = ValidationRelaxed
	}
	return cfg
}
