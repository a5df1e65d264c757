package plugin

// Base provides the metadata half of a plugin. Embed it and add CreateEngine.
type Base struct {
	Info Info
}

// NewBase creates a new plugin base
func NewBase(info Info) *Base {
	return &Base{Info: info}
}

// GetInfo returns the plugin metadata.
func (b *Base) GetInfo() Info {
	return b.Info
}
