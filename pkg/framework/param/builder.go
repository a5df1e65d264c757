package param

// Builder provides a fluent API for creating parameters
type Builder struct {
	param        *Parameter
	plainDefault *float64
}

// New creates a new parameter builder. The parameter starts unranged (0-1)
// and automatable.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
			Flags:     CanAutomate,
		},
	}
}

// Symbol sets the stable string id.
func (b *Builder) Symbol(symbol string) *Builder {
	b.param.Symbol = symbol
	return b
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the plain min and max values and marks the parameter ranged.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	b.param.ranged = true
	return b
}

// Default sets the default value (in plain range, not normalized). It is
// resolved at Build so it may be given before Range.
func (b *Builder) Default(value float64) *Builder {
	b.plainDefault = &value
	return b
}

// Unit sets the unit label
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps sets the number of discrete values
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Flags replaces the parameter flags
func (b *Builder) Flags(flags uint32) *Builder {
	b.param.Flags = flags
	return b
}

// Toggle makes the parameter a boolean switch
func (b *Builder) Toggle() *Builder {
	b.param.Min = 0
	b.param.Max = 1
	b.param.StepCount = 2
	b.param.Flags |= IsBoolean
	return b
}

// ReadOnly marks the parameter as read-only
func (b *Builder) ReadOnly() *Builder {
	b.param.Flags |= IsReadOnly
	b.param.Flags &^= CanAutomate
	return b
}

// NotAutomatable clears the automation flag
func (b *Builder) NotAutomatable() *Builder {
	b.param.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden
func (b *Builder) Hidden() *Builder {
	b.param.Flags |= IsHidden
	return b
}

// Bypass marks this as the bypass parameter
func (b *Builder) Bypass() *Builder {
	b.param.Flags |= IsBypass
	return b
}

// ScalePoint attaches a labelled value.
func (b *Builder) ScalePoint(label string, value float32) *Builder {
	b.param.ScalePoints = append(b.param.ScalePoints, ScalePoint{Label: label, Value: value})
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter set to its default value
func (b *Builder) Build() *Parameter {
	if b.plainDefault != nil {
		b.param.DefaultValue = b.param.Normalize(*b.plainDefault)
	}
	b.param.SetValue(b.param.DefaultValue)
	return b.param
}
