// Package lv2 provides the Go side of the LV2 plugin ABI: URIs, host features,
// the descriptor table and the port index layout shared by the adapter and the
// turtle emitter.
package lv2

// Namespace prefixes
const (
	CorePrefix      = "http://lv2plug.in/ns/lv2core#"
	AtomPrefix      = "http://lv2plug.in/ns/ext/atom#"
	BufSizePrefix   = "http://lv2plug.in/ns/ext/buf-size#"
	LogPrefix       = "http://lv2plug.in/ns/ext/log#"
	OptionsPrefix   = "http://lv2plug.in/ns/ext/options#"
	PresetsPrefix   = "http://lv2plug.in/ns/ext/presets#"
	PortPropsPrefix = "http://lv2plug.in/ns/ext/port-props#"
	UnitsPrefix     = "http://lv2plug.in/ns/extensions/units#"
	URIDPrefix      = "http://lv2plug.in/ns/ext/urid#"
)

// Feature and option URIs
const (
	LogURI                = LogPrefix + "log"
	OptionsURI            = OptionsPrefix + "options"
	URIDMapURI            = URIDPrefix + "map"
	BoundedBlockLengthURI = BufSizePrefix + "boundedBlockLength"
	NominalBlockLengthURI = BufSizePrefix + "nominalBlockLength"
	AtomIntURI            = AtomPrefix + "Int"

	LogErrorURI   = LogPrefix + "Error"
	LogNoteURI    = LogPrefix + "Note"
	LogTraceURI   = LogPrefix + "Trace"
	LogWarningURI = LogPrefix + "Warning"
)

// RecallURI identifies the extension that writes manifest.ttl and dsp.ttl
// for a plugin binary.
const RecallURI = "https://lv2-extensions.juce.com/turtle_recall"
