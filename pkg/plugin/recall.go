package plugin

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
	"github.com/justyntemme/lv2go/pkg/framework/param"
	"github.com/justyntemme/lv2go/pkg/framework/plugin"
	"github.com/justyntemme/lv2go/pkg/lv2"
	"github.com/justyntemme/lv2go/pkg/ttl"
)

// Placeholder playback settings for the throwaway recall engine.
const (
	recallSampleRate = 48000.0
	recallBlockSize  = 16
)

// maxNameLength bounds lv2:name of parameter ports.
const maxNameLength = 32

// unitURIs maps parameter unit labels to LV2 units.
var unitURIs = map[string]string{
	"dB":        "units:db",
	"Hz":        "units:hz",
	"kHz":       "units:khz",
	"MHz":       "units:mhz",
	"ms":        "units:ms",
	"s":         "units:s",
	"min":       "units:min",
	"%":         "units:pc",
	"ct":        "units:cent",
	"cents":     "units:cent",
	"st":        "units:semitone12TET",
	"semitones": "units:semitone12TET",
	"bpm":       "units:bpm",
	"BPM":       "units:bpm",
	"beats":     "units:beat",
	"bars":      "units:bar",
	"oct":       "units:oct",
	"samples":   "units:frame",
	"m":         "units:m",
	"cm":        "units:cm",
	"mm":        "units:mm",
	"km":        "units:km",
	"deg":       "units:degree",
	"°":         "units:degree",
	"midi":      "units:midiNote",
}

// Recall writes manifest.ttl and dsp.ttl next to libraryPath. The engine is
// built through the same path as Instantiate, so it fails with the same
// errors.
func Recall(p Plugin, cfg Config, libraryPath string) error {
	s, err := newShape(p, cfg, recallSampleRate, recallBlockSize)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(libraryPath)
	if err != nil {
		return fmt.Errorf("resolve library path: %w", err)
	}
	dir := filepath.Dir(abs)
	info := p.GetInfo()

	debug.Info("Writing manifest.ttl...")
	if err := writeFile(filepath.Join(dir, "manifest.ttl"), func(w io.Writer) error {
		return WriteManifest(w, info.PluginURI(), filepath.Base(abs))
	}); err != nil {
		return err
	}

	debug.Info("Writing dsp.ttl...")
	if err := writeFile(filepath.Join(dir, "dsp.ttl"), func(w io.Writer) error {
		return writeDSP(w, s, info)
	}); err != nil {
		return err
	}

	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// WriteManifest writes the bundle index pointing at binary and dsp.ttl.
func WriteManifest(w io.Writer, uri, binary string) error {
	tw := ttl.NewWriter(w)
	tw.Prefixes(ttl.LV2, ttl.PSet, ttl.RDFS)

	tw.Printf("<%s>\n", uri)
	tw.WriteString("\ta lv2:Plugin ;\n")
	tw.Printf("\tlv2:binary <%s> ;\n", ttl.EscapePath(binary))
	tw.WriteString("\trdfs:seeAlso <dsp.ttl> .\n")
	tw.WriteString("\n")

	return tw.Err()
}

// WriteDSP builds an engine from p and writes its full description.
func WriteDSP(w io.Writer, p Plugin, cfg Config) error {
	s, err := newShape(p, cfg, recallSampleRate, recallBlockSize)
	if err != nil {
		return err
	}
	return writeDSP(w, s, p.GetInfo())
}

func writeDSP(w io.Writer, s *shape, info plugin.Info) error {
	tw := ttl.NewWriter(w)
	tw.Prefixes(ttl.Atom, ttl.Bufs, ttl.DG, ttl.DOAP, ttl.KX, ttl.FOAF, ttl.LV2,
		ttl.Opts, ttl.PProp, ttl.RDF, ttl.RDFS, ttl.Units, ttl.URID)

	tw.Printf("<%s>\n", info.PluginURI())
	tw.Printf("\ta %s , doap:Project ;\n", pluginClass(info, s.engine))
	tw.WriteString("\n")
	tw.WriteString("\tlv2:requiredFeature bufs:boundedBlockLength , opts:options , urid:map ;\n")
	tw.WriteString("\topts:requiredOption bufs:nominalBlockLength ;\n")
	tw.WriteString("\n")

	// one lv2:port group per audio direction, one for all control ports
	var group []lv2.PortEntry
	flush := func() {
		if len(group) == 0 {
			return
		}
		tw.WriteString("\tlv2:port [\n")
		for i, e := range group {
			if i > 0 {
				tw.WriteString("\t] , [\n")
			}
			writePort(tw, s, e)
		}
		tw.WriteString("\t] ;\n\n")
		group = group[:0]
	}

	prev := lv2.RoleNone
	for _, e := range s.table.Entries() {
		if portGroup(e.Role) != portGroup(prev) {
			flush()
		}
		group = append(group, e)
		prev = e.Role
	}
	flush()

	tw.Printf("\tdoap:name \"%s\" ;\n", ttl.Quote(s.engine.Name()))
	tw.Printf("\tdoap:description \"%s\" ;\n", ttl.Quote(info.Description))
	tw.WriteString("\tdoap:maintainer [\n")
	tw.WriteString("\t\ta foaf:Person ;\n")
	tw.Printf("\t\tfoaf:name \"%s\" ;\n", ttl.Quote(info.Vendor))
	if info.Homepage != "" {
		tw.Printf("\t\tfoaf:homepage <%s> ;\n", info.Homepage)
	}
	if info.Email != "" {
		tw.Printf("\t\tfoaf:mbox <%s> ;\n", mailto(info.Email))
	}
	tw.WriteString("\t] ;\n")
	tw.WriteString("\tdoap:release [\n")
	tw.WriteString("\t\ta doap:Version ;\n")
	tw.Printf("\t\tdoap:revision \"%s\" ;\n", ttl.Quote(info.Revision()))
	tw.WriteString("\t] ;\n\n")

	if abbr, ok := abbreviation(s.engine); ok {
		tw.Printf("\tdg:abbreviation \"%s\" ;\n\n", abbr)
	}

	tw.WriteString("\tlv2:minorVersion 0 ;\n")
	tw.WriteString("\tlv2:microVersion 0 .\n")

	return tw.Err()
}

// portGroup folds the control roles together so they share one lv2:port
// group.
func portGroup(r lv2.Role) lv2.Role {
	switch r {
	case lv2.RoleAudioInput, lv2.RoleAudioOutput, lv2.RoleNone:
		return r
	}
	return lv2.RoleControl
}

func pluginClass(info plugin.Info, engine Engine) string {
	switch {
	case info.IsSynth:
		return "lv2:InstrumentPlugin"
	case engine.IsMidiEffect():
		return "lv2:MIDIPlugin"
	case info.Category != "":
		if strings.Contains(info.Category, ":") {
			return info.Category
		}
		return "lv2:" + info.Category
	}
	return "lv2:Plugin"
}

func mailto(email string) string {
	if strings.HasPrefix(email, "mailto:") {
		return email
	}
	return "mailto:" + email
}

func writePort(tw *ttl.Writer, s *shape, e lv2.PortEntry) {
	switch e.Role {
	case lv2.RoleAudioInput:
		writeAudioPort(tw, e, "InputPort", "lv2_audio_in", "Audio Input", s.inputs)

	case lv2.RoleAudioOutput:
		writeAudioPort(tw, e, "OutputPort", "lv2_audio_out", "Audio Output", s.outputs)

	case lv2.RoleEnabled:
		tw.WriteString("\t\ta lv2:InputPort , lv2:ControlPort ;\n")
		tw.Printf("\t\tlv2:index %d ;\n", e.Index)
		tw.WriteString("\t\tlv2:symbol \"lv2_enabled\" ;\n" +
			"\t\tlv2:name \"Enabled\" ;\n" +
			"\t\tlv2:default 1.0 ;\n" +
			"\t\tlv2:minimum 0.0 ;\n" +
			"\t\tlv2:maximum 1.0 ;\n" +
			"\t\tlv2:designation lv2:enabled ;\n" +
			"\t\tlv2:portProperty lv2:toggled , lv2:connectionOptional , pprop:notOnGUI ;\n")

	case lv2.RoleReset:
		tw.WriteString("\t\ta lv2:InputPort , lv2:ControlPort ;\n")
		tw.Printf("\t\tlv2:index %d ;\n", e.Index)
		tw.WriteString("\t\tlv2:symbol \"lv2_reset\" ;\n" +
			"\t\tlv2:name \"Reset\" ;\n" +
			"\t\tlv2:default 0.0 ;\n" +
			"\t\tlv2:minimum 0.0 ;\n" +
			"\t\tlv2:maximum 1.0 ;\n" +
			"\t\tlv2:designation kx:Reset ;\n" +
			"\t\tlv2:portProperty lv2:toggled , lv2:connectionOptional , pprop:notOnGUI , pprop:trigger ;\n")

	case lv2.RoleFreeWheel:
		tw.WriteString("\t\ta lv2:InputPort , lv2:ControlPort ;\n")
		tw.Printf("\t\tlv2:index %d ;\n", e.Index)
		tw.WriteString("\t\tlv2:symbol \"lv2_freeWheeling\" ;\n" +
			"\t\tlv2:name \"Free Wheeling\" ;\n" +
			"\t\tlv2:default 0.0 ;\n" +
			"\t\tlv2:minimum 0.0 ;\n" +
			"\t\tlv2:maximum 1.0 ;\n" +
			"\t\tlv2:designation lv2:freeWheeling ;\n" +
			"\t\tlv2:portProperty lv2:toggled , lv2:connectionOptional , pprop:notOnGUI ;\n")

	case lv2.RoleLatency:
		tw.WriteString("\t\ta lv2:OutputPort , lv2:ControlPort ;\n")
		tw.Printf("\t\tlv2:index %d ;\n", e.Index)
		tw.WriteString("\t\tlv2:symbol \"lv2_latency\" ;\n" +
			"\t\tlv2:name \"Latency\" ;\n" +
			"\t\tlv2:designation lv2:latency ;\n" +
			"\t\tlv2:portProperty lv2:reportsLatency , lv2:integer , lv2:connectionOptional , pprop:notOnGUI ;\n" +
			"\t\tunits:unit units:frame ;\n")

	case lv2.RoleControl:
		writeControlPort(tw, e, s.controls[e.N])
	}
}

func writeAudioPort(tw *ttl.Writer, e lv2.PortEntry, class, symbol, name string, count int) {
	tw.Printf("\t\ta lv2:%s , lv2:AudioPort ;\n", class)
	tw.Printf("\t\tlv2:index %d ;\n", e.Index)
	if count == 1 {
		tw.Printf("\t\tlv2:symbol \"%s\" ;\n", symbol)
		tw.Printf("\t\tlv2:name \"%s\" ;\n", name)
		return
	}
	tw.Printf("\t\tlv2:symbol \"%s_%d\" ;\n", symbol, e.N+1)
	tw.Printf("\t\tlv2:name \"%s %d\" ;\n", name, e.N+1)
}

// portSymbol derives the lv2:symbol of a parameter port.
func portSymbol(p *param.Parameter) string {
	if p.Symbol == "" {
		return fmt.Sprintf("param_%d", p.ID)
	}
	return ttl.Symbol(p.Symbol)
}

// portName derives the lv2:name of the n-th parameter port, n zero based.
func portName(p *param.Parameter, n int) string {
	name := ttl.Truncate(p.Name, maxNameLength)
	if name == "" {
		name = fmt.Sprintf("Parameter %d", n+1)
	}
	return ttl.Quote(name)
}

func writeControlPort(tw *ttl.Writer, e lv2.PortEntry, p *param.Parameter) {
	tw.WriteString("\t\ta lv2:InputPort , lv2:ControlPort ;\n")
	tw.Printf("\t\tlv2:index %d ;\n", e.Index)
	tw.Printf("\t\tlv2:symbol \"%s\" ;\n", portSymbol(p))
	tw.Printf("\t\tlv2:name \"%s\" ;\n", portName(p, e.N))

	lo, hi := 0.0, 1.0
	if p.IsRanged() {
		lo, hi = p.Min, p.Max
		tw.Printf("\t\tlv2:default %s ;\n", ttl.Float(p.GetPlainValue()))
		tw.Printf("\t\tlv2:minimum %s ;\n", ttl.Float(lo))
		tw.Printf("\t\tlv2:maximum %s ;\n", ttl.Float(hi))
		if unit, ok := unitURIs[p.Unit]; ok {
			tw.Printf("\t\tunits:unit %s ;\n", unit)
		}
	} else {
		tw.Printf("\t\tlv2:default %s ;\n", ttl.Float(p.GetValue()))
		tw.WriteString("\t\tlv2:minimum 0.0 ;\n")
		tw.WriteString("\t\tlv2:maximum 1.0 ;\n")
	}

	if p.IsBoolean() {
		tw.WriteString("\t\tlv2:portProperty lv2:toggled ;\n")
	}
	if !p.IsAutomatable() {
		tw.WriteString("\t\tlv2:portProperty pprop:expensive ;\n")
	}

	if len(p.ScalePoints) > 0 {
		tw.WriteString("\t\tlv2:scalePoint [\n")
		for i, sp := range p.ScalePoints {
			if i > 0 {
				tw.WriteString("\t\t] , [\n")
			}
			tw.Printf("\t\t\trdfs:label \"%s\" ;\n", ttl.Quote(sp.Label))
			tw.Printf("\t\t\trdf:value %s ;\n", ttl.Float(float64(sp.Value)))
		}
		tw.WriteString("\t\t] ;\n")
		return
	}

	steps := int(p.StepCount)
	if !p.IsDiscrete() || p.IsBoolean() || steps < 2 {
		return
	}
	labels := p.ValueStrings()
	if len(labels) == 0 {
		return
	}

	tw.WriteString("\t\tlv2:portProperty lv2:enumeration ;\n")
	tw.WriteString("\t\tlv2:scalePoint [\n")
	for i, label := range labels {
		if i > 0 {
			tw.WriteString("\t\t] , [\n")
		}
		value := lo + float64(i)*(hi-lo)/float64(steps-1)
		tw.Printf("\t\t\trdfs:label \"%s\" ;\n", ttl.Quote(label))
		tw.Printf("\t\t\trdf:value %s ;\n", ttl.Float(value))
	}
	tw.WriteString("\t\t] ;\n")
}

// abbreviation returns the first alternate display name made of two or
// three upper-case letters.
func abbreviation(e Engine) (string, bool) {
	namer, ok := e.(AlternateNamer)
	if !ok {
		return "", false
	}
	for _, name := range namer.AlternateDisplayNames() {
		if len(name) < 2 || len(name) > 3 {
			continue
		}
		valid := true
		for i := 0; i < len(name); i++ {
			if name[i] < 'A' || name[i] > 'Z' {
				valid = false
				break
			}
		}
		if valid {
			return name, true
		}
	}
	return "", false
}

// RecallMain is the entry point for writing a bundle from the command line.
// The library path comes from -lib, or the running executable when omitted.
func RecallMain(args []string) int {
	fs := flag.NewFlagSet("recall", flag.ContinueOnError)
	lib := fs.String("lib", "", "path of the plugin shared library")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *lib
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			debug.Error("recall: %v", err)
			return 1
		}
		path = exe
	}

	p := Registered()
	if err := Recall(p, CurrentConfig(), path); err != nil {
		debug.Error("recall: %v", err)
		return 1
	}
	return 0
}
