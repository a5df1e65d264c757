// Package ttl writes and reads the small subset of Turtle used by LV2 bundle
// descriptors.
package ttl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/justyntemme/lv2go/pkg/lv2"
)

// Namespace binds a prefix name to an IRI.
type Namespace struct {
	Prefix string
	IRI    string
}

// Common namespaces
var (
	Atom  = Namespace{"atom", lv2.AtomPrefix}
	Bufs  = Namespace{"bufs", lv2.BufSizePrefix}
	DG    = Namespace{"dg", "http://www.darkglass.com/lv2/ns#"}
	DOAP  = Namespace{"doap", "http://usefulinc.com/ns/doap#"}
	KX    = Namespace{"kx", "http://kxstudio.sf.net/ns/lv2ext/props#"}
	FOAF  = Namespace{"foaf", "http://xmlns.com/foaf/0.1/"}
	LV2   = Namespace{"lv2", lv2.CorePrefix}
	Opts  = Namespace{"opts", lv2.OptionsPrefix}
	PProp = Namespace{"pprop", lv2.PortPropsPrefix}
	PSet  = Namespace{"pset", lv2.PresetsPrefix}
	RDF   = Namespace{"rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"}
	RDFS  = Namespace{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"}
	Units = Namespace{"units", lv2.UnitsPrefix}
	URID  = Namespace{"urid", lv2.URIDPrefix}
)

// Writer writes Turtle text and latches the first error, so callers check Err
// once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Printf writes formatted text unless an earlier write failed.
func (w *Writer) Printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// WriteString writes s unless an earlier write failed.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Prefixes writes one @prefix line per namespace followed by a blank line.
// IRIs are aligned one column past the longest prefix.
func (w *Writer) Prefixes(namespaces ...Namespace) {
	width := 0
	for _, ns := range namespaces {
		if n := len(ns.Prefix) + 1; n > width {
			width = n
		}
	}
	for _, ns := range namespaces {
		w.Printf("@prefix %-*s <%s> .\n", width, ns.Prefix+":", ns.IRI)
	}
	w.WriteString("\n")
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Float formats a number with six decimals, the way LV2 port values are
// written.
func Float(v float64) string {
	return fmt.Sprintf("%f", v)
}

const hexDigits = "0123456789ABCDEF"

func escape(s, legal string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || strings.IndexByte(legal, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&15])
	}
	return b.String()
}

// EscapePath percent-encodes s for use as a relative IRI such as a binary
// file name.
func EscapePath(s string) string {
	return escape(s, ",$_-.*!'()")
}

// EscapeParam percent-encodes s with the stricter parameter alphabet.
func EscapeParam(s string) string {
	return escape(s, "_-.~()")
}

// Symbol turns an arbitrary id into a valid lv2:symbol: escaped, then every
// character outside [A-Za-z0-9_] replaced by '_' and a leading digit
// replaced as well.
func Symbol(id string) string {
	escaped := EscapeParam(id)
	if escaped == "" {
		return ""
	}

	b := []byte(escaped)
	if !isAlpha(b[0]) && b[0] != '_' {
		b[0] = '_'
	}
	for i := 1; i < len(b); i++ {
		if !isAlnum(b[i]) && b[i] != '_' {
			b[i] = '_'
		}
	}
	return string(b)
}

// Quote makes s safe inside a double-quoted literal.
func Quote(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
