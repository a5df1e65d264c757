package ttl

import (
	"bytes"
	"errors"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000000"},
		{1, "1.000000"},
		{-20, "-20.000000"},
		{0.5, "0.500000"},
		{1.0 / 3, "0.333333"},
	}

	for _, tt := range tests {
		if got := Float(tt.in); got != tt.want {
			t.Errorf("Float(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"PathPlain", EscapePath, "libgain.so", "libgain.so"},
		{"PathSpace", EscapePath, "my gain.so", "my%20gain.so"},
		{"PathLegal", EscapePath, "a,b$c*d!e'f(g)", "a,b$c*d!e'f(g)"},
		{"ParamTilde", EscapeParam, "a~b", "a~b"},
		{"ParamComma", EscapeParam, "a,b", "a%2Cb"},
		{"ParamUTF8", EscapeParam, "é", "%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gain", "gain"},
		{"Gain_2", "Gain_2"},
		{"drive-amount", "drive_amount"},
		{"out level", "out_20level"},
		{"2nd", "_nd"},
		{"_private", "_private"},
		{"a.b~c", "a_b_c"},
		{"(x)", "_x_"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Symbol(tt.in); got != tt.want {
				t.Errorf("Symbol(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteAndTruncate(t *testing.T) {
	if got := Quote(`say "hi"`); got != "say 'hi'" {
		t.Errorf("Quote = %q", got)
	}
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("äöü", 2); got != "äö" {
		t.Errorf("Truncate runes = %q", got)
	}
	if got := Truncate("ab", 32); got != "ab" {
		t.Errorf("Truncate short = %q", got)
	}
}

func TestPrefixes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Prefixes(LV2, PSet, RDFS)

	want := "@prefix lv2:  <http://lv2plug.in/ns/lv2core#> .\n" +
		"@prefix pset: <http://lv2plug.in/ns/ext/presets#> .\n" +
		"@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("Prefixes wrote\n%s\nwant\n%s", buf.String(), want)
	}
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriterLatchesError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)

	w.WriteString("a")
	w.Printf("%d", 1)
	w.Prefixes(LV2)

	if w.Err() == nil {
		t.Fatal("Expected the write error")
	}
	if fw.calls != 1 {
		t.Errorf("Writes after the first error should be skipped, got %d calls", fw.calls)
	}
}
