package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Value text for the common units. Formatters receive plain values; the
// labels they produce become scale point labels of discrete ports.

// silenceDB and below is shown as -inf.
const silenceDB = -60.0

// DecibelFormatter formats dB values
func DecibelFormatter(db float64) string {
	if db <= silenceDB {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser parses dB strings; any "inf" reads as -96 dB.
func DecibelParser(str string) (float64, error) {
	if strings.Contains(str, "inf") {
		return -96.0, nil
	}
	return parseScaled(str, map[string]float64{"db": 1})
}

// PercentFormatter formats percentage values
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser parses percentage strings
func PercentParser(str string) (float64, error) {
	return parseScaled(str, map[string]float64{"%": 1})
}

// FrequencyFormatter formats frequency values with Hz/kHz
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser parses "440", "440 Hz" or "1.5 kHz".
func FrequencyParser(str string) (float64, error) {
	return parseScaled(str, map[string]float64{"khz": 1000, "hz": 1})
}

// parseScaled parses a number followed by an optional case-insensitive unit
// suffix and multiplies it by the suffix scale. Longer suffixes win.
func parseScaled(str string, scales map[string]float64) (float64, error) {
	str = strings.TrimSpace(str)
	lower := strings.ToLower(str)

	scale, matched := 1.0, 0
	for suffix, s := range scales {
		if len(suffix) > matched && strings.HasSuffix(lower, suffix) {
			scale, matched = s, len(suffix)
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(str[:len(str)-matched]), 64)
	if err != nil {
		return 0, err
	}
	return v * scale, nil
}

// OnOffFormatter formats boolean as On/Off
func OnOffFormatter(value float64) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}

// OnOffParser parses On/Off strings
func OnOffParser(str string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "on", "yes", "true", "1":
		return 1, nil
	case "off", "no", "false", "0":
		return 0, nil
	default:
		return 0, fmt.Errorf("expected 'on' or 'off', got: %s", str)
	}
}
