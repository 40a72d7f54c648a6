package schema

import (
	"strings"
)

// GetBand classifies a value in [0,1] into the low, medium or high band.
func GetBand(v float64) Band {
	return GetBandWith(v, DefaultLowThreshold)
}

// GetBandWith classifies a value with a custom upper bound for the low band.
func GetBandWith(v, low float64) Band {
	switch {
	case v <= low:
		return LowBand
	case v <= MediumBandThreshold:
		return MediumBand
	default:
		return HighBand
	}
}

// JoinStyles formats styles by display name, e.g. "Event-Driven, Hybrid".
func JoinStyles(styles []Style) string {
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, s.DisplayName())
	}
	return strings.Join(names, ", ")
}

// ParseStyles parses a comma-separated list of style names, skipping blanks and unknown names.
func ParseStyles(s string) []Style {
	var out []Style
	for part := range strings.SplitSeq(s, ",") {
		st := Style(strings.TrimSpace(part))
		if _, ok := ValidStyles[st]; ok {
			out = append(out, st)
		}
	}
	return out
}

// FormatStyles formats styles by key for storage, e.g. "events,hybrid".
func FormatStyles(styles []Style) string {
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}
