package enums

import (
	"reflect"
	"testing"
)

// TestHasAnyFlags verifies overlap checks, including the no-mask form.
func TestHasAnyFlags(t *testing.T) {
	colors := colorType(t)
	tests := []struct {
		name  string
		v     Color
		masks []Color
		want  bool
	}{
		{"no masks nonzero", 2, nil, true},
		{"no masks zero", 0, nil, false},
		{"overlap", 3, []Color{ColorGreen}, true},
		{"no overlap", 3, []Color{ColorBlue}, false},
		{"masks combined", 4, []Color{ColorRed, ColorBlue}, true},
		{"zero against masks", 0, []Color{ColorRed}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colors.HasAnyFlags(tt.v, tt.masks...); got != tt.want {
				t.Errorf("HasAnyFlags(%d, %v) = %v, want %v", tt.v, tt.masks, got, tt.want)
			}
		})
	}
}

// TestHasAllFlags verifies containment checks, including the no-mask form
// that tests against every defined flag.
func TestHasAllFlags(t *testing.T) {
	colors := colorType(t)
	tests := []struct {
		name  string
		v     Color
		masks []Color
		want  bool
	}{
		{"all defined flags present", 7, nil, true},
		{"some defined flags missing", 3, nil, false},
		{"contains combined masks", 3, []Color{ColorRed, ColorGreen}, true},
		{"missing one mask flag", 3, []Color{ColorBlue}, false},
		{"empty value contains nothing", 0, []Color{ColorRed}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colors.HasAllFlags(tt.v, tt.masks...); got != tt.want {
				t.Errorf("HasAllFlags(%d, %v) = %v, want %v", tt.v, tt.masks, got, tt.want)
			}
		})
	}
}

// TestToggleFlags verifies flag inversion and that toggling twice restores
// the original value.
func TestToggleFlags(t *testing.T) {
	colors := colorType(t)

	if got := colors.ToggleFlags(5, ColorRed); got != 4 {
		t.Errorf("ToggleFlags(5, Red) = %d, want 4", got)
	}
	if got := colors.ToggleFlags(4, ColorRed); got != 5 {
		t.Errorf("ToggleFlags(4, Red) = %d, want 5", got)
	}
	// No masks inverts every defined flag.
	if got := colors.ToggleFlags(5); got != 2 {
		t.Errorf("ToggleFlags(5) = %d, want 2", got)
	}

	for _, v := range []Color{0, 1, 3, 5, 7, 9} {
		for _, m := range []Color{1, 2, 4, 6, 7} {
			if got := colors.ToggleFlags(colors.ToggleFlags(v, m), m); got != v {
				t.Errorf("double toggle of %d by %d = %d, want original", v, m, got)
			}
		}
	}
}

// TestFlagSetOperations verifies union, intersection, and difference.
func TestFlagSetOperations(t *testing.T) {
	colors := colorType(t)

	if got := colors.CombineFlags(); got != 0 {
		t.Errorf("CombineFlags() = %d, want 0", got)
	}
	if got := colors.CombineFlags(ColorRed, ColorGreen, ColorBlue); got != 7 {
		t.Errorf("CombineFlags(Red, Green, Blue) = %d, want 7", got)
	}
	if got := colors.CombineFlags(3, 6); got != 7 {
		t.Errorf("CombineFlags(3, 6) = %d, want 7", got)
	}
	if got := colors.CommonFlags(3, 6); got != 2 {
		t.Errorf("CommonFlags(3, 6) = %d, want 2", got)
	}
	if got := colors.RemoveFlags(7, ColorGreen); got != 5 {
		t.Errorf("RemoveFlags(7, Green) = %d, want 5", got)
	}
	// Removing bits that are not set is a no-op.
	if got := colors.RemoveFlags(4, ColorRed); got != 4 {
		t.Errorf("RemoveFlags(4, Red) = %d, want 4", got)
	}
}

// TestFlagCounts verifies the defined-flag counters.
func TestFlagCounts(t *testing.T) {
	colors := colorType(t)
	if got := colors.FlagCount(); got != 3 {
		t.Errorf("FlagCount() = %d, want 3", got)
	}
	if got := colors.CountFlags(7); got != 3 {
		t.Errorf("CountFlags(7) = %d, want 3", got)
	}
	// The undefined bit 8 does not count.
	if got := colors.CountFlags(9); got != 1 {
		t.Errorf("CountFlags(9) = %d, want 1", got)
	}
	if got := colors.CountFlags(7, 3); got != 2 {
		t.Errorf("CountFlags(7, 3) = %d, want 2", got)
	}
	if got := colors.CountFlags(7, 3, ColorRed); got != 1 {
		t.Errorf("CountFlags(7, 3, Red) = %d, want 1", got)
	}

	signals := signalType(t)
	if got := signals.FlagCount(); got != 4 {
		t.Errorf("Signal FlagCount() = %d, want 4", got)
	}
}

// TestFlagValues verifies decomposition into defined single-bit flags in
// ascending bit order.
func TestFlagValues(t *testing.T) {
	colors := colorType(t)
	tests := []struct {
		v    Color
		want []Color
	}{
		{0, nil},
		{ColorRed, []Color{ColorRed}},
		{5, []Color{ColorRed, ColorBlue}},
		{7, []Color{ColorRed, ColorGreen, ColorBlue}},
		{9, []Color{ColorRed}}, // bit 8 is not a defined flag
	}
	for _, tt := range tests {
		var got []Color
		for fv := range colors.FlagValues(tt.v) {
			got = append(got, fv)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FlagValues(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}

	// The walk is lazy: breaking stops it.
	var first []Color
	for fv := range colors.FlagValues(7) {
		first = append(first, fv)
		break
	}
	if !reflect.DeepEqual(first, []Color{ColorRed}) {
		t.Errorf("first flag = %v, want [Red]", first)
	}

	// The sign bit decomposes after the low bits.
	signals := signalType(t)
	var sig []Signal
	for fv := range signals.FlagValues(SignalAck | SignalCarrier) {
		sig = append(sig, fv)
	}
	if !reflect.DeepEqual(sig, []Signal{SignalAck, SignalCarrier}) {
		t.Errorf("Signal FlagValues = %v, want [Ack Carrier]", sig)
	}
}

// TestFlagMembers verifies member decomposition.
func TestFlagMembers(t *testing.T) {
	colors := colorType(t)
	var names []string
	for m := range colors.FlagMembers(5) {
		names = append(names, m.Name())
	}
	want := []string{"Red", "Blue"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("FlagMembers(5) names = %v, want %v", names, want)
	}
}

// TestAppendFlagValues verifies the eager variant preserves an existing
// prefix.
func TestAppendFlagValues(t *testing.T) {
	colors := colorType(t)
	dst := []Color{9}
	dst = colors.AppendFlagValues(dst, 3)
	want := []Color{9, ColorRed, ColorGreen}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("AppendFlagValues = %v, want %v", dst, want)
	}
}

// TestFlagRoundTrip verifies that formatting any valid combination and
// parsing it back reproduces the value, with the default and a custom
// delimiter.
func TestFlagRoundTrip(t *testing.T) {
	colors := colorType(t)
	for v := Color(0); v <= 7; v++ {
		s, ok := colors.FormatFlags(v)
		if !ok {
			t.Fatalf("FormatFlags(%d) reported no rendering", v)
		}
		back, err := colors.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if back != v {
			t.Errorf("round trip of %d through %q = %d", v, s, back)
		}

		s, _ = colors.FormatFlags(v, WithDelimiter(" | "))
		back, err = colors.Parse(s, WithDelimiter(" | "))
		if err != nil || back != v {
			t.Errorf("round trip of %d through %q with custom delimiter = %d, %v", v, s, back, err)
		}
	}

	signals := signalType(t)
	for _, v := range []Signal{0, SignalAck, SignalCarrier, SignalAck | SignalUrg, SignalCarrier | SignalSyn, -61} {
		s, ok := signals.FormatFlags(v)
		if !ok {
			t.Fatalf("FormatFlags(%d) reported no rendering", v)
		}
		back, err := signals.Parse(s)
		if err != nil || back != v {
			t.Errorf("round trip of %d through %q = %d, %v", v, s, back, err)
		}
	}
}
