package enums

import (
	"strings"
	"testing"
)

// TestNextPow2 verifies bucket sizing.
func TestNextPow2(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{7, 8}, {8, 8}, {9, 16}, {16, 16}, {17, 32}, {1000, 1024},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.n); got != tt.want {
			t.Errorf("nextPow2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// TestMemberIndexLookup verifies exact-string lookup.
func TestMemberIndexLookup(t *testing.T) {
	idx := newMemberIndex([]string{"Red", "Green", "Blue"}, []int32{0, 1, 2}, 3)

	for i, s := range []string{"Red", "Green", "Blue"} {
		mi, ok := idx.lookup(s)
		if !ok || mi != int32(i) {
			t.Errorf("lookup(%q) = %d, %v, want %d", s, mi, ok, i)
		}
	}
	if _, ok := idx.lookup("Purple"); ok {
		t.Error("lookup(Purple) hit, want miss")
	}
	if _, ok := idx.lookup(""); ok {
		t.Error("lookup of empty string hit, want miss")
	}

	empty := newMemberIndex(nil, nil, 0)
	if _, ok := empty.lookup("Red"); ok {
		t.Error("lookup on empty index hit")
	}
	if _, ok := empty.lookupFold("Red"); ok {
		t.Error("lookupFold on empty index hit")
	}
}

// TestMemberIndexLastWins verifies that among entries indexed under the
// same string the later one is found.
func TestMemberIndexLastWins(t *testing.T) {
	idx := newMemberIndex([]string{"Dup", "Dup", "Other"}, []int32{0, 1, 2}, 3)
	mi, ok := idx.lookup("Dup")
	if !ok || mi != 1 {
		t.Errorf("lookup(Dup) = %d, %v, want 1", mi, ok)
	}
	mi, ok = idx.lookupFold("dup")
	if !ok || mi != 1 {
		t.Errorf("lookupFold(dup) = %d, %v, want 1", mi, ok)
	}
}

// TestLookupFold verifies the case-insensitive view and its lazy
// construction.
func TestLookupFold(t *testing.T) {
	idx := newMemberIndex([]string{"Red", "GREEN", "blue"}, []int32{0, 1, 2}, 3)
	if idx.fold.Load() != nil {
		t.Fatal("folded view built before first use")
	}

	tests := []struct {
		s    string
		want int32
		ok   bool
	}{
		{"red", 0, true},
		{"RED", 0, true},
		{"green", 1, true},
		{"Green", 1, true},
		{"BLUE", 2, true},
		{"blu", 0, false},
		{"redd", 0, false},
	}
	for _, tt := range tests {
		mi, ok := idx.lookupFold(tt.s)
		if ok != tt.ok || (ok && mi != tt.want) {
			t.Errorf("lookupFold(%q) = %d, %v, want %d, %v", tt.s, mi, ok, tt.want, tt.ok)
		}
	}

	if idx.fold.Load() == nil {
		t.Error("folded view not published after use")
	}
	// Exact lookup is unaffected by folding.
	if _, ok := idx.lookup("red"); ok {
		t.Error("exact lookup matched a case variant")
	}
}

// TestFoldHashAgreement verifies that the folded hash equals the hash of
// the lower-cased string, the invariant the folded buckets rely on.
func TestFoldHashAgreement(t *testing.T) {
	for _, s := range []string{"", "Red", "GREEN", "mIxEd123", "with space", "under_score"} {
		if got, want := hashFold(s), hashString(strings.ToLower(s)); got != want {
			t.Errorf("hashFold(%q) = %#x, want %#x", s, got, want)
		}
	}
}

// TestEqualFold verifies the ASCII-only fold comparison.
func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"Red", "red", true},
		{"RED", "red", true},
		{"Red", "Rette", false},
		{"Red", "Re", false},
		{"a1b", "A1B", true},
		{"a-b", "A_B", false},
		// Folding is deliberately ASCII-only.
		{"K", "K", false},
	}
	for _, tt := range tests {
		if got := equalFold(tt.a, tt.b); got != tt.want {
			t.Errorf("equalFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestIndexFor verifies that per-format indexes are built once and reused,
// for builtin and custom formats alike.
func TestIndexFor(t *testing.T) {
	colors := colorType(t)

	a := colors.indexFor(FormatName)
	b := colors.indexFor(FormatName)
	if a != b {
		t.Error("builtin index rebuilt on second use")
	}

	custom := RegisterFormat(func(m MemberInfo) (string, bool) {
		return m.Name() + "!", true
	})
	c := colors.indexFor(custom)
	d := colors.indexFor(custom)
	if c != d {
		t.Error("custom index rebuilt on second use")
	}
	if mi, ok := c.lookup("Green!"); !ok || colors.memberAt(mi).value != ColorGreen {
		t.Error("custom index lookup failed")
	}
}

// TestIndexSkipsAbsentRenderings verifies that members without a rendering
// under a format are left out of its index.
func TestIndexSkipsAbsentRenderings(t *testing.T) {
	colors := colorType(t)
	idx := colors.indexFor(FormatSerialized)
	if _, ok := idx.lookup("red"); !ok {
		t.Error("serialized index missing red")
	}
	// Blue has no serialized name and must not be indexed under any string.
	if _, ok := idx.lookup("Blue"); ok {
		t.Error("serialized index contains the declared name of an unserialized member")
	}
	if _, ok := idx.lookup(""); ok {
		t.Error("serialized index contains an empty rendering")
	}
}

func BenchmarkIndexLookup(b *testing.B) {
	days := weekdayType(b)
	idx := days.indexFor(FormatName)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := idx.lookup("Thursday"); !ok {
			b.Fatal("miss")
		}
	}
}
