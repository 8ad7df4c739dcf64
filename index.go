package enums

import (
	"maps"
	"math/bits"
	"sync/atomic"
)

// memberIndex maps formatted member strings back to member ordinals for one
// (enumeration, format) pair. Entries live in a flat array; buckets hold the
// head of an intrusive collision chain per hash slot. The bucket count is
// the member count rounded up to a power of two, so slot selection is a
// mask. Later entries are prepended to their chain, so among members that
// format to the same string the later-declared one is found.
//
// The case-insensitive view reuses the entry array with its own bucket and
// link arrays under folded hashes. It is built on first use and published
// with a compare-and-swap; a racing builder's work is discarded.
type memberIndex struct {
	entries []indexEntry
	buckets []int32 // index of chain head, -1 when empty
	mask    uint32
	fold    atomic.Pointer[foldIndex]
}

type indexEntry struct {
	hash uint32
	str  string
	mi   int32 // member ordinal: canonical members first, then aliases
	next int32
}

type foldIndex struct {
	hashes  []uint32
	buckets []int32
	next    []int32
}

func newMemberIndex(strs []string, ords []int32, total int) *memberIndex {
	size := nextPow2(total)
	idx := &memberIndex{
		entries: make([]indexEntry, 0, len(strs)),
		buckets: make([]int32, size),
		mask:    uint32(size - 1),
	}
	for i := range idx.buckets {
		idx.buckets[i] = -1
	}
	for i, s := range strs {
		h := hashString(s)
		b := h & idx.mask
		idx.entries = append(idx.entries, indexEntry{
			hash: h,
			str:  s,
			mi:   ords[i],
			next: idx.buckets[b],
		})
		idx.buckets[b] = int32(len(idx.entries) - 1)
	}
	return idx
}

// lookup returns the member ordinal indexed under exactly s.
func (idx *memberIndex) lookup(s string) (int32, bool) {
	if len(idx.entries) == 0 {
		return 0, false
	}
	h := hashString(s)
	for ei := idx.buckets[h&idx.mask]; ei >= 0; ei = idx.entries[ei].next {
		e := &idx.entries[ei]
		if e.hash == h && e.str == s {
			return e.mi, true
		}
	}
	return 0, false
}

// lookupFold returns the member ordinal indexed under s with ASCII case
// folding, building the folded view on first use.
func (idx *memberIndex) lookupFold(s string) (int32, bool) {
	if len(idx.entries) == 0 {
		return 0, false
	}
	f := idx.fold.Load()
	if f == nil {
		f = idx.buildFold()
		if !idx.fold.CompareAndSwap(nil, f) {
			f = idx.fold.Load()
		}
	}
	h := hashFold(s)
	for ei := f.buckets[h&idx.mask]; ei >= 0; ei = f.next[ei] {
		if f.hashes[ei] == h && equalFold(idx.entries[ei].str, s) {
			return idx.entries[ei].mi, true
		}
	}
	return 0, false
}

func (idx *memberIndex) buildFold() *foldIndex {
	f := &foldIndex{
		hashes:  make([]uint32, len(idx.entries)),
		buckets: make([]int32, len(idx.buckets)),
		next:    make([]int32, len(idx.entries)),
	}
	for i := range f.buckets {
		f.buckets[i] = -1
	}
	for i := range idx.entries {
		h := hashFold(idx.entries[i].str)
		b := h & idx.mask
		f.hashes[i] = h
		f.next[i] = f.buckets[b]
		f.buckets[b] = int32(i)
	}
	return f
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// FNV-1a.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

func hashString(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}

// hashFold hashes s with ASCII upper-case letters folded to lower, matching
// equalFold so folded-equal strings always land in the same bucket.
func hashFold(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// equalFold compares byte-wise under ASCII case folding. Case-insensitive
// matching is deliberately ASCII-only so hashing and comparison agree.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// indexFor returns the lookup index for f, building and publishing it on
// first use. Builds may race; the first published result wins and losing
// builds are discarded.
func (t *Type[T]) indexFor(f Format) *memberIndex {
	if f >= 0 && f < numBuiltinFormats {
		slot := &t.builtin[f]
		if idx := slot.Load(); idx != nil {
			return idx
		}
		idx := t.buildIndex(f)
		if !slot.CompareAndSwap(nil, idx) {
			idx = slot.Load()
		}
		return idx
	}
	for {
		cur := t.custom.Load()
		if cur != nil {
			if idx, ok := (*cur)[f]; ok {
				return idx
			}
		}
		idx := t.buildIndex(f)
		next := make(map[Format]*memberIndex, 1)
		if cur != nil {
			maps.Copy(next, *cur)
		}
		next[f] = idx
		if t.custom.CompareAndSwap(cur, &next) {
			return idx
		}
	}
}

// buildIndex formats every member (canonical and alias) under f and indexes
// the ones that produce a string.
func (t *Type[T]) buildIndex(f Format) *memberIndex {
	total := t.memberTotal()
	strs := make([]string, 0, total)
	ords := make([]int32, 0, total)
	for i := 0; i < total; i++ {
		d := t.memberAt(int32(i))
		if s, ok := t.formatValue(d.value, d, f); ok {
			strs = append(strs, s)
			ords = append(ords, int32(i))
		}
	}
	return newMemberIndex(strs, ords, total)
}
