package enums

import (
	"iter"
	"math/bits"
	"slices"
	"strings"
)

// DefaultFlagDelimiter separates flag renderings in composite strings and is
// the default token separator when parsing them back.
const DefaultFlagDelimiter = ", "

// AllFlags returns the combination of every defined single-bit flag value.
func (t *Type[T]) AllFlags() T { return t.allFlags }

// HasAnyFlags reports whether v has any flag in common with the combined
// masks. With no masks it reports whether v has any bit set at all.
func (t *Type[T]) HasAnyFlags(v T, masks ...T) bool {
	if len(masks) == 0 {
		return v != 0
	}
	var m T
	for _, x := range masks {
		m |= x
	}
	return v&m != 0
}

// HasAllFlags reports whether v contains every flag of the combined masks.
// With no masks it checks v against all defined flags.
func (t *Type[T]) HasAllFlags(v T, masks ...T) bool {
	m := t.allFlags
	if len(masks) > 0 {
		m = 0
		for _, x := range masks {
			m |= x
		}
	}
	return v&m == m
}

// ToggleFlags returns v with the combined masks' flags inverted. With no
// masks every defined flag is inverted.
func (t *Type[T]) ToggleFlags(v T, masks ...T) T {
	m := t.allFlags
	if len(masks) > 0 {
		m = 0
		for _, x := range masks {
			m |= x
		}
	}
	return v ^ m
}

// CombineFlags returns the union of the given values; with none it returns
// the empty combination.
func (t *Type[T]) CombineFlags(vs ...T) T {
	var r T
	for _, v := range vs {
		r |= v
	}
	return r
}

// CommonFlags returns the flags present in both v and other.
func (t *Type[T]) CommonFlags(v, other T) T { return v & other }

// RemoveFlags returns v with other's flags cleared.
func (t *Type[T]) RemoveFlags(v, other T) T { return v &^ other }

// FlagCount returns the number of defined single-bit flags.
func (t *Type[T]) FlagCount() int { return popCount(t.allFlags, &t.tr) }

// CountFlags returns the number of defined flags set in v, optionally
// restricted to the given masks.
func (t *Type[T]) CountFlags(v T, within ...T) int {
	b := bitsOf(v, &t.tr) & bitsOf(t.allFlags, &t.tr)
	for _, w := range within {
		b &= bitsOf(w, &t.tr)
	}
	return bits.OnesCount64(b)
}

// FlagValues returns v's defined single-bit flags in ascending bit order.
// Bits of v that do not belong to a defined flag are skipped. The walk is
// lazy; breaking out of the loop stops it.
func (t *Type[T]) FlagValues(v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		b := bitsOf(v, &t.tr) & bitsOf(t.allFlags, &t.tr)
		for b != 0 {
			bit := uint64(1) << bits.TrailingZeros64(b)
			b &^= bit
			if !yield(T(bit)) {
				return
			}
		}
	}
}

// FlagMembers returns the members of v's defined single-bit flags in
// ascending bit order.
func (t *Type[T]) FlagMembers(v T) iter.Seq[Member[T]] {
	values := t.FlagValues(v)
	return func(yield func(Member[T]) bool) {
		for fv := range values {
			if d, ok := t.lookup(fv); ok {
				if !yield(Member[T]{owner: t, data: d}) {
					return
				}
			}
		}
	}
}

// AppendFlagValues appends v's defined single-bit flags to dst in ascending
// bit order, growing it at most once, and returns the extended slice.
func (t *Type[T]) AppendFlagValues(dst []T, v T) []T {
	dst = slices.Grow(dst, t.CountFlags(v))
	for fv := range t.FlagValues(v) {
		dst = append(dst, fv)
	}
	return dst
}

// FormatFlags renders v as a composite flag string: the flags of v rendered
// through the format chain in ascending bit order and joined with the
// delimiter. Values with an exact member, the zero value, and combinations
// containing undefined bits are rendered through the format chain as a
// single value instead. The options honored are WithFormats and
// WithDelimiter.
//
// The second result is false only when a chain of member-attribute formats
// produced nothing; the default chain always produces a string.
func (t *Type[T]) FormatFlags(v T, opts ...Option) (string, bool) {
	return t.formatFlags(v, newOpConfig(opts))
}

func (t *Type[T]) formatFlags(v T, cfg opConfig) (string, bool) {
	formats := cfg.formats
	if len(formats) == 0 {
		formats = defaultFormats
	}
	t.checkFormats("FormatFlags", formats)

	d, defined := t.lookup(v)
	if defined || v == 0 || !t.IsValidFlagCombination(v) {
		return t.formatChain(v, d, formats)
	}

	var sb strings.Builder
	first := true
	b := bitsOf(v, &t.tr)
	for b != 0 {
		bit := uint64(1) << bits.TrailingZeros64(b)
		b &^= bit
		fv := T(bit)
		fd, _ := t.lookup(fv)
		s, ok := t.formatChain(fv, fd, formats)
		if !ok {
			return "", false
		}
		if !first {
			sb.WriteString(cfg.delim)
		}
		sb.WriteString(s)
		first = false
	}
	return sb.String(), true
}
