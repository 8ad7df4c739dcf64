package enums

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync/atomic"
)

// Type is the immutable metadata cache for one registered enumeration. It
// holds the canonical members sorted by value, the aliases that share values
// with them, the aggregate of all single-bit flag values, and lazily built
// string lookup tables per format. A Type is built once per process and is
// safe for unsynchronized concurrent use.
type Type[T Underlying] struct {
	name      string
	rtype     reflect.Type
	tr        traits
	flags     bool
	validator func(T) bool

	members    []memberData[T] // canonical members, ascending by value
	dups       []memberData[T] // aliases, ascending by value then declaration
	min, max   T               // zero when the enumeration has no members
	contiguous bool
	allFlags   T

	builtin [numBuiltinFormats]atomic.Pointer[memberIndex]
	custom  atomic.Pointer[map[Format]*memberIndex]
}

// newType runs the cache construction pass over the source's declared
// members. Members are deduplicated by value: the first declaration (or the
// one carrying Primary) becomes canonical and the rest become aliases.
func newType[T Underlying](src Source[T], cfg registerConfig, rt reflect.Type) (*Type[T], error) {
	specs, err := src.Members()
	if err != nil {
		return nil, NewRegisterError(cfg.name, fmt.Errorf("%w: %w", ErrSourceFailed, err))
	}

	t := &Type[T]{
		name:  cfg.name,
		rtype: rt,
		tr:    traitsFor[T](),
		flags: cfg.flags,
	}
	if cfg.validator != nil {
		fn, ok := cfg.validator.(func(T) bool)
		if !ok {
			return nil, NewRegisterError(cfg.name, fmt.Errorf("validator is %T, want func(%s) bool", cfg.validator, rt))
		}
		t.validator = fn
	}

	seen := make(map[T]int, len(specs))
	names := make(map[string]struct{}, len(specs))
	canon := make([]memberData[T], 0, len(specs))
	var dups []memberData[T]
	for i, sp := range specs {
		if strings.TrimSpace(sp.Name) == "" {
			return nil, NewRegisterError(cfg.name, fmt.Errorf("%w: empty name at member %d", ErrInvalidMember, i))
		}
		if _, dup := names[sp.Name]; dup {
			return nil, NewRegisterError(cfg.name, fmt.Errorf("%w: duplicate name %q", ErrInvalidMember, sp.Name))
		}
		names[sp.Name] = struct{}{}

		rec := memberData[T]{value: sp.Value, name: sp.Name, attrs: newAttributes(sp.Attrs)}
		if j, ok := seen[sp.Value]; ok {
			// A later member carrying Primary displaces the current
			// canonical member, which becomes an alias.
			if rec.attrs.IsPrimary() && !canon[j].attrs.IsPrimary() {
				canon[j], rec = rec, canon[j]
			}
			dups = append(dups, rec)
		} else {
			seen[sp.Value] = len(canon)
			canon = append(canon, rec)
		}
	}

	byValue := func(a, b memberData[T]) int { return cmp.Compare(a.value, b.value) }
	slices.SortStableFunc(canon, byValue)
	slices.SortStableFunc(dups, byValue)
	for i := range canon {
		canon[i].canonical = true
	}

	var all T
	for i := range canon {
		if isBit(bitsOf(canon[i].value, &t.tr)) {
			all |= canon[i].value
		}
	}
	t.allFlags = all

	if n := len(canon); n > 0 {
		t.min = canon[0].value
		t.max = canon[n-1].value
		t.contiguous = t.max-T(n-1) == t.min
	}
	t.members = slices.Clip(canon)
	t.dups = slices.Clip(dups)
	return t, nil
}

// TypeName returns the name the enumeration was registered under.
func (t *Type[T]) TypeName() string { return t.name }

// ReflectType returns the enumeration's Go type.
func (t *Type[T]) ReflectType() reflect.Type { return t.rtype }

// Kind returns the reflect kind of the underlying type.
func (t *Type[T]) Kind() reflect.Kind { return t.tr.kind }

// BitSize returns the width of the underlying type in bits.
func (t *Type[T]) BitSize() int { return t.tr.bits }

// Signed reports whether the underlying type is signed.
func (t *Type[T]) Signed() bool { return t.tr.signed }

// IsFlagType reports whether the enumeration was registered as a flag type.
func (t *Type[T]) IsFlagType() bool { return t.flags }

// IsContiguous reports whether the canonical member values form a gap-free
// run. Contiguous enumerations answer definedness checks with two compares.
func (t *Type[T]) IsContiguous() bool { return t.contiguous }

// lookup returns the canonical member record for v, if v is defined.
func (t *Type[T]) lookup(v T) (*memberData[T], bool) {
	if t.contiguous {
		if v < t.min || v > t.max {
			return nil, false
		}
		return &t.members[memberIndexOf(v, t.min, &t.tr)], true
	}
	i, ok := slices.BinarySearchFunc(t.members, v, func(m memberData[T], target T) int {
		return cmp.Compare(m.value, target)
	})
	if !ok {
		return nil, false
	}
	return &t.members[i], true
}

// Member returns the canonical member for v, if v is defined.
func (t *Type[T]) Member(v T) (Member[T], bool) {
	d, ok := t.lookup(v)
	if !ok {
		return Member[T]{}, false
	}
	return Member[T]{owner: t, data: d}, true
}

// Name returns the canonical name of v, if v is defined.
func (t *Type[T]) Name(v T) (string, bool) {
	d, ok := t.lookup(v)
	if !ok {
		return "", false
	}
	return d.name, true
}

// FromInt64 converts x into the enumeration's underlying type, range-checked.
// The result is not required to be a defined member; combine with IsValid
// when definedness matters.
func (t *Type[T]) FromInt64(x int64) (T, error) {
	v, ok := fromInt64[T](x, &t.tr)
	if !ok {
		return 0, NewConversionError(t.name, decimalInt64(x), ErrOutOfRange)
	}
	return v, nil
}

// FromUint64 is the unsigned counterpart of FromInt64.
func (t *Type[T]) FromUint64(x uint64) (T, error) {
	v, ok := fromUint64[T](x, &t.tr)
	if !ok {
		return 0, NewConversionError(t.name, decimalUint64(x), ErrOutOfRange)
	}
	return v, nil
}

// memberAt resolves a member ordinal produced by the lookup indexes:
// canonical members first, aliases after.
func (t *Type[T]) memberAt(i int32) *memberData[T] {
	if int(i) < len(t.members) {
		return &t.members[i]
	}
	return &t.dups[int(i)-len(t.members)]
}

func (t *Type[T]) memberTotal() int { return len(t.members) + len(t.dups) }
