package enums

import (
	"fmt"
	"iter"
	"reflect"
)

// Untyped is the type-erased view of a registered enumeration, for callers
// that dispatch on reflect.Type or registered name rather than on a type
// parameter (serialization layers, schema generators, diagnostics). Values
// cross the boundary as any: inputs must hold the enumeration's exact Go
// type, and outputs box it.
//
// Obtain one from ByType, ByName, Types, or Type.Untyped.
type Untyped interface {
	// TypeName returns the name the enumeration was registered under.
	TypeName() string
	// ReflectType returns the enumeration's Go type.
	ReflectType() reflect.Type
	// Kind returns the reflect kind of the underlying type.
	Kind() reflect.Kind
	// BitSize returns the width of the underlying type in bits.
	BitSize() int
	// Signed reports whether the underlying type is signed.
	Signed() bool
	// IsFlagType reports whether the enumeration is a flag type.
	IsFlagType() bool
	// IsContiguous reports whether the member values form a gap-free run.
	IsContiguous() bool
	// Count returns the number of members covered by sel.
	Count(sel Selection) int
	// Names returns the member names covered by sel in value order.
	Names(sel Selection) iter.Seq[string]

	// FromInt64 converts x into the enumeration's type, range-checked.
	FromInt64(x int64) (any, error)
	// FromUint64 converts x into the enumeration's type, range-checked.
	FromUint64(x uint64) (any, error)
	// Parse converts s into a value of the enumeration.
	Parse(s string, opts ...Option) (any, error)
	// AsString returns the general rendering of v.
	AsString(v any) (string, error)
	// Format renders v under a single-letter format code.
	Format(v any, code rune) (string, error)
	// IsDefined reports whether v has a defined member.
	IsDefined(v any) (bool, error)
	// IsValid reports whether v is valid under the given mode.
	IsValid(v any, mode Validation) (bool, error)
	// NameOf returns the canonical member name of v, or "" when undefined.
	NameOf(v any) (string, error)
}

// Untyped returns the type-erased view of this enumeration.
func (t *Type[T]) Untyped() Untyped { return untypedView[T]{t} }

// untypedView adapts a *Type[T] to the Untyped interface. The typed methods
// keep their precise signatures on Type; this wrapper carries the any-based
// ones so the two surfaces never collide.
type untypedView[T Underlying] struct {
	t *Type[T]
}

func (u untypedView[T]) TypeName() string                 { return u.t.TypeName() }
func (u untypedView[T]) ReflectType() reflect.Type        { return u.t.ReflectType() }
func (u untypedView[T]) Kind() reflect.Kind               { return u.t.Kind() }
func (u untypedView[T]) BitSize() int                     { return u.t.BitSize() }
func (u untypedView[T]) Signed() bool                     { return u.t.Signed() }
func (u untypedView[T]) IsFlagType() bool                 { return u.t.IsFlagType() }
func (u untypedView[T]) IsContiguous() bool               { return u.t.IsContiguous() }
func (u untypedView[T]) Count(sel Selection) int          { return u.t.Count(sel) }
func (u untypedView[T]) Names(sel Selection) iter.Seq[string] { return u.t.Names(sel) }

func (u untypedView[T]) FromInt64(x int64) (any, error) {
	v, err := u.t.FromInt64(x)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (u untypedView[T]) FromUint64(x uint64) (any, error) {
	v, err := u.t.FromUint64(x)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (u untypedView[T]) Parse(s string, opts ...Option) (any, error) {
	v, err := u.t.Parse(s, opts...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (u untypedView[T]) AsString(v any) (string, error) {
	tv, err := u.conv(v)
	if err != nil {
		return "", err
	}
	return u.t.AsString(tv), nil
}

func (u untypedView[T]) Format(v any, code rune) (string, error) {
	tv, err := u.conv(v)
	if err != nil {
		return "", err
	}
	return u.t.Format(tv, code)
}

func (u untypedView[T]) IsDefined(v any) (bool, error) {
	tv, err := u.conv(v)
	if err != nil {
		return false, err
	}
	return u.t.IsDefined(tv), nil
}

func (u untypedView[T]) IsValid(v any, mode Validation) (bool, error) {
	tv, err := u.conv(v)
	if err != nil {
		return false, err
	}
	return u.t.IsValid(tv, mode), nil
}

func (u untypedView[T]) NameOf(v any) (string, error) {
	tv, err := u.conv(v)
	if err != nil {
		return "", err
	}
	name, _ := u.t.Name(tv)
	return name, nil
}

func (u untypedView[T]) conv(v any) (T, error) {
	tv, ok := v.(T)
	if !ok {
		return 0, &Error{
			Op:   "Convert",
			Type: u.t.name,
			Err:  fmt.Errorf("value of type %T is not %s", v, u.t.rtype),
		}
	}
	return tv, nil
}
