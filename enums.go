package enums

import "iter"

// Package-level operations resolve the registered cache for T and delegate
// to it. They panic when T is not registered, like For; long call chains
// over one enumeration can hold the *Type from For or Resolve instead.

// Name returns the canonical name of v, if v is defined.
func Name[T Underlying](v T) (string, bool) {
	return For[T]().Name(v)
}

// MemberOf returns the canonical member for v, if v is defined.
func MemberOf[T Underlying](v T) (Member[T], bool) {
	return For[T]().Member(v)
}

// MemberByName returns the member matching name under the format chain.
func MemberByName[T Underlying](name string, opts ...Option) (Member[T], bool) {
	return For[T]().MemberByName(name, opts...)
}

// Count returns the number of members covered by sel.
func Count[T Underlying](sel Selection) int {
	return For[T]().Count(sel)
}

// Members returns the members covered by sel in value order.
func Members[T Underlying](sel Selection) iter.Seq[Member[T]] {
	return For[T]().Members(sel)
}

// Names returns the member names covered by sel in value order.
func Names[T Underlying](sel Selection) iter.Seq[string] {
	return For[T]().Names(sel)
}

// Values returns the member values covered by sel in value order.
func Values[T Underlying](sel Selection) iter.Seq[T] {
	return For[T]().Values(sel)
}

// IsDefined reports whether v has a defined member.
func IsDefined[T Underlying](v T) bool {
	return For[T]().IsDefined(v)
}

// IsValid reports whether v is valid under the given validation mode.
func IsValid[T Underlying](v T, mode Validation) bool {
	return For[T]().IsValid(v, mode)
}

// IsValidFlagCombination reports whether every bit of v belongs to a
// defined single-bit flag.
func IsValidFlagCombination[T Underlying](v T) bool {
	return For[T]().IsValidFlagCombination(v)
}

// FromInt64 converts x into T, range-checked against its underlying type.
func FromInt64[T Underlying](x int64) (T, error) {
	return For[T]().FromInt64(x)
}

// FromUint64 is the unsigned counterpart of FromInt64.
func FromUint64[T Underlying](x uint64) (T, error) {
	return For[T]().FromUint64(x)
}

// AsString returns the general rendering of v.
func AsString[T Underlying](v T) string {
	return For[T]().AsString(v)
}

// FormatCode renders v under a single-letter format code (G/g, F/f, D/d,
// X/x).
func FormatCode[T Underlying](v T, code rune) (string, error) {
	return For[T]().Format(v, code)
}

// FormatBy renders v through the given format fallback chain.
func FormatBy[T Underlying](v T, formats ...Format) (string, bool) {
	return For[T]().FormatBy(v, formats...)
}

// FormatFlags renders v as a composite flag string.
func FormatFlags[T Underlying](v T, opts ...Option) (string, bool) {
	return For[T]().FormatFlags(v, opts...)
}

// Parse converts s into a value of T.
func Parse[T Underlying](s string, opts ...Option) (T, error) {
	return For[T]().Parse(s, opts...)
}

// TryParse is Parse without the error, allocating nothing on failure.
func TryParse[T Underlying](s string, opts ...Option) (T, bool) {
	return For[T]().TryParse(s, opts...)
}

// MustParse is Parse that panics on failure.
func MustParse[T Underlying](s string, opts ...Option) T {
	return For[T]().MustParse(s, opts...)
}

// AllFlags returns the combination of every defined single-bit flag of T.
func AllFlags[T Underlying]() T {
	return For[T]().AllFlags()
}

// HasAnyFlags reports whether v has any flag in common with the combined
// masks, or any bit at all with no masks.
func HasAnyFlags[T Underlying](v T, masks ...T) bool {
	return For[T]().HasAnyFlags(v, masks...)
}

// HasAllFlags reports whether v contains every flag of the combined masks,
// or every defined flag with no masks.
func HasAllFlags[T Underlying](v T, masks ...T) bool {
	return For[T]().HasAllFlags(v, masks...)
}

// ToggleFlags returns v with the combined masks' flags inverted, or with
// every defined flag inverted with no masks.
func ToggleFlags[T Underlying](v T, masks ...T) T {
	return For[T]().ToggleFlags(v, masks...)
}

// CombineFlags returns the union of the given values.
func CombineFlags[T Underlying](vs ...T) T {
	return For[T]().CombineFlags(vs...)
}

// CommonFlags returns the flags present in both v and other.
func CommonFlags[T Underlying](v, other T) T {
	return For[T]().CommonFlags(v, other)
}

// RemoveFlags returns v with other's flags cleared.
func RemoveFlags[T Underlying](v, other T) T {
	return For[T]().RemoveFlags(v, other)
}

// FlagCount returns the number of defined single-bit flags of T.
func FlagCount[T Underlying]() int {
	return For[T]().FlagCount()
}

// CountFlags returns the number of defined flags set in v, optionally
// restricted to the given masks.
func CountFlags[T Underlying](v T, within ...T) int {
	return For[T]().CountFlags(v, within...)
}

// FlagValues returns v's defined single-bit flags in ascending bit order.
func FlagValues[T Underlying](v T) iter.Seq[T] {
	return For[T]().FlagValues(v)
}

// FlagMembers returns the members of v's defined single-bit flags in
// ascending bit order.
func FlagMembers[T Underlying](v T) iter.Seq[Member[T]] {
	return For[T]().FlagMembers(v)
}
