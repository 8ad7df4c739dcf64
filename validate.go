package enums

import (
	"fmt"
	"strconv"
)

// Validation selects how IsValid judges a value.
type Validation uint8

const (
	// ValidateDefault uses the custom validator registered for the
	// enumeration when there is one; otherwise flag types check for a valid
	// flag combination and plain types check for a defined member.
	ValidateDefault Validation = iota

	// ValidateNone accepts every value.
	ValidateNone

	// ValidateDefined accepts only values with a defined member.
	ValidateDefined

	// ValidateFlags accepts only combinations of defined single-bit flags,
	// including the empty combination.
	ValidateFlags
)

// String returns the validation mode's name.
func (v Validation) String() string {
	switch v {
	case ValidateDefault:
		return "Default"
	case ValidateNone:
		return "None"
	case ValidateDefined:
		return "Defined"
	case ValidateFlags:
		return "Flags"
	}
	return "Validation(" + strconv.Itoa(int(v)) + ")"
}

// IsDefined reports whether v has a defined member.
func (t *Type[T]) IsDefined(v T) bool {
	_, ok := t.lookup(v)
	return ok
}

// IsValidFlagCombination reports whether every bit set in v belongs to a
// defined single-bit flag. The zero value is always a valid combination.
func (t *Type[T]) IsValidFlagCombination(v T) bool {
	return v&t.allFlags == v
}

// IsValid reports whether v is valid under the given validation mode. It
// panics on an unknown mode, even though the check itself never fails.
func (t *Type[T]) IsValid(v T, mode Validation) bool {
	switch mode {
	case ValidateNone:
		return true
	case ValidateDefined:
		return t.IsDefined(v)
	case ValidateFlags:
		return t.IsValidFlagCombination(v)
	case ValidateDefault:
		if t.validator != nil {
			return t.validator(v)
		}
		if t.flags {
			return t.IsDefined(v) || t.IsValidFlagCombination(v)
		}
		return t.IsDefined(v)
	}
	panic(&Error{Op: "IsValid", Type: t.name, Err: fmt.Errorf("unknown validation mode %d", mode)})
}
