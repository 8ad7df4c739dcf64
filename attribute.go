package enums

import "iter"

// Description is a member attribute carrying free-form descriptive text.
type Description string

// String returns the description text.
func (d Description) String() string { return string(d) }

// DisplayName is a member attribute carrying a human-facing name, typically
// used for UI labels where the declared member name is too terse.
type DisplayName string

// String returns the display name text.
func (d DisplayName) String() string { return string(d) }

// SerializedName is a member attribute carrying the member's wire name, the
// form used by serialization adapters in preference to the declared name.
type SerializedName string

// String returns the serialized name text.
func (s SerializedName) String() string { return string(s) }

// Primary marks a member as the canonical one among members sharing a value.
// Without it, the first declared member of a value is canonical and later
// members become aliases.
var Primary primaryMarker

type primaryMarker struct{}

func (primaryMarker) String() string { return "primary" }

// Attributes is an immutable, ordered collection of attribute values attached
// to a member. Built-in attribute types are Description, DisplayName,
// SerializedName, and Primary; any other value is carried verbatim for custom
// formats and application lookups.
type Attributes struct {
	list []any
}

func newAttributes(vals []any) Attributes {
	if len(vals) == 0 {
		return Attributes{}
	}
	cp := make([]any, len(vals))
	copy(cp, vals)
	return Attributes{list: cp}
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a.list) }

// All returns the attributes in declaration order.
func (a Attributes) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range a.list {
			if !yield(v) {
				return
			}
		}
	}
}

// Description returns the first Description attribute, if any.
func (a Attributes) Description() (string, bool) {
	d, ok := AttrOf[Description](a)
	return string(d), ok
}

// DisplayName returns the first DisplayName attribute, if any.
func (a Attributes) DisplayName() (string, bool) {
	d, ok := AttrOf[DisplayName](a)
	return string(d), ok
}

// SerializedName returns the first SerializedName attribute, if any.
func (a Attributes) SerializedName() (string, bool) {
	s, ok := AttrOf[SerializedName](a)
	return string(s), ok
}

// IsPrimary reports whether the Primary marker is present.
func (a Attributes) IsPrimary() bool {
	_, ok := AttrOf[primaryMarker](a)
	return ok
}

// AttrOf returns the first attribute of type A, if any.
func AttrOf[A any](attrs Attributes) (A, bool) {
	for _, v := range attrs.list {
		if a, ok := v.(A); ok {
			return a, true
		}
	}
	var zero A
	return zero, false
}
