package enums

// memberData is the cache's storage record for one declared member.
type memberData[T Underlying] struct {
	value     T
	name      string
	attrs     Attributes
	canonical bool
}

// Member is a lightweight handle to one declared member of a registered
// enumeration. The zero Member is not valid; members are obtained from a
// Type's lookup and iteration methods, which report whether one exists.
type Member[T Underlying] struct {
	owner *Type[T]
	data  *memberData[T]
}

// Value returns the member's underlying value.
func (m Member[T]) Value() T { return m.data.value }

// Name returns the member's declared name.
func (m Member[T]) Name() string { return m.data.name }

// String returns the member's declared name.
func (m Member[T]) String() string { return m.data.name }

// Attributes returns the member's attribute collection.
func (m Member[T]) Attributes() Attributes { return m.data.attrs }

// IsCanonical reports whether this member is the canonical member for its
// value, as opposed to an alias sharing the value.
func (m Member[T]) IsCanonical() bool { return m.data.canonical }

// IsFlag reports whether the member's value is a single bit.
func (m Member[T]) IsFlag() bool { return isBit(bitsOf(m.data.value, &m.owner.tr)) }

// Type returns the enumeration this member belongs to.
func (m Member[T]) Type() *Type[T] { return m.owner }

// Description returns the member's Description attribute, if any.
func (m Member[T]) Description() (string, bool) { return m.data.attrs.Description() }

// DisplayName returns the member's DisplayName attribute, if any.
func (m Member[T]) DisplayName() (string, bool) { return m.data.attrs.DisplayName() }

// SerializedName returns the member's SerializedName attribute, if any.
func (m Member[T]) SerializedName() (string, bool) { return m.data.attrs.SerializedName() }

// Decimal returns the member's value in its natural decimal form.
func (m Member[T]) Decimal() string { return decimalString(m.data.value, &m.owner.tr) }

// Hex returns the member's value as upper-case hexadecimal, zero-padded to
// the width of the underlying type.
func (m Member[T]) Hex() string { return hexString(m.data.value, &m.owner.tr) }

// FormatBy renders the member through the given format fallback chain,
// returning the first format that produces a string. With no formats it
// behaves as the default chain. It panics if a format identifier is neither
// built in nor registered.
func (m Member[T]) FormatBy(formats ...Format) (string, bool) {
	return m.owner.formatChain(m.data.value, m.data, formats)
}

// MemberInfo is the read-only view of a member handed to custom formatters
// registered with RegisterFormat. It is implemented by Member of every
// underlying type.
type MemberInfo interface {
	// Name returns the member's declared name.
	Name() string
	// Attributes returns the member's attribute collection.
	Attributes() Attributes
	// Decimal returns the member's value in its natural decimal form.
	Decimal() string
	// Hex returns the member's value as zero-padded upper-case hexadecimal.
	Hex() string
}
