package enums

import (
	"errors"
	"slices"
)

// Option configures a single parse, format, or lookup operation. Each
// operation documents which options it honors; the rest are ignored.
type Option func(*opConfig)

// opConfig holds the per-operation settings.
type opConfig struct {
	formats    []Format
	delim      string
	ignoreCase bool
}

func newOpConfig(opts []Option) opConfig {
	cfg := opConfig{delim: DefaultFlagDelimiter}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithFormats sets the format fallback chain for the operation. The chain
// is tried in order; the first format that recognizes (or renders) the
// value wins. Without it, operations use their documented default chain.
func WithFormats(formats ...Format) Option {
	return func(c *opConfig) {
		c.formats = slices.Clone(formats)
	}
}

// WithDelimiter sets the delimiter for composite flag strings. When
// formatting, flags are joined with it verbatim; when parsing, tokens are
// split on its whitespace-trimmed form unless that form is empty, in which
// case the delimiter matches verbatim. It panics on an empty delimiter.
func WithDelimiter(delim string) Option {
	return func(c *opConfig) {
		if delim == "" {
			panic(&Error{Op: "WithDelimiter", Err: errors.New("empty delimiter")})
		}
		c.delim = delim
	}
}

// IgnoreCase makes string matching case-insensitive under ASCII folding.
func IgnoreCase() Option {
	return func(c *opConfig) {
		c.ignoreCase = true
	}
}

// RegisterOption configures the registration of an enumeration.
type RegisterOption func(*registerConfig)

// registerConfig holds configuration for registering an enumeration.
type registerConfig struct {
	name      string
	flags     bool
	validator any // func(T) bool, checked when the cache is built
}

// WithTypeName sets the name the enumeration is registered under. Without
// it the Go type name is used.
func WithTypeName(name string) RegisterOption {
	return func(c *registerConfig) {
		c.name = name
	}
}

// WithFlagType marks the enumeration as a flag type: parsing always treats
// input as a composite flag string and AsString renders the composite form.
func WithFlagType() RegisterOption {
	return func(c *registerConfig) {
		c.flags = true
	}
}

// withValidator sets the custom validator consulted by ValidateDefault. It
// is reached through Builder.ValidateWith, which fixes the function's type
// to the builder's enumeration.
func withValidator(fn any) RegisterOption {
	return func(c *registerConfig) {
		c.validator = fn
	}
}

// MemberOption attaches attributes to a member declared through a Builder.
type MemberOption func(*memberConfig)

// memberConfig holds configuration for one declared member.
type memberConfig struct {
	attrs []any
}

// WithDescription attaches a Description attribute to the member.
func WithDescription(desc string) MemberOption {
	return func(c *memberConfig) {
		c.attrs = append(c.attrs, Description(desc))
	}
}

// WithDisplayName attaches a DisplayName attribute to the member.
func WithDisplayName(name string) MemberOption {
	return func(c *memberConfig) {
		c.attrs = append(c.attrs, DisplayName(name))
	}
}

// WithSerializedName attaches a SerializedName attribute to the member,
// the wire form preferred by the codec adapters.
func WithSerializedName(name string) MemberOption {
	return func(c *memberConfig) {
		c.attrs = append(c.attrs, SerializedName(name))
	}
}

// WithPrimary marks the member as canonical among members sharing its
// value.
func WithPrimary() MemberOption {
	return func(c *memberConfig) {
		c.attrs = append(c.attrs, Primary)
	}
}

// WithAttributes attaches arbitrary attribute values to the member.
func WithAttributes(vals ...any) MemberOption {
	return func(c *memberConfig) {
		c.attrs = append(c.attrs, vals...)
	}
}
