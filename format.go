package enums

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// Format identifies one way of rendering a member as a string, and
// symmetrically one way of recognizing a string during parsing. Formats are
// tried in order as a fallback chain: the first one that produces (or
// recognizes) a string wins.
type Format int

const (
	// FormatName renders a member's declared name.
	FormatName Format = iota

	// FormatDescription renders a member's Description attribute.
	FormatDescription

	// FormatUnderlying renders the value in the underlying type's natural
	// decimal form. Unlike the member formats it applies to undefined
	// values too, and during parsing it accepts any in-range number.
	FormatUnderlying

	// FormatDecimal renders the value as decimal digits. For the integer
	// underlying types it coincides with FormatUnderlying.
	FormatDecimal

	// FormatHex renders the value's bit pattern as upper-case hexadecimal,
	// zero-padded to the width of the underlying type.
	FormatHex

	// FormatSerialized renders a member's SerializedName attribute, the
	// wire form preferred by the codec adapters.
	FormatSerialized

	// FormatDisplay renders a member's DisplayName attribute.
	FormatDisplay

	numBuiltinFormats
)

// defaultFormats is the chain used when a caller supplies none: declared
// name first, then the underlying numeric form.
var defaultFormats = []Format{FormatName, FormatUnderlying}

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatName:
		return "Name"
	case FormatDescription:
		return "Description"
	case FormatUnderlying:
		return "Underlying"
	case FormatDecimal:
		return "Decimal"
	case FormatHex:
		return "Hex"
	case FormatSerialized:
		return "Serialized"
	case FormatDisplay:
		return "Display"
	}
	if f >= numBuiltinFormats {
		return "Custom(" + strconv.Itoa(int(f-numBuiltinFormats)) + ")"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// IsValid reports whether f is a built-in format or one returned by
// RegisterFormat.
func (f Format) IsValid() bool {
	if f >= 0 && f < numBuiltinFormats {
		return true
	}
	_, ok := customFormatter(f)
	return ok
}

// FormatterFunc renders a member for a custom format. Returning false means
// the member has no rendering under this format and the fallback chain moves
// on.
type FormatterFunc func(MemberInfo) (string, bool)

var (
	formatMu  sync.Mutex
	formatFns atomic.Pointer[[]FormatterFunc]
)

// RegisterFormat registers a custom format process-wide and returns its
// identifier. Custom formats participate in fallback chains and in parsing
// exactly like the member-attribute formats. Registered formats cannot be
// removed.
func RegisterFormat(fn FormatterFunc) Format {
	if fn == nil {
		panic(&Error{Op: "RegisterFormat", Err: errors.New("nil formatter")})
	}
	formatMu.Lock()
	defer formatMu.Unlock()
	var next []FormatterFunc
	if cur := formatFns.Load(); cur != nil {
		next = slices.Clone(*cur)
	}
	next = append(next, fn)
	formatFns.Store(&next)
	return numBuiltinFormats + Format(len(next)-1)
}

func customFormatter(f Format) (FormatterFunc, bool) {
	fns := formatFns.Load()
	if fns == nil {
		return nil, false
	}
	i := int(f - numBuiltinFormats)
	if i < 0 || i >= len(*fns) {
		return nil, false
	}
	return (*fns)[i], true
}

// checkFormats rejects unknown format identifiers up front, before any
// value is formatted or parsed.
func (t *Type[T]) checkFormats(op string, formats []Format) {
	for _, f := range formats {
		if !f.IsValid() {
			panic(&Error{Op: op, Type: t.name, Err: fmt.Errorf("unknown format %v", f)})
		}
	}
}

// formatValue renders v under a single format. d is v's member record when
// one exists; the member formats produce nothing without it.
func (t *Type[T]) formatValue(v T, d *memberData[T], f Format) (string, bool) {
	switch f {
	case FormatName:
		if d != nil {
			return d.name, true
		}
	case FormatDescription:
		if d != nil {
			return d.attrs.Description()
		}
	case FormatUnderlying, FormatDecimal:
		return decimalString(v, &t.tr), true
	case FormatHex:
		return hexString(v, &t.tr), true
	case FormatSerialized:
		if d != nil {
			return d.attrs.SerializedName()
		}
	case FormatDisplay:
		if d != nil {
			return d.attrs.DisplayName()
		}
	default:
		if fn, ok := customFormatter(f); ok && d != nil {
			return fn(Member[T]{owner: t, data: d})
		}
	}
	return "", false
}

func (t *Type[T]) formatChain(v T, d *memberData[T], formats []Format) (string, bool) {
	if len(formats) == 0 {
		formats = defaultFormats
	}
	t.checkFormats("Format", formats)
	for _, f := range formats {
		if s, ok := t.formatValue(v, d, f); ok {
			return s, true
		}
	}
	return "", false
}

// AsString returns the general rendering of v: for flag types the composite
// flag form, otherwise the member name when v is defined and its decimal
// form when not.
func (t *Type[T]) AsString(v T) string {
	if t.flags {
		s, _ := t.formatFlags(v, opConfig{delim: DefaultFlagDelimiter})
		return s
	}
	if d, ok := t.lookup(v); ok {
		return d.name
	}
	return decimalString(v, &t.tr)
}

// FormatBy renders v through the given format fallback chain, returning the
// first format that produces a string. With no formats it behaves as the
// default chain. It panics if a format identifier is neither built in nor
// registered.
func (t *Type[T]) FormatBy(v T, formats ...Format) (string, bool) {
	d, _ := t.lookup(v)
	return t.formatChain(v, d, formats)
}

// Format renders v under a single-letter format code: G/g for the general
// form, F/f for the composite flag form, D/d for decimal, and X/x for
// zero-padded hexadecimal. Any other code is an error.
func (t *Type[T]) Format(v T, code rune) (string, error) {
	switch code {
	case 'G', 'g':
		return t.AsString(v), nil
	case 'F', 'f':
		s, _ := t.formatFlags(v, opConfig{delim: DefaultFlagDelimiter})
		return s, nil
	case 'D', 'd':
		return decimalString(v, &t.tr), nil
	case 'X', 'x':
		return hexString(v, &t.tr), nil
	}
	return "", NewFormatError(t.name, string(code), ErrInvalidFormatCode)
}
