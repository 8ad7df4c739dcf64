package enums

import "strings"

// parse failure kinds. The failing token is carried alongside so errors can
// point at the token inside a composite flag string.
const (
	failNone uint8 = iota
	failRange
	failUnrecognized
)

// Parse converts s into a value of the enumeration. Surrounding whitespace
// is ignored. The options honored are WithFormats (default: name, then
// underlying number), IgnoreCase, and, for flag types, WithDelimiter.
//
// For flag types the input is always treated as a composite flag string:
// split on the delimiter, each token resolved independently, and the results
// combined. Empty input parses to the empty combination. A single failing
// token fails the whole parse.
//
// Failed parses of numeric-looking tokens report ErrOutOfRange; everything
// else reports ErrNotRecognized. Unknown format identifiers panic.
func (t *Type[T]) Parse(s string, opts ...Option) (T, error) {
	v, kind, tok := t.parse(s, opts)
	switch kind {
	case failNone:
		return v, nil
	case failRange:
		return 0, NewParseError(t.name, tok, ErrOutOfRange)
	default:
		return 0, NewParseError(t.name, tok, ErrNotRecognized)
	}
}

// TryParse is Parse without the error: it reports success as a bool and
// allocates nothing on failure. Unknown format identifiers still panic.
func (t *Type[T]) TryParse(s string, opts ...Option) (T, bool) {
	v, kind, _ := t.parse(s, opts)
	return v, kind == failNone
}

// MustParse is Parse that panics on failure, for inputs known to be good.
func (t *Type[T]) MustParse(s string, opts ...Option) T {
	v, err := t.Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Type[T]) parse(s string, opts []Option) (T, uint8, string) {
	cfg := newOpConfig(opts)
	formats := cfg.formats
	if len(formats) == 0 {
		formats = defaultFormats
	}
	t.checkFormats("Parse", formats)

	s = strings.TrimSpace(s)
	if t.flags {
		return t.parseFlags(s, formats, cfg)
	}
	return t.parseToken(s, formats, cfg.ignoreCase)
}

// parseToken resolves one token through the format chain: numeric formats
// parse the token directly (accepting undefined in-range values), member
// formats consult the per-format lookup index.
func (t *Type[T]) parseToken(tok string, formats []Format, ignoreCase bool) (T, uint8, string) {
	for _, f := range formats {
		switch f {
		case FormatUnderlying, FormatDecimal:
			if v, ok := parseDecimal[T](tok, &t.tr); ok {
				return v, failNone, ""
			}
		case FormatHex:
			if v, ok := parseHex[T](tok, &t.tr); ok {
				return v, failNone, ""
			}
		default:
			idx := t.indexFor(f)
			var mi int32
			var ok bool
			if ignoreCase {
				mi, ok = idx.lookupFold(tok)
			} else {
				mi, ok = idx.lookup(tok)
			}
			if ok {
				return t.memberAt(mi).value, failNone, ""
			}
		}
	}
	if numericLooking(tok) {
		return 0, failRange, tok
	}
	return 0, failUnrecognized, tok
}

func (t *Type[T]) parseFlags(s string, formats []Format, cfg opConfig) (T, uint8, string) {
	if s == "" {
		return 0, failNone, ""
	}
	delim := strings.TrimSpace(cfg.delim)
	if delim == "" {
		// An all-whitespace delimiter matches verbatim.
		delim = cfg.delim
	}

	var result T
	for start := 0; ; {
		next := strings.Index(s[start:], delim)
		var tok string
		if next < 0 {
			tok = s[start:]
		} else {
			tok = s[start : start+next]
		}
		v, kind, failTok := t.parseToken(strings.TrimSpace(tok), formats, cfg.ignoreCase)
		if kind != failNone {
			return 0, kind, failTok
		}
		result |= v
		if next < 0 {
			break
		}
		start += next + len(delim)
	}
	return result, failNone, ""
}

// MemberByName returns the member whose rendering under the format chain
// matches name. The default chain is the declared name only; numeric
// formats match against members' rendered numbers rather than parsing
// arbitrary values, so undefined values never match. The options honored
// are WithFormats and IgnoreCase.
func (t *Type[T]) MemberByName(name string, opts ...Option) (Member[T], bool) {
	cfg := newOpConfig(opts)
	formats := cfg.formats
	if len(formats) == 0 {
		formats = nameOnlyFormats
	}
	t.checkFormats("MemberByName", formats)

	for _, f := range formats {
		idx := t.indexFor(f)
		var mi int32
		var ok bool
		if cfg.ignoreCase {
			mi, ok = idx.lookupFold(name)
		} else {
			mi, ok = idx.lookup(name)
		}
		if ok {
			return Member[T]{owner: t, data: t.memberAt(mi)}, true
		}
	}
	return Member[T]{}, false
}

var nameOnlyFormats = []Format{FormatName}
