package enums

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NewStructSource builds a Source from a tagged struct, the declarative
// alternative to a Builder. Each exported field of the enumeration's type
// declares one member: the field name is the member name and the `enum` tag
// carries the value as a Go integer literal, optionally followed by
// ",primary". The `desc`, `display`, and `serialized` tags attach the
// corresponding attributes. Fields without an `enum` tag, or tagged
// `enum:"-"`, are skipped.
//
// Passing a pointer additionally assigns each member's value to its field,
// so the struct doubles as the set of usable constants:
//
//	var Levels struct {
//		Low  Level `enum:"1" desc:"below the alert threshold"`
//		High Level `enum:"2"`
//	}
//
//	var LevelType = enums.MustRegister[Level](enums.NewStructSource[Level](&Levels))
func NewStructSource[T Underlying](spec any) Source[T] {
	return &structSource[T]{spec: spec}
}

type structSource[T Underlying] struct {
	spec any
}

// Members implements Source by reflecting over the tagged struct.
func (s *structSource[T]) Members() ([]MemberSpec[T], error) {
	rv := reflect.ValueOf(s.spec)
	writable := false
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil struct pointer")
		}
		rv = rv.Elem()
		writable = true
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("spec is %s, want struct or struct pointer", rv.Kind())
	}

	rt := rv.Type()
	et := reflect.TypeFor[T]()
	tr := traitsFor[T]()
	var specs []MemberSpec[T]
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag, ok := field.Tag.Lookup("enum")
		if !ok || tag == "-" {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("field %s: enum tag on unexported field", field.Name)
		}
		if field.Type != et {
			return nil, fmt.Errorf("field %s has type %s, want %s", field.Name, field.Type, et)
		}

		lit, rest, _ := strings.Cut(tag, ",")
		v, err := parseLiteral[T](strings.TrimSpace(lit), &tr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		var attrs []any
		if rest != "" {
			for _, opt := range strings.Split(rest, ",") {
				switch strings.TrimSpace(opt) {
				case "primary":
					attrs = append(attrs, Primary)
				case "":
				default:
					return nil, fmt.Errorf("field %s: unknown enum tag option %q", field.Name, opt)
				}
			}
		}
		if d, ok := field.Tag.Lookup("desc"); ok {
			attrs = append(attrs, Description(d))
		}
		if d, ok := field.Tag.Lookup("display"); ok {
			attrs = append(attrs, DisplayName(d))
		}
		if d, ok := field.Tag.Lookup("serialized"); ok {
			attrs = append(attrs, SerializedName(d))
		}

		if writable {
			rv.Field(i).Set(reflect.ValueOf(v))
		}
		specs = append(specs, MemberSpec[T]{Value: v, Name: field.Name, Attrs: attrs})
	}
	return specs, nil
}

// parseLiteral parses a Go integer literal (decimal, 0x/0o/0b prefixed, or
// underscore-separated) in the underlying type's range.
func parseLiteral[T Underlying](lit string, tr *traits) (T, error) {
	if tr.signed {
		n, err := strconv.ParseInt(lit, 0, tr.bits)
		if err != nil {
			return 0, fmt.Errorf("bad enum value %q: %w", lit, err)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(lit, 0, tr.bits)
	if err != nil {
		return 0, fmt.Errorf("bad enum value %q: %w", lit, err)
	}
	return T(n), nil
}
