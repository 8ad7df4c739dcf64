package codec

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"

	"github.com/sugawarayuuta/sonnet"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enums"
)

// ErrInvalidValue reports a decoded or scanned number that is in range for
// the underlying type but not valid for the enumeration under its default
// validation mode.
var ErrInvalidValue = errors.New("value not valid for enumeration")

// Ordinal wraps a value of a registered enumeration and serializes it in
// numeric form: a JSON number, a YAML integer scalar, an INTEGER column.
// Decoding and scanning range-check the number and then validate it, so a
// column full of stale ordinals fails loudly rather than producing
// undefined values.
type Ordinal[T enums.Underlying] struct {
	V T
}

// WrapOrdinal returns v as a numeric codec wrapper.
func WrapOrdinal[T enums.Underlying](v T) Ordinal[T] { return Ordinal[T]{V: v} }

func (o *Ordinal[T]) setChecked(op string, input string, v T, typ *enums.Type[T]) error {
	if !typ.IsValid(v, enums.ValidateDefault) {
		return &enums.Error{Op: op, Type: typ.TypeName(), Input: input, Err: ErrInvalidValue}
	}
	o.V = v
	return nil
}

func (o *Ordinal[T]) setFromInt64(op string, n int64) error {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return err
	}
	v, err := typ.FromInt64(n)
	if err != nil {
		return &enums.Error{Op: op, Type: typ.TypeName(), Input: fmt.Sprint(n), Err: err}
	}
	return o.setChecked(op, fmt.Sprint(n), v, typ)
}

// String returns the decimal form.
func (o Ordinal[T]) String() string {
	return fmt.Sprintf("%d", o.V)
}

// MarshalText implements encoding.TextMarshaler with decimal digits.
func (o Ordinal[T]) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Ordinal[T]) setFromDecimal(op, s string) error {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return err
	}
	v, err := typ.Parse(s, enums.WithFormats(enums.FormatDecimal))
	if err != nil {
		return &enums.Error{Op: op, Type: typ.TypeName(), Input: s, Err: err}
	}
	return o.setChecked(op, s, v, typ)
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting decimal
// digits.
func (o *Ordinal[T]) UnmarshalText(b []byte) error {
	return o.setFromDecimal("UnmarshalText", string(b))
}

// MarshalJSON implements json.Marshaler, emitting a JSON number.
func (o Ordinal[T]) MarshalJSON() ([]byte, error) {
	return sonnet.Marshal(o.V)
}

// UnmarshalJSON implements json.Unmarshaler, accepting only a JSON
// number. A JSON null leaves the value unchanged.
func (o *Ordinal[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	typ, err := enums.Resolve[T]()
	if err != nil {
		return err
	}
	if typ.Signed() {
		var n int64
		if err := sonnet.Unmarshal(data, &n); err != nil {
			return &enums.Error{Op: "UnmarshalJSON", Type: typ.TypeName(), Input: string(data), Err: err}
		}
		return o.setFromInt64("UnmarshalJSON", n)
	}
	var n uint64
	if err := sonnet.Unmarshal(data, &n); err != nil {
		return &enums.Error{Op: "UnmarshalJSON", Type: typ.TypeName(), Input: string(data), Err: err}
	}
	v, err := typ.FromUint64(n)
	if err != nil {
		return &enums.Error{Op: "UnmarshalJSON", Type: typ.TypeName(), Input: string(data), Err: err}
	}
	return o.setChecked("UnmarshalJSON", string(data), v, typ)
}

// MarshalYAML implements yaml.Marshaler, emitting an integer scalar.
func (o Ordinal[T]) MarshalYAML() (any, error) {
	return o.V, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting an integer scalar.
func (o *Ordinal[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &enums.Error{
			Op:   "UnmarshalYAML",
			Type: typeName[T](),
			Err:  fmt.Errorf("line %d: cannot decode %s into enum ordinal", node.Line, yamlKind(node.Kind)),
		}
	}
	return o.setFromDecimal("UnmarshalYAML", node.Value)
}

// Value implements driver.Valuer, storing an int64. Unsigned values above
// the int64 range cannot be represented by database/sql and error.
func (o Ordinal[T]) Value() (driver.Value, error) {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return nil, err
	}
	if !typ.Signed() && uint64(o.V) > math.MaxInt64 {
		return nil, &enums.Error{
			Op:    "Value",
			Type:  typ.TypeName(),
			Input: o.String(),
			Err:   fmt.Errorf("ordinal exceeds the int64 range of driver values"),
		}
	}
	return int64(o.V), nil
}

// Scan implements sql.Scanner. It accepts INTEGER columns and decimal
// TEXT columns.
func (o *Ordinal[T]) Scan(src any) error {
	switch src := src.(type) {
	case int64:
		return o.setFromInt64("Scan", src)
	case string:
		return o.setFromDecimal("Scan", src)
	case []byte:
		return o.setFromDecimal("Scan", string(src))
	case nil:
		return &enums.Error{
			Op:   "Scan",
			Type: typeName[T](),
			Err:  fmt.Errorf("cannot scan NULL; use a pointer or sql.Null wrapper"),
		}
	default:
		return &enums.Error{
			Op:   "Scan",
			Type: typeName[T](),
			Err:  fmt.Errorf("unsupported column type %T", src),
		}
	}
}
