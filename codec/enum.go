package codec

import (
	"database/sql/driver"
	"fmt"

	"github.com/sugawarayuuta/sonnet"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enums"
)

// textFormats is the rendering and recognition chain for the textual
// wrapper: wire names first, then canonical names, then raw digits so
// every value round-trips.
var textFormats = []enums.Format{
	enums.FormatSerialized,
	enums.FormatName,
	enums.FormatUnderlying,
}

// Enum wraps a value of a registered enumeration and serializes it in
// textual form. See the package documentation for the format chain and
// the boundary behavior.
type Enum[T enums.Underlying] struct {
	V T
}

// Wrap returns v as a textual codec wrapper.
func Wrap[T enums.Underlying](v T) Enum[T] { return Enum[T]{V: v} }

func (e Enum[T]) text() (string, error) {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return "", err
	}
	if typ.IsFlagType() {
		s, _ := typ.FormatFlags(e.V, enums.WithFormats(textFormats...))
		return s, nil
	}
	s, _ := typ.FormatBy(e.V, textFormats...)
	return s, nil
}

func (e *Enum[T]) setFromString(op, s string) error {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return err
	}
	v, err := typ.Parse(s, enums.WithFormats(textFormats...))
	if err != nil {
		return &enums.Error{Op: op, Type: typ.TypeName(), Input: s, Err: err}
	}
	e.V = v
	return nil
}

func (e *Enum[T]) setFromNumber(op string, src int64) error {
	typ, err := enums.Resolve[T]()
	if err != nil {
		return err
	}
	v, err := typ.FromInt64(src)
	if err != nil {
		return &enums.Error{Op: op, Type: typ.TypeName(), Input: fmt.Sprint(src), Err: err}
	}
	e.V = v
	return nil
}

// String returns the textual form, or the bare number when the
// enumeration is not registered.
func (e Enum[T]) String() string {
	s, err := e.text()
	if err != nil {
		return fmt.Sprintf("%d", e.V)
	}
	return s
}

// MarshalText implements encoding.TextMarshaler. TOML encoders and JSON
// map keys go through here.
func (e Enum[T]) MarshalText() ([]byte, error) {
	s, err := e.text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Enum[T]) UnmarshalText(b []byte) error {
	return e.setFromString("UnmarshalText", string(b))
}

// MarshalJSON implements json.Marshaler, emitting a JSON string.
func (e Enum[T]) MarshalJSON() ([]byte, error) {
	s, err := e.text()
	if err != nil {
		return nil, err
	}
	return sonnet.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON string in
// any form Parse accepts, or a JSON number in the underlying type's
// range. A JSON null leaves the value unchanged.
func (e *Enum[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := sonnet.Unmarshal(data, &s); err != nil {
			return err
		}
		return e.setFromString("UnmarshalJSON", s)
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
		return e.setFromNumber("UnmarshalJSON", n)
	}
	var n uint64
	if err := sonnet.Unmarshal(data, &n); err != nil {
		return &enums.Error{Op: "UnmarshalJSON", Type: typ.TypeName(), Input: string(data), Err: err}
	}
	v, err := typ.FromUint64(n)
	if err != nil {
		return &enums.Error{Op: "UnmarshalJSON", Type: typ.TypeName(), Input: string(data), Err: err}
	}
	e.V = v
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting a scalar string.
func (e Enum[T]) MarshalYAML() (any, error) {
	return e.text()
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting any scalar node.
func (e *Enum[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &enums.Error{
			Op:   "UnmarshalYAML",
			Type: typeName[T](),
			Err:  fmt.Errorf("line %d: cannot decode %s into enum value", node.Line, yamlKind(node.Kind)),
		}
	}
	return e.setFromString("UnmarshalYAML", node.Value)
}

// Value implements driver.Valuer, storing the textual form.
func (e Enum[T]) Value() (driver.Value, error) {
	s, err := e.text()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Scan implements sql.Scanner. It accepts TEXT columns in any form Parse
// accepts and INTEGER columns in the underlying type's range.
func (e *Enum[T]) Scan(src any) error {
	switch src := src.(type) {
	case string:
		return e.setFromString("Scan", src)
	case []byte:
		return e.setFromString("Scan", string(src))
	case int64:
		return e.setFromNumber("Scan", src)
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

// typeName names T in errors raised before a cache lookup succeeds.
func typeName[T enums.Underlying]() string {
	if typ, err := enums.Resolve[T](); err == nil {
		return typ.TypeName()
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}
