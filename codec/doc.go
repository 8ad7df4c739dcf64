// Package codec adapts registered enumerations to the serialization
// surfaces Go programs meet at their boundaries: JSON, YAML, TOML (via
// encoding.TextMarshaler), and database/sql columns.
//
// Two generic field wrappers cover the common storage shapes:
//
//   - Enum stores the textual form. It prefers each member's SerializedName
//     attribute, falls back to the canonical name, and renders flag
//     combinations as delimited lists. Reading accepts everything Parse
//     accepts, plus bare numbers.
//   - Ordinal stores the numeric form. Reading range-checks the number and
//     then validates it under the enumeration's default validation mode,
//     so undefined values are rejected at the boundary instead of leaking
//     into the program.
//
// Both are plain value types holding the enumeration value in V:
//
//	type Server struct {
//		Proto codec.Enum[Transport] `json:"proto" yaml:"proto"`
//		Level codec.Ordinal[Level]  `json:"level"`
//	}
//
// The wrapped type must be registered before any codec method runs; the
// methods report enums.ErrNotRegistered otherwise. NULL columns are out
// of scope: scan through a pointer or a sql.Null wrapper instead.
package codec
