// Package enums provides rich, cached metadata for Go enumerations: parsing
// from strings, formatting to strings, flag composition and decomposition,
// validation, and attribute-based member metadata, over any named integer
// type.
//
// # Core Concepts
//
// The package is organized around a few key concepts:
//
//   - Members: the declared (value, name, attributes) records of an
//     enumeration, with aliases allowed per value
//   - Sources: pluggable member discovery via a fluent Builder, a tagged
//     struct, or a protobuf descriptor (package protoenum)
//   - Types: the per-enumeration metadata cache built once from a source
//     and shared process-wide
//   - Formats: ordered fallback chains that control both rendering and
//     recognition of member strings
//   - Flags: bitwise composition over members whose values are single bits
//
// # Registering
//
// Go reflection cannot enumerate constants, so each enumeration registers a
// member source once, typically in a package-level variable:
//
//	type Color uint8
//
//	const (
//		Red   Color = 1
//		Green Color = 2
//		Blue  Color = 4
//	)
//
//	var Colors = enums.NewBuilder[Color]("Color").
//		Flags().
//		Add(Red, "Red").
//		Add(Green, "Green").
//		Add(Blue, "Blue").
//		MustRegister()
//
// The registry hands the cache back by type parameter (For, Resolve) or by
// runtime type token (ByType, ByName) for type-erased callers.
//
// # Parsing and Formatting
//
// Operations are available both as methods on the cache and as package-level
// generic functions:
//
//	v, err := enums.Parse[Color]("Red, Green")
//	s := enums.AsString(Red | Blue) // "Red, Blue"
//
// Formats form fallback chains: parsing tries each format in order until one
// recognizes the input, and formatting renders with the first format that
// produces a string. Custom formats can be registered process-wide with
// RegisterFormat.
//
// # Validation
//
// IsValid checks values under a selectable mode: definedness, valid flag
// combination, or a custom validator registered with the enumeration.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Caches and their string
// lookup tables are built lazily on first use and published atomically;
// concurrent first uses may build redundantly, but every caller observes
// the same published result. Registration is expected at package
// initialization; registering while other goroutines operate on the same
// enumeration is safe but unordered.
//
// # Error Handling
//
// Failures return structured errors wrapping sentinel values:
//
//	if _, err := enums.Parse[Color]("chartreuse"); errors.Is(err, enums.ErrNotRecognized) {
//		// handle unknown name
//	}
//
// Misuse panics, also from the Try variants: operating on an unregistered
// enumeration, or passing an unknown Format, Validation, or Selection
// identifier.
package enums
