package enums

// MemberSpec declares one member as produced by a Source: its value, its
// name, and any attributes. Names must be non-empty after trimming and
// unique within the source; values may repeat, in which case later members
// become aliases of the first (or of the one carrying Primary).
type MemberSpec[T Underlying] struct {
	Value T
	Name  string
	Attrs []any
}

// Source enumerates the members of an enumeration at registration time. Go
// reflection cannot discover constants, so every registered enumeration
// names its members through a Source: typically a Builder, a tagged struct
// via NewStructSource, or a generated protobuf descriptor via the protoenum
// package.
type Source[T Underlying] interface {
	// Members returns the declared members in declaration order. It is
	// called at most a handful of times per process; implementations may
	// scan descriptors or reflect over structs on each call.
	Members() ([]MemberSpec[T], error)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc[T Underlying] func() ([]MemberSpec[T], error)

// Members implements Source.
func (f SourceFunc[T]) Members() ([]MemberSpec[T], error) { return f() }
