package enums

import "slices"

// Builder declares an enumeration's members and type-level settings in one
// fluent chain, and doubles as the Source it registers. The usual pattern
// declares and registers in a package-level variable:
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
//		Add(Red, "Red", enums.WithDescription("the red channel")).
//		Add(Green, "Green").
//		Add(Blue, "Blue").
//		MustRegister()
type Builder[T Underlying] struct {
	name      string
	flags     bool
	validator func(T) bool
	specs     []MemberSpec[T]
}

// NewBuilder starts a builder for an enumeration registered under typeName.
func NewBuilder[T Underlying](typeName string) *Builder[T] {
	return &Builder[T]{name: typeName}
}

// Flags marks the enumeration as a flag type.
func (b *Builder[T]) Flags() *Builder[T] {
	b.flags = true
	return b
}

// ValidateWith sets the custom validator consulted by ValidateDefault.
func (b *Builder[T]) ValidateWith(fn func(T) bool) *Builder[T] {
	b.validator = fn
	return b
}

// Add declares a member. Declaration order matters: among members sharing a
// value, the first declared (or the one adding WithPrimary) is canonical.
func (b *Builder[T]) Add(value T, name string, opts ...MemberOption) *Builder[T] {
	var mc memberConfig
	for _, o := range opts {
		o(&mc)
	}
	b.specs = append(b.specs, MemberSpec[T]{Value: value, Name: name, Attrs: mc.attrs})
	return b
}

// Members implements Source.
func (b *Builder[T]) Members() ([]MemberSpec[T], error) {
	return slices.Clone(b.specs), nil
}

// Register registers the builder's enumeration and builds its cache
// immediately, so declaration mistakes (empty or duplicate names) surface
// here rather than on first use.
func (b *Builder[T]) Register() (*Type[T], error) {
	opts := []RegisterOption{WithTypeName(b.name)}
	if b.flags {
		opts = append(opts, WithFlagType())
	}
	if b.validator != nil {
		opts = append(opts, withValidator(b.validator))
	}
	if err := Register[T](b, opts...); err != nil {
		return nil, err
	}
	return Resolve[T]()
}

// MustRegister is Register that panics on error, for package-level
// variables.
func (b *Builder[T]) MustRegister() *Type[T] {
	t, err := b.Register()
	if err != nil {
		panic(err)
	}
	return t
}
