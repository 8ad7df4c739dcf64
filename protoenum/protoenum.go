// Package protoenum registers generated protobuf enums without declaring
// their members by hand. Protobuf is the one place Go enums really do have
// runtime reflection: every generated enum type carries a descriptor
// listing its values, so the member source walks the descriptor instead of
// a Builder chain.
//
//	var FieldTypes = protoenum.MustRegister[descriptorpb.FieldDescriptorProto_Type]()
//
// Enumerations register under the proto full name (for example
// "google.protobuf.FieldDescriptorProto.Type"); pass enums.WithTypeName to
// override. Aliased values under allow_alias keep proto semantics: the
// first declared name is canonical, later names parse as aliases.
package protoenum

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zero-day-ai/enums"
)

// Enum constrains T to a generated protobuf enum type: an int32 kind that
// carries its own descriptor.
type Enum interface {
	~int32
	protoreflect.Enum
}

// NewSource returns a member source that enumerates T's descriptor values
// in declaration order.
func NewSource[T Enum]() enums.Source[T] {
	return enums.SourceFunc[T](func() ([]enums.MemberSpec[T], error) {
		var zero T
		values := zero.Descriptor().Values()
		specs := make([]enums.MemberSpec[T], 0, values.Len())
		for i := 0; i < values.Len(); i++ {
			vd := values.Get(i)
			specs = append(specs, enums.MemberSpec[T]{
				Value: T(vd.Number()),
				Name:  string(vd.Name()),
			})
		}
		return specs, nil
	})
}

// Register registers T under its proto full name.
func Register[T Enum](opts ...enums.RegisterOption) error {
	return enums.Register[T](NewSource[T](), withDefaultName[T](opts)...)
}

// MustRegister registers T under its proto full name, builds the cache
// eagerly, and panics on error. Intended for package-level variables.
func MustRegister[T Enum](opts ...enums.RegisterOption) *enums.Type[T] {
	return enums.MustRegister[T](NewSource[T](), withDefaultName[T](opts)...)
}

// withDefaultName puts the descriptor name first so caller options win.
func withDefaultName[T Enum](opts []enums.RegisterOption) []enums.RegisterOption {
	var zero T
	all := make([]enums.RegisterOption, 0, len(opts)+1)
	all = append(all, enums.WithTypeName(string(zero.Descriptor().FullName())))
	return append(all, opts...)
}
