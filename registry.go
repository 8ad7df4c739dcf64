package enums

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// The process-wide registry maps each enumeration's Go type (and registered
// name) to its entry. Registration only records the source; the cache is
// built on first use and published with a compare-and-swap, so concurrent
// first uses may build redundantly but always observe the same published
// cache.
var (
	typesByRT   sync.Map // reflect.Type -> *regEntry
	typesByName sync.Map // string -> *regEntry
)

type regEntry struct {
	rtype reflect.Type
	name  string
	build func() (any, Untyped, error)
	cache atomic.Pointer[builtCache]
}

// builtCache is the published result of a cache build, successful or not.
// A failed build is published too, so every caller sees the same error.
type builtCache struct {
	typed   any // *Type[T]
	untyped Untyped
	err     error
}

func (e *regEntry) resolve() *builtCache {
	if b := e.cache.Load(); b != nil {
		return b
	}
	typed, untyped, err := e.build()
	b := &builtCache{typed: typed, untyped: untyped, err: err}
	if !e.cache.CompareAndSwap(nil, b) {
		// Another goroutine published first; this build is discarded.
		b = e.cache.Load()
	}
	return b
}

// Register records src as the member source for T. The metadata cache is
// built lazily on first use; MustRegister forces it instead. Registering a
// type or a registered name twice is an error. A nil source panics.
func Register[T Underlying](src Source[T], opts ...RegisterOption) error {
	if src == nil {
		panic(&Error{Op: "Register", Err: errors.New("nil source")})
	}
	var cfg registerConfig
	for _, o := range opts {
		o(&cfg)
	}
	rt := reflect.TypeFor[T]()
	if cfg.name == "" {
		cfg.name = defaultTypeName(rt)
	}

	e := &regEntry{rtype: rt, name: cfg.name}
	e.build = func() (any, Untyped, error) {
		t, err := newType[T](src, cfg, rt)
		if err != nil {
			return nil, nil, err
		}
		return t, untypedView[T]{t}, nil
	}

	if _, loaded := typesByRT.LoadOrStore(rt, e); loaded {
		return NewRegisterError(cfg.name, fmt.Errorf("%w: %s", ErrAlreadyRegistered, rt))
	}
	if _, loaded := typesByName.LoadOrStore(cfg.name, e); loaded {
		typesByRT.CompareAndDelete(rt, e)
		return NewRegisterError(cfg.name, fmt.Errorf("%w: name %q", ErrAlreadyRegistered, cfg.name))
	}
	return nil
}

// MustRegister registers src for T, builds the cache immediately so source
// problems surface at registration, and returns the cache. It panics on any
// error, which makes it suitable for package-level variables:
//
//	var Colors = enums.MustRegister[Color](enums.NewBuilder[Color]("Color").
//		Add(Red, "Red").
//		Add(Green, "Green"))
func MustRegister[T Underlying](src Source[T], opts ...RegisterOption) *Type[T] {
	if err := Register[T](src, opts...); err != nil {
		panic(err)
	}
	return For[T]()
}

// Resolve returns the metadata cache for T, building it on first use.
func Resolve[T Underlying]() (*Type[T], error) {
	rt := reflect.TypeFor[T]()
	v, ok := typesByRT.Load(rt)
	if !ok {
		return nil, &Error{Op: "Resolve", Type: defaultTypeName(rt), Err: ErrNotRegistered}
	}
	b := v.(*regEntry).resolve()
	if b.err != nil {
		return nil, b.err
	}
	return b.typed.(*Type[T]), nil
}

// For returns the metadata cache for T and panics when T is not registered
// or its source fails; use Resolve to handle those as errors. Using an
// unregistered enumeration is a programming error, so the package-level
// operations all go through For.
func For[T Underlying]() *Type[T] {
	t, err := Resolve[T]()
	if err != nil {
		panic(err)
	}
	return t
}

// ByType returns the type-erased view of the enumeration registered for rt.
func ByType(rt reflect.Type) (Untyped, error) {
	v, ok := typesByRT.Load(rt)
	if !ok {
		return nil, &Error{Op: "ByType", Type: rt.String(), Err: ErrNotRegistered}
	}
	b := v.(*regEntry).resolve()
	if b.err != nil {
		return nil, b.err
	}
	return b.untyped, nil
}

// ByName returns the type-erased view of the enumeration registered under
// name.
func ByName(name string) (Untyped, error) {
	v, ok := typesByName.Load(name)
	if !ok {
		return nil, &Error{Op: "ByName", Type: name, Err: ErrNotRegistered}
	}
	b := v.(*regEntry).resolve()
	if b.err != nil {
		return nil, b.err
	}
	return b.untyped, nil
}

// Types returns the type-erased views of all registered enumerations,
// sorted by type name. Enumerations whose source fails to build are
// omitted.
func Types() []Untyped {
	var out []Untyped
	typesByRT.Range(func(_, v any) bool {
		if b := v.(*regEntry).resolve(); b.err == nil {
			out = append(out, b.untyped)
		}
		return true
	})
	slices.SortFunc(out, func(a, b Untyped) int {
		return strings.Compare(a.TypeName(), b.TypeName())
	})
	return out
}

// ClearRegistry removes every registered enumeration.
// This is primarily useful for testing.
func ClearRegistry() {
	typesByRT.Range(func(k, _ any) bool {
		typesByRT.Delete(k)
		return true
	})
	typesByName.Range(func(k, _ any) bool {
		typesByName.Delete(k)
		return true
	})
}

func defaultTypeName(rt reflect.Type) string {
	if n := rt.Name(); n != "" {
		return n
	}
	return rt.String()
}
