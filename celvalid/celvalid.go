// Package celvalid compiles CEL expressions into custom enum validators.
// An expression sees the candidate as "value" (int for signed underlying
// types, uint for unsigned) and must yield a bool:
//
//	var Ports = enums.NewBuilder[Port]("Port").
//		Add(HTTP, "HTTP").
//		Add(HTTPS, "HTTPS").
//		ValidateWith(celvalid.MustCompile[Port]("value == 80 || value == 443 || value >= 1024")).
//		MustRegister()
//
// The compiled validator participates in the enumeration's default
// validation mode. Evaluation failures (an expression dividing by the
// value, say) report the value invalid and log through slog rather than
// panicking mid-validation.
package celvalid

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/zero-day-ai/enums"
)

// Option configures compilation.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes evaluation-failure warnings to l instead of the
// default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Compile builds a validator for T from a CEL boolean expression over the
// variable "value". The returned func is safe for concurrent use.
func Compile[T enums.Underlying](expr string, opts ...Option) (func(T) bool, error) {
	cfg := config{logger: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	rt := reflect.TypeFor[T]()
	signed := isSignedKind(rt.Kind())
	varType := cel.IntType
	if !signed {
		varType = cel.UintType
	}

	env, err := cel.NewEnv(cel.Variable("value", varType))
	if err != nil {
		return nil, fmt.Errorf("celvalid: environment for %s: %w", rt, err)
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("celvalid: compile %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("celvalid: expression %q yields %s, want bool", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("celvalid: program %q: %w", expr, err)
	}

	logger := cfg.logger
	typeName := rt.String()
	if signed {
		return func(v T) bool {
			return eval(prg, logger, typeName, int64(v))
		}, nil
	}
	return func(v T) bool {
		return eval(prg, logger, typeName, uint64(v))
	}, nil
}

// MustCompile is Compile that panics on error, for registration chains.
func MustCompile[T enums.Underlying](expr string, opts ...Option) func(T) bool {
	fn, err := Compile[T](expr, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

func eval(prg cel.Program, logger *slog.Logger, typeName string, value any) bool {
	out, _, err := prg.Eval(map[string]any{"value": value})
	if err != nil {
		logger.Warn("enum validator evaluation failed", "type", typeName, "value", value, "error", err)
		return false
	}
	b, ok := out.Value().(bool)
	if !ok {
		logger.Warn("enum validator returned non-bool", "type", typeName, "value", value)
		return false
	}
	return b
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
