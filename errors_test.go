package enums

import (
	"errors"
	"fmt"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ErrNotRegistered",
			err:  ErrNotRegistered,
			want: "enum type not registered",
		},
		{
			name: "ErrAlreadyRegistered",
			err:  ErrAlreadyRegistered,
			want: "enum type already registered",
		},
		{
			name: "ErrOutOfRange",
			err:  ErrOutOfRange,
			want: "value out of range for underlying type",
		},
		{
			name: "ErrNotRecognized",
			err:  ErrNotRecognized,
			want: "string not recognized as enum member",
		},
		{
			name: "ErrInvalidFormatCode",
			err:  ErrInvalidFormatCode,
			want: "invalid format code",
		},
		{
			name: "ErrInvalidMember",
			err:  ErrInvalidMember,
			want: "invalid member definition",
		},
		{
			name: "ErrSourceFailed",
			err:  ErrSourceFailed,
			want: "member source failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestErrorError verifies the Error() method formatting.
func TestErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with input",
			err: &Error{
				Op:    "Parse",
				Type:  "Color",
				Input: "Purple",
				Err:   ErrNotRecognized,
			},
			want: `enums: Parse Color "Purple": string not recognized as enum member`,
		},
		{
			name: "without input",
			err: &Error{
				Op:   "Register",
				Type: "Color",
				Err:  ErrAlreadyRegistered,
			},
			want: "enums: Register Color: enum type already registered",
		},
		{
			name: "without type",
			err: &Error{
				Op:  "RegisterFormat",
				Err: errors.New("nil formatter"),
			},
			want: "enums: RegisterFormat: nil formatter",
		},
		{
			name: "without underlying error",
			err: &Error{
				Op:   "Resolve",
				Type: "Color",
			},
			want: "enums: Resolve Color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestErrorUnwrap verifies the Unwrap() method.
func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "Parse", Type: "Color", Err: underlying}
	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}

	errNil := &Error{Op: "Parse", Type: "Color"}
	if unwrapped := errNil.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() with nil Err = %v, want nil", unwrapped)
	}
}

// TestErrorIs verifies the Is() method and errors.Is() compatibility.
func TestErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "matches underlying sentinel",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: ErrNotRecognized,
			want:   true,
		},
		{
			name:   "matches wrapped sentinel",
			err:    NewRegisterError("Color", fmt.Errorf("wrapped: %w", ErrSourceFailed)),
			target: ErrSourceFailed,
			want:   true,
		},
		{
			name:   "matches Error by op",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: &Error{Op: "Parse"},
			want:   true,
		},
		{
			name:   "matches Error by op and type",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: &Error{Op: "Parse", Type: "Color"},
			want:   true,
		},
		{
			name:   "matches Error by op type and sentinel",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: &Error{Op: "Parse", Type: "Color", Err: ErrNotRecognized},
			want:   true,
		},
		{
			name:   "does not match different op",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: &Error{Op: "Format"},
			want:   false,
		},
		{
			name:   "does not match different type",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: &Error{Op: "Parse", Type: "Weekday"},
			want:   false,
		},
		{
			name:   "does not match different sentinel",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: ErrOutOfRange,
			want:   false,
		},
		{
			name:   "does not match nil",
			err:    NewParseError("Color", "Purple", ErrNotRecognized),
			target: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestErrorAs verifies errors.As() compatibility through wrapping.
func TestErrorAs(t *testing.T) {
	original := NewParseError("Color", "Purple", ErrNotRecognized)
	wrapped := fmt.Errorf("outer: %w", original)

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatal("errors.As() failed to extract *Error")
	}
	if e.Op != "Parse" {
		t.Errorf("Op = %q, want Parse", e.Op)
	}
	if e.Type != "Color" {
		t.Errorf("Type = %q, want Color", e.Type)
	}
	if e.Input != "Purple" {
		t.Errorf("Input = %q, want Purple", e.Input)
	}
}

// TestNewErrorFunctions verifies the New*Error() constructor functions.
func TestNewErrorFunctions(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name      string
		err       *Error
		wantOp    string
		wantInput string
	}{
		{
			name:      "NewParseError",
			err:       NewParseError("Color", "bad", cause),
			wantOp:    "Parse",
			wantInput: "bad",
		},
		{
			name:      "NewFormatError",
			err:       NewFormatError("Color", "Z", cause),
			wantOp:    "Format",
			wantInput: "Z",
		},
		{
			name:   "NewRegisterError",
			err:    NewRegisterError("Color", cause),
			wantOp: "Register",
		},
		{
			name:      "NewConversionError",
			err:       NewConversionError("Color", "300", cause),
			wantOp:    "Convert",
			wantInput: "300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", tt.err.Op, tt.wantOp)
			}
			if tt.err.Type != "Color" {
				t.Errorf("Type = %q, want Color", tt.err.Type)
			}
			if tt.err.Input != tt.wantInput {
				t.Errorf("Input = %q, want %q", tt.err.Input, tt.wantInput)
			}
			if !errors.Is(tt.err, cause) {
				t.Error("underlying error not preserved")
			}
		})
	}
}

// TestErrorChaining verifies that error chains resolve end to end.
func TestErrorChaining(t *testing.T) {
	base := errors.New("base error")
	wrapped := fmt.Errorf("wrapped: %w", base)
	enumErr := NewRegisterError("Color", wrapped)
	outer := fmt.Errorf("outer: %w", enumErr)

	if !errors.Is(outer, base) {
		t.Error("failed to find base error in chain")
	}

	var extracted *Error
	if !errors.As(outer, &extracted) {
		t.Fatal("failed to extract *Error from chain")
	}
	if extracted.Op != "Register" {
		t.Errorf("extracted error has wrong Op: %q", extracted.Op)
	}
}

// BenchmarkErrorError benchmarks the Error() method.
func BenchmarkErrorError(b *testing.B) {
	err := NewParseError("Color", "Purple", ErrNotRecognized)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

// BenchmarkErrorsIs benchmarks errors.Is() with Error.
func BenchmarkErrorsIs(b *testing.B) {
	err := NewParseError("Color", "Purple", ErrNotRecognized)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = errors.Is(err, ErrNotRecognized)
	}
}
