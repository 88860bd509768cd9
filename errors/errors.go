package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the assembly pipeline the error occurred
type Phase string

const (
	PhaseParse      Phase = "parse"      // textual front-end
	PhaseSubstitute Phase = "substitute" // placeholder substitution
	PhaseResolve    Phase = "resolve"    // offset fixed-point resolution
	PhaseEncode     Phase = "encode"     // bytecode emission
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownOpcode      Kind = "unknown_opcode"
	KindLabelNotFound      Kind = "label_not_found"
	KindDuplicateLabel     Kind = "duplicate_label"
	KindInvalidPlaceholder Kind = "invalid_placeholder"
	KindCircularDependency Kind = "circular_dependency"
	KindIntegerOverflow    Kind = "integer_overflow"
	KindInvalidBytes       Kind = "invalid_bytes_segment"
	KindInvalidHex         Kind = "invalid_hex_literal"
	KindNestingTooDeep     Kind = "nesting_too_deep"
	KindInvalidInput       Kind = "invalid_input"
)

// Error is the structured error type used throughout the assembler
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Name   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteString(": ")
		b.WriteString(e.Name)
	}

	if e.Detail != "" {
		if e.Name != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Name sets the offending label, mnemonic, or region name
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the assembler error taxonomy

// UnknownOpcode creates an error for a mnemonic absent from the opcode table
func UnknownOpcode(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownOpcode,
		Name:   name,
		Detail: "mnemonic not in opcode table",
	}
}

// LabelNotFound creates an error for a reference to an undefined name
func LabelNotFound(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLabelNotFound,
		Name:   name,
		Detail: "no block or data region with this name",
	}
}

// DuplicateLabel creates an error for a name defined more than once
func DuplicateLabel(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicateLabel,
		Name:   name,
		Detail: "name already defined",
	}
}

// InvalidPlaceholder creates an error for an out-of-range or unsubstituted placeholder
func InvalidPlaceholder(phase Phase, index int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidPlaceholder,
		Detail: fmt.Sprintf("placeholder index %d", index),
		Value:  index,
	}
}

// CircularDependency creates an error for a non-converging offset resolution
func CircularDependency(rounds int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindCircularDependency,
		Detail: fmt.Sprintf("offsets did not stabilize after %d rounds", rounds),
		Value:  rounds,
	}
}

// IntegerOverflow creates an error for a value too wide for any push instruction
func IntegerOverflow(phase Phase, width int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIntegerOverflow,
		Detail: fmt.Sprintf("value needs %d bytes, push carries at most 32", width),
		Value:  width,
	}
}

// InvalidBytes creates an error for a malformed raw-data segment
func InvalidBytes(phase Phase, name, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBytes,
		Name:   name,
		Detail: detail,
	}
}

// InvalidHex creates an error for a malformed hex literal
func InvalidHex(phase Phase, text string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHex,
		Detail: fmt.Sprintf("malformed hex literal %q", text),
		Value:  text,
	}
}

// NestingTooDeep creates an error for a tree nested beyond the supported depth
func NestingTooDeep(phase Phase, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNestingTooDeep,
		Detail: fmt.Sprintf("block nesting exceeds %d levels", limit),
		Value:  limit,
	}
}

// InvalidInput creates a generic invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
