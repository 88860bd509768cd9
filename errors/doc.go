// Package errors provides structured error types for the assembler.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type carries the offending name or
// value and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindUnknownOpcode).
//		Name("bogus").
//		Detail("mnemonic not in opcode table").
//		Build()
//
// Or use convenience constructors for the taxonomy entries:
//
//	err := errors.UnknownOpcode(errors.PhaseEncode, "bogus")
//	err := errors.LabelNotFound(errors.PhaseEncode, "loop")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// so callers can test for a taxonomy entry without matching the detail text.
package errors
