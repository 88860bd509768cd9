// Package emasm assembles EVM bytecode from an instruction tree or a small
// textual assembly language.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	emasm/         Root package: Compile source-to-bytecode facade
//	├── asm/       Core assembler: instruction tree, offset resolution, encoding
//	├── easm/      Textual front-end parsed into asm elements
//	├── opcodes/   Static EVM opcode table
//	└── errors/    Structured error types shared by every phase
//
// # Quick Start
//
// Compile a program from source:
//
//	code, err := emasm.Compile(`
//		$loop jump
//		(block $loop 1 add $loop jump)
//	`)
//
// Or build the tree programmatically and assemble it:
//
//	code, err := asm.Assemble([]asm.Element{
//		asm.Lit{Data: []byte{1}},
//		asm.Lit{Data: []byte{2}},
//		asm.Op{Name: "add"},
//	})
//
// # Offset Resolution
//
// Jump targets are absolute byte offsets pushed with the narrowest push
// instruction that fits. A reference's own encoded width moves everything
// after it, which can change the width another reference needs, so the
// resolver iterates a whole-tree sizing pass to a fixed point before any
// byte is emitted. Non-convergence within the round cap reports a circular
// dependency instead of looping.
//
// # Placeholders
//
// Trees may contain indexed placeholders bound at assembly time with any
// asm.Encodable value: unsigned integers of several widths, 256-bit values,
// and fixed-width addresses, words, and raw bytes.
//
// # Concurrency
//
// Assembly is pure computation over per-call state. The opcode table is
// read-only; concurrent calls need no synchronization.
package emasm
