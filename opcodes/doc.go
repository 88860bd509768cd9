// Package opcodes holds the static EVM opcode table.
//
// The table maps lowercase mnemonics to their single-byte codes, covering
// the instruction set through Cancun (push0, tload/tstore, mcopy, blob
// opcodes). It is read-only after init and safe for concurrent lookups.
//
// The push family (push1..push32, 0x60..0x7F) is contiguous; Push(n)
// computes the opcode carrying n immediate bytes, and IsPush recovers n
// from an opcode byte. JumpDest (0x5B) is the block-entry marker the
// assembler emits at the start of every named block.
package opcodes
