// Package asm lowers an instruction tree into EVM bytecode.
//
// The tree is a sequence of Elements: opcodes, literals, named blocks, raw
// data regions, and references to blocks or regions by name. Names live in
// one flat namespace regardless of nesting depth, so any block or region is
// referenceable from anywhere in the tree.
//
// Assembly is two phases. Resolve computes a byte offset for every block
// and data region by iterating a sizing pass to a fixed point: a reference
// is emitted as a minimal-width push of its target's offset, the push's own
// width shifts everything after it, and that shift can change the width
// another reference needs. The loop re-derives the whole offset map each
// round and stops when a round changes nothing, failing with a circular
// dependency error if the cap is hit. Encode then walks the tree once more
// with the converged layout and emits the final bytes, or an error and no
// bytes at all.
//
// Trees built with Placeholder elements must pass through SubstituteValues
// before assembly; any Encodable value can be bound to a placeholder.
//
// The package holds no mutable state between calls. Concurrent Assemble
// calls are independent.
package asm
