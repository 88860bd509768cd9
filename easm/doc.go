// Package easm parses the textual assembly mini-language.
//
// The surface is s-expression flavored. Bare identifiers are opcode
// mnemonics, numbers are push literals, and $name references a block's
// resolved offset:
//
//	elements, err := easm.Parse(`
//		;; sum 1 + 2 and return the word
//		1 2 add
//		0 mstore
//		32 0 return
//	`)
//
// Forms:
//
//	(block $name elem...)   named block, enters the global label namespace
//	(data $name 0x...)      named raw byte region, emitted verbatim
//	(ptr $name)             push the offset of a data region
//	(len $name)             push the byte length of a data region
//	(param N)               placeholder bound via asm.SubstituteValues
//	$name                   push the offset of a block
//
// Integer literals may be decimal or 0x hex up to 256 bits; underscores are
// allowed as digit separators and odd-length hex is left-padded. Line
// comments start with ;; and block comments use (; ;).
//
// The parser only builds the tree. Mnemonic validity, name resolution, and
// width checks are the assembler's job; parse errors cover malformed
// syntax, hex, and data payloads.
package easm
