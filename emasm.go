package emasm

import (
	"github.com/wippyai/emasm/asm"
	"github.com/wippyai/emasm/easm"
)

// Compile parses assembly source and lowers it to bytecode.
func Compile(source string) ([]byte, error) {
	elements, err := easm.Parse(source)
	if err != nil {
		return nil, err
	}
	return asm.Assemble(elements)
}

// CompileWithValues parses source containing (param N) placeholders, binds
// the given values, and lowers the result to bytecode.
func CompileWithValues(source string, values []asm.Encodable) ([]byte, error) {
	elements, err := easm.Parse(source)
	if err != nil {
		return nil, err
	}
	return asm.AssembleWithValues(elements, values)
}
