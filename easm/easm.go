package easm

import (
	"github.com/wippyai/emasm/asm"
	"github.com/wippyai/emasm/easm/internal/parser"
	"github.com/wippyai/emasm/easm/internal/token"
)

// Parse turns assembly source into an instruction tree.
func Parse(source string) ([]asm.Element, error) {
	tokens := token.Tokenize(source)
	p := parser.New(tokens)
	return p.Parse()
}
