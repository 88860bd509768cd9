package asm

import (
	"github.com/wippyai/emasm/errors"
)

// SubstituteValues returns a copy of the tree with every Placeholder(i)
// replaced by Lit(values[i].EVMBytes()). Block bodies are rewritten
// recursively; all other elements are carried over unchanged. It fails when
// a placeholder index is outside the value list.
func SubstituteValues(elements []Element, values []Encodable) ([]Element, error) {
	out := make([]Element, 0, len(elements))
	for _, el := range elements {
		switch e := el.(type) {
		case Placeholder:
			if e.Index < 0 || e.Index >= len(values) {
				return nil, errors.InvalidPlaceholder(errors.PhaseSubstitute, e.Index)
			}
			out = append(out, Lit{Data: values[e.Index].EVMBytes()})
		case Block:
			body, err := SubstituteValues(e.Body, values)
			if err != nil {
				return nil, err
			}
			out = append(out, Block{Name: e.Name, Body: body})
		default:
			out = append(out, el)
		}
	}
	return out, nil
}
