package asm

// Assemble lowers a placeholder-free instruction tree into bytecode. It
// resolves all block and data offsets to a fixed point, then encodes the
// tree in a single pass using the converged layout.
func Assemble(elements []Element) ([]byte, error) {
	layout, err := Resolve(elements)
	if err != nil {
		return nil, err
	}
	return Encode(elements, layout)
}

// AssembleWithValues substitutes the given values for the tree's
// placeholders and assembles the result.
func AssembleWithValues(elements []Element, values []Encodable) ([]byte, error) {
	substituted, err := SubstituteValues(elements, values)
	if err != nil {
		return nil, err
	}
	return Assemble(substituted)
}
