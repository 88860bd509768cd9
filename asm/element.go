package asm

// Element is one node of the instruction tree. The concrete types below are
// the only implementations; the unexported marker method keeps the set closed.
type Element interface {
	element()
}

// Op emits a single opcode byte looked up in the opcode table.
type Op struct {
	Name string
}

// Lit emits a minimal-width push instruction carrying the given big-endian
// bytes. Leading zero bytes are trimmed at encode time; an empty or all-zero
// payload encodes as push1 0x00.
type Lit struct {
	Data []byte
}

// LabelRef emits a minimal-width push of the resolved offset of the named
// block.
type LabelRef struct {
	Name string
}

// Block emits a jumpdest marker followed by its encoded children, and
// defines Name in the global label namespace.
type Block struct {
	Name string
	Body []Element
}

// RawData emits its bytes verbatim and defines Name in the global
// byte-region namespace. The bytes are data, not instructions.
type RawData struct {
	Name string
	Data []byte
}

// DataPtr emits a minimal-width push of the offset of the named RawData
// region.
type DataPtr struct {
	Name string
}

// DataSize emits a minimal-width push of the byte length of the named
// RawData region.
type DataSize struct {
	Name string
}

// Placeholder is an index into a caller-supplied value list. It must be
// replaced by a Lit via SubstituteValues before resolution or encoding.
type Placeholder struct {
	Index int
}

func (Op) element()          {}
func (Lit) element()         {}
func (LabelRef) element()    {}
func (Block) element()       {}
func (RawData) element()     {}
func (DataPtr) element()     {}
func (DataSize) element()    {}
func (Placeholder) element() {}

// trimZeros drops leading zero bytes. The all-zero case trims to nil; push
// encoding turns that back into a single 0x00 byte.
func trimZeros(data []byte) []byte {
	i := 0
	for i < len(data) && data[i] == 0 {
		i++
	}
	return data[i:]
}
